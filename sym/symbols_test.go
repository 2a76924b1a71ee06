package sym

import "testing"

func TestGlyphsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, glyph := range All() {
		if glyph == "" {
			t.Error("empty glyph registered")
		}
		if seen[glyph] {
			t.Errorf("glyph %q registered twice", glyph)
		}
		seen[glyph] = true
	}
}
