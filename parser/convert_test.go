package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casework/casegraph/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag      string
		wantKind Kind
		wantList bool
	}{
		{"str", KindStr, false},
		{"bool", KindBool, false},
		{"int", KindInt, false},
		{"datetime", KindDatetime, false},
		{"list:str", KindStr, true},
		{"list:int", KindInt, true},
		{"list:datetime", KindDatetime, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			kind, list, err := ParseKind(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantList, list)
		})
	}
}

func TestParseKindUnknownTag(t *testing.T) {
	for _, tag := range []string{"", "string", "float", "list:", "list:float"} {
		_, _, err := ParseKind(tag)
		assert.ErrorIs(t, err, errors.ErrInvalidInput, tag)
	}
}

func TestConvertScalars(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		want any
	}{
		{"quoted string loses quotes", `"Evidence drive"`, KindStr, "Evidence drive"},
		{"bare string kept as-is", "sha256", KindStr, "sha256"},
		{"bool lowercase true", "true", KindBool, true},
		{"bool capitalized false", "False", KindBool, false},
		{"int", "42", KindInt, 42},
		{"negative int", "-7", KindInt, -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.raw, tt.kind, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertDatetime(t *testing.T) {
	got, err := Convert("2023-06-15T08:30:00.000000Z", KindDatetime, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 15, 8, 30, 0, 0, time.UTC), got)
}

func TestConvertFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
	}{
		{"bad bool token", "yes", KindBool},
		{"bad int", "forty-two", KindInt},
		{"datetime without microseconds", "2023-06-15T08:30:00Z", KindDatetime},
		{"datetime with offset", "2023-06-15T08:30:00.000000+02:00", KindDatetime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.raw, tt.kind, false)
			require.Error(t, err)

			var conv *ConversionError
			require.ErrorAs(t, err, &conv)
			assert.Equal(t, tt.raw, conv.Value)
			assert.Equal(t, tt.kind, conv.Kind)
		})
	}
}

func TestConvertLists(t *testing.T) {
	got, err := Convert(`"C:"[ | ]"Windows"[ | ]"System32"`, KindStr, true)
	require.NoError(t, err)
	assert.Equal(t, []any{"C:", "Windows", "System32"}, got)

	got, err = Convert("1[ | ]2[ | ]3", KindInt, true)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)
}

func TestConvertListFailsOnBadElement(t *testing.T) {
	_, err := Convert("1[ | ]two", KindInt, true)

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "two", conv.Value)
}
