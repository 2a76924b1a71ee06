package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/casework/casegraph/graph"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Output.Directory != "" {
		t.Errorf("expected default output directory to be empty, got %q", cfg.Output.Directory)
	}

	if cfg.Output.Suffix != ".json" {
		t.Errorf("expected default output suffix '.json', got %q", cfg.Output.Suffix)
	}

	if cfg.Output.Indent != "  " {
		t.Errorf("expected default indent of two spaces, got %q", cfg.Output.Indent)
	}

	if cfg.Namespace != graph.Namespace {
		t.Errorf("expected default namespace %q, got %q", graph.Namespace, cfg.Namespace)
	}

	if cfg.Log.JSON {
		t.Error("expected log.json to default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "casegraph.toml")

	content := `
namespace = "http://case.example.org/investigation#"

[output]
directory = "/tmp/graphs"
suffix = ".jsonld"

[log]
json = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Namespace != "http://case.example.org/investigation#" {
		t.Errorf("unexpected namespace %q", cfg.Namespace)
	}
	if cfg.Output.Directory != "/tmp/graphs" {
		t.Errorf("unexpected output directory %q", cfg.Output.Directory)
	}
	if cfg.Output.Suffix != ".jsonld" {
		t.Errorf("unexpected output suffix %q", cfg.Output.Suffix)
	}
	// Unset keys fall back to defaults.
	if cfg.Output.Indent != "  " {
		t.Errorf("expected default indent, got %q", cfg.Output.Indent)
	}
	if !cfg.Log.JSON {
		t.Error("expected log.json true from file")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_Caches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}

	if first != second {
		t.Error("expected Load() to return the cached config")
	}
}
