package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitializeConsoleDefaultsToInfo(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatal(err)
	}
	core := Logger.Desugar().Core()
	if core.Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled before any verbosity was requested")
	}
	if !core.Enabled(zapcore.InfoLevel) {
		t.Error("info not enabled after Initialize")
	}
}

func TestSetVerbosityEnablesDebug(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatal(err)
	}
	SetVerbosity(0)
	if Logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("count 0 must keep the info floor")
	}
	SetVerbosity(1)
	if !Logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("count 1 must enable debug")
	}
}

func TestSetVerbosityKeepsJSONOutput(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	if err := Initialize(true); err != nil {
		t.Fatal(err)
	}
	SetVerbosity(1)

	Logger.Debugw("building graph", "classes", 3)
	Sync()

	w.Close()
	os.Stderr = orig
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	line := bytes.TrimSpace(out)
	if len(line) == 0 {
		t.Fatal("debug record not emitted after SetVerbosity")
	}
	var record map[string]any
	if err := json.Unmarshal(line, &record); err != nil {
		t.Fatalf("verbose output is no longer JSON: %v: %s", err, line)
	}
	if record["level"] != "debug" {
		t.Errorf("level = %v, want debug", record["level"])
	}
	if record["msg"] != "building graph" {
		t.Errorf("msg = %v, want building graph", record["msg"])
	}
}
