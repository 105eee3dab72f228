package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Pretty {
		t.Error("default Pretty should be true")
	}
	if cfg.Indent != DefaultIndent {
		t.Errorf("Indent = %q, want %q", cfg.Indent, DefaultIndent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `{"pretty": false, "indent": "\t"}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pretty {
		t.Error("Pretty should be false")
	}
	if cfg.Indent != "\t" {
		t.Errorf("Indent = %q, want tab", cfg.Indent)
	}
}

func TestLoadWalksToParent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"pretty": false}`), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pretty {
		t.Error("config in ancestor directory should apply")
	}
	if cfg.Indent != DefaultIndent {
		t.Errorf("empty indent should fall back to default, got %q", cfg.Indent)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err == nil {
		t.Fatal("invalid JSON should fail")
	}
	if cfg != Default() {
		t.Errorf("failed load should yield defaults, got %+v", cfg)
	}
}
