package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/wrk/internal/workspace"
)

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Author != "" || cfg.Agent != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, workspace.DirName), 0o755); err != nil {
		t.Fatalf("failed to create workspace dir: %v", err)
	}

	want := &Config{Version: "1", Author: "alice", Agent: "planner"}
	if err := Save(root, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, workspace.DirName), 0o755); err != nil {
		t.Fatalf("failed to create workspace dir: %v", err)
	}
	if err := os.WriteFile(Path(root), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Error("expected error for malformed config")
	}
}
