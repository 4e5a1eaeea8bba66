package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFind_WalksUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, DirName), 0o755); err != nil {
		t.Fatalf("failed to create workspace dir: %v", err)
	}

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	ws, err := Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if ws.Root != root {
		t.Errorf("expected root %q, got %q", root, ws.Root)
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFind_IgnoresMarkerFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, DirName), nil, 0o644); err != nil {
		t.Fatalf("failed to create marker file: %v", err)
	}

	_, err := Find(root)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("a plain file named %s is not a workspace, got %v", DirName, err)
	}
}

func TestInit(t *testing.T) {
	root := t.TempDir()

	ws, existed, err := Init(root)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if existed {
		t.Error("fresh Init should report existed=false")
	}
	if info, err := os.Stat(ws.Dir()); err != nil || !info.IsDir() {
		t.Fatalf("workspace dir not created: %v", err)
	}

	_, existed, err = Init(root)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if !existed {
		t.Error("second Init should report existed=true")
	}
}

func TestPaths(t *testing.T) {
	ws := &Workspace{Root: "/tmp/project"}

	if got := ws.DBPath(); got != filepath.Join("/tmp/project", DirName, DBFileName) {
		t.Errorf("unexpected db path %q", got)
	}
	if got := ws.InterchangePath(); got != filepath.Join("/tmp/project", DirName, InterchangeFileName) {
		t.Errorf("unexpected interchange path %q", got)
	}
}
