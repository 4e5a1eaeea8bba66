// Package workspace resolves the project-local .work directory. Discovery
// walks upward from the starting directory until a .work directory is found,
// the same way a version-control root is located. The resolved workspace is
// passed explicitly to everything below the CLI so core code never re-derives
// ambient directory state.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the workspace marker directory.
const DirName = ".work"

// Store file names inside the workspace directory.
const (
	DBFileName          = "work.db"
	InterchangeFileName = "work.jsonl"
)

const dirPerms = 0o755

// ErrNotFound reports that no .work directory exists here or above.
var ErrNotFound = errors.New("no .work directory found (run 'wrk init' first)")

// Workspace is a resolved workspace root.
type Workspace struct {
	Root string
}

// Dir returns the .work directory path.
func (w *Workspace) Dir() string {
	return filepath.Join(w.Root, DirName)
}

// DBPath returns the relational store file path.
func (w *Workspace) DBPath() string {
	return filepath.Join(w.Dir(), DBFileName)
}

// InterchangePath returns the interchange file path.
func (w *Workspace) InterchangePath() string {
	return filepath.Join(w.Dir(), InterchangeFileName)
}

// Find walks upward from startDir looking for a .work directory.
func Find(startDir string) (*Workspace, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, DirName))
		if err == nil && info.IsDir() {
			return &Workspace{Root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}

// Init creates the .work directory under root. The bool reports whether the
// workspace already existed, in which case nothing is touched.
func Init(root string) (*Workspace, bool, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve root: %w", err)
	}

	ws := &Workspace{Root: abs}
	if info, err := os.Stat(ws.Dir()); err == nil && info.IsDir() {
		return ws, true, nil
	}

	if err := os.MkdirAll(ws.Dir(), dirPerms); err != nil {
		return nil, false, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	return ws, false, nil
}
