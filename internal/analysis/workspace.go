package analysis

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	figuresDir   = "results/figures"
	notebooksDir = "notebooks"
	dirPerm      = 0o755
)

//nolint:gochecknoglobals // Read-only project layout
var projectDirs = []string{
	"data/raw",
	"data/processed",
	"data/external",
	notebooksDir,
	figuresDir,
	"results/reports",
}

// Workspace is the project directory tree rooted at one path.
type Workspace struct {
	root string
}

// NewWorkspace creates a workspace rooted at root.
func NewWorkspace(root string) *Workspace {
	if root == "" {
		root = "."
	}
	return &Workspace{root: root}
}

// Prepare creates the project directories. Existing directories are kept.
func (w *Workspace) Prepare() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(w.Path(dir), dirPerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Path resolves rel against the workspace root. Absolute paths are returned as is.
func (w *Workspace) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(w.root, rel)
}

// FiguresDir returns the directory figures are saved to.
func (w *Workspace) FiguresDir() string {
	return w.Path(figuresDir)
}

// NotebooksDir returns the directory for notebooks.
func (w *Workspace) NotebooksDir() string {
	return w.Path(notebooksDir)
}
