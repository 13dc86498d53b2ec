package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// pendingArtifact is written next to its final path and renamed over it on commit.
// os.Rename is believed to be atomic on NTFS, without a documented guarantee.
type pendingArtifact struct {
	*os.File
	path string
	done bool
}

func createPendingArtifact(path string) (artifact, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temporary file for %s: %w", path, err)
	}
	return &pendingArtifact{File: f, path: path}, nil
}

func (a *pendingArtifact) commit() error {
	if a.done {
		return nil
	}
	a.done = true
	if err := a.File.Close(); err != nil {
		_ = os.Remove(a.File.Name())
		return fmt.Errorf("close %s: %w", a.File.Name(), err)
	}
	if err := os.Rename(a.File.Name(), a.path); err != nil {
		_ = os.Remove(a.File.Name())
		return fmt.Errorf("replace %s: %w", a.path, err)
	}
	return nil
}

func (a *pendingArtifact) discard() {
	if !a.done {
		a.done = true
		_ = a.File.Close()
		_ = os.Remove(a.File.Name())
	}
}
