//go:build !windows

package generator

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio"
)

// pendingArtifact is written next to its final path and renamed over it on commit.
type pendingArtifact struct {
	*renameio.PendingFile
	path string
	done bool
}

func createPendingArtifact(path string) (artifact, error) {
	pf, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return nil, fmt.Errorf("create temporary file for %s: %w", path, err)
	}
	if err := pf.Chmod(artifactPerm); err != nil {
		_ = pf.Cleanup()
		return nil, fmt.Errorf("chmod temporary file for %s: %w", path, err)
	}
	return &pendingArtifact{PendingFile: pf, path: path}, nil
}

func (a *pendingArtifact) commit() error {
	if a.done {
		return nil
	}
	a.done = true
	if err := a.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", a.path, err)
	}
	return nil
}

func (a *pendingArtifact) discard() {
	if !a.done {
		a.done = true
		_ = a.Cleanup()
	}
}
