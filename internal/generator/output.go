package generator

import (
	"fmt"
	"io"
	"os"
)

const artifactPerm = 0644

// artifact is one generated file being written.
type artifact interface {
	io.Writer
	// commit makes the content visible at its final path.
	commit() error
	// discard releases the artifact. It is a no-op after commit.
	discard()
}

func createArtifact(path string, atomic bool) (artifact, error) {
	if atomic {
		return createPendingArtifact(path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, artifactPerm)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &directArtifact{File: f}, nil
}

// directArtifact writes straight to the final path.
type directArtifact struct {
	*os.File
	closed bool
}

func (a *directArtifact) commit() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if err := a.File.Close(); err != nil {
		return fmt.Errorf("close %s: %w", a.File.Name(), err)
	}
	return nil
}

func (a *directArtifact) discard() {
	if !a.closed {
		a.closed = true
		_ = a.File.Close()
	}
}
