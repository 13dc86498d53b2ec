package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"time"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/spf13/afero"
)

const (
	// DefaultNamespace wraps the generated code when none is configured.
	DefaultNamespace = "Orthanc"
	// HeaderExt and SourceExt are appended to the target base path.
	HeaderExt = ".h"
	SourceExt = ".cpp"
)

var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)

// Options contains the settings of one generation run.
type Options struct {
	// Namespace is the outer C++ namespace; nested forms like "A::B" need C++17.
	Namespace string
	// Policy decides what the accessors throw.
	Policy ErrorPolicy
	// Atomic renders both artifacts to temporary files and moves them into
	// place only once both are complete. Otherwise artifacts are written in
	// place and a failure can leave a truncated file behind.
	Atomic bool
	// Lock holds <target>.lock for the duration of the run, waiting at most
	// LockTimeout for another generator to release it.
	Lock        bool
	LockTimeout time.Duration
}

// Validate checks the options before any file is touched.
func (o Options) Validate() error {
	if !namespacePattern.MatchString(o.Namespace) {
		return fmt.Errorf("invalid namespace %q", o.Namespace)
	}
	return o.Policy.Validate()
}

// Generate writes target+".h" then target+".cpp" for cat, reading resource
// bytes from fsys.
//
// Parameters:
//   - ctx: Bounds the wait for the target lock.
//   - fsys: The filesystem the catalog was built from.
//   - cat: The resources to embed.
//   - target: The base path of both artifacts, without extension.
//   - opts: Generation options.
//
// Returns:
//   - error: The first failure. Without opts.Atomic, artifacts already
//     written must be treated as invalid.
func Generate(ctx context.Context, fsys afero.Fs, cat *catalog.Catalog, target string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if opts.Lock {
		unlock, err := lockTarget(ctx, target, opts.LockTimeout)
		if err != nil {
			return err
		}
		defer unlock()
	}

	baseName := filepath.Base(target)
	headerPath := target + HeaderExt
	sourcePath := target + SourceExt

	header, err := createArtifact(headerPath, opts.Atomic)
	if err != nil {
		return err
	}
	defer header.discard()

	if err := WriteDeclarations(header, cat, opts); err != nil {
		return fmt.Errorf("write %s: %w", headerPath, err)
	}
	if !opts.Atomic {
		if err := header.commit(); err != nil {
			return err
		}
	}
	slog.Debug("declarations rendered", "path", headerPath, "files", len(cat.Files()), "directories", len(cat.Directories()))

	source, err := createArtifact(sourcePath, opts.Atomic)
	if err != nil {
		return err
	}
	defer source.discard()

	if err := WriteDefinitions(source, fsys, cat, baseName, opts); err != nil {
		return fmt.Errorf("write %s: %w", sourcePath, err)
	}
	slog.Debug("definitions rendered", "path", sourcePath, "buffers", cat.Count())

	if opts.Atomic {
		if err := header.commit(); err != nil {
			return err
		}
	}
	if err := source.commit(); err != nil {
		return err
	}

	slog.Info("embedded resources generated", "header", headerPath, "source", sourcePath, "buffers", cat.Count())
	return nil
}
