package catalog

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Matcher decides whether a relative path is excluded from a directory
// resource. A compiled *ignore.GitIgnore satisfies it.
type Matcher interface {
	MatchesPath(relPath string) bool
}

// Options tunes how resources are discovered.
type Options struct {
	// CheckCase rejects relative paths containing upper-case characters.
	CheckCase bool
	// Ignore holds extra exclusion patterns, on top of the hidden-entry and
	// editor-backup rules that always apply. May be nil.
	Ignore Matcher
}

// Builder registers resources one at a time and assigns every embedded file
// the next value of a counter shared by all resources of the run.
type Builder struct {
	fs      afero.Fs
	opts    Options
	catalog *Catalog
	next    int
}

// NewBuilder returns a Builder reading from fsys.
func NewBuilder(fsys afero.Fs, opts Options) *Builder {
	return &Builder{
		fs:      fsys,
		opts:    opts,
		catalog: newCatalog(),
	}
}

// Catalog returns the catalog built so far.
func (b *Builder) Catalog() *Catalog {
	return b.catalog
}

// AddResource registers srcPath under name. A regular file becomes a file
// resource; a directory becomes a directory resource holding every retained
// file below it. On error nothing is registered and the counter is unchanged.
func (b *Builder) AddResource(name, srcPath string) error {
	name = NormalizeName(name)

	info, err := b.fs.Stat(srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newResourceError(ErrPathNotFound, name, srcPath, nil)
		}
		return newResourceError(ErrPathNotFound, name, srcPath, err)
	}

	if err := b.catalog.CheckName(name); err != nil {
		return err
	}

	switch {
	case info.IsDir():
		dir := newDirectory(name, srcPath)
		next := b.next
		if err := b.walk(dir, srcPath, "", &next); err != nil {
			return err
		}
		b.catalog.add(dir, next-b.next)
		slog.Debug("registered directory resource", "name", name, "path", srcPath, "files", next-b.next)
		b.next = next
	case info.Mode().IsRegular():
		f := &File{
			Name:  name,
			Entry: Entry{Index: b.next, SourcePath: srcPath},
		}
		b.catalog.add(f, 1)
		slog.Debug("registered file resource", "name", name, "path", srcPath, "index", b.next)
		b.next++
	default:
		return newResourceError(ErrInvalidResourceKind, name, srcPath, nil)
	}
	return nil
}

// walk registers the retained files below dirPath. relDir is dirPath relative
// to the resource root, '/'-separated, empty for the root itself.
func (b *Builder) walk(dir *Directory, dirPath, relDir string, next *int) error {
	infos, err := afero.ReadDir(b.fs, dirPath)
	if err != nil {
		return newResourceError(ErrPathNotFound, dir.Name, dirPath, err)
	}

	for _, info := range infos {
		full := filepath.Join(dirPath, info.Name())
		rel := strings.ReplaceAll(info.Name(), `\`, "/")
		if relDir != "" {
			rel = relDir + "/" + rel
		}

		if strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				slog.Info("Ignoring folder", "path", full)
			} else {
				slog.Debug("ignoring hidden file", "path", full)
			}
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := b.fs.Stat(full)
			if err != nil {
				slog.Debug("ignoring dangling symlink", "path", full)
				continue
			}
			if !target.Mode().IsRegular() {
				slog.Debug("ignoring symlink to non-regular file", "path", full)
				continue
			}
			info = target
		}

		if info.IsDir() {
			if b.ignored(rel + "/") {
				slog.Debug("ignoring folder by pattern", "path", full)
				continue
			}
			if err := b.walk(dir, full, rel, next); err != nil {
				return err
			}
			continue
		}

		if !info.Mode().IsRegular() {
			slog.Debug("ignoring non-regular file", "path", full)
			continue
		}
		if strings.Contains(info.Name(), "~") {
			slog.Debug("ignoring backup file", "path", full)
			continue
		}
		if b.ignored(rel) {
			slog.Debug("ignoring file by pattern", "path", full)
			continue
		}

		if err := CheckNoUpcase(rel, b.opts.CheckCase); err != nil {
			return newResourceError(ErrNamingViolation, dir.Name, rel, errUpcasePath)
		}
		if err := dir.CheckPath(rel); err != nil {
			return err
		}

		dir.add(&Entry{Index: *next, SourcePath: full, RelPath: rel})
		*next++
	}
	return nil
}

func (b *Builder) ignored(rel string) bool {
	return b.opts.Ignore != nil && b.opts.Ignore.MatchesPath(rel)
}
