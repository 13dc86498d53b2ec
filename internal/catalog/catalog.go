package catalog

import (
	"slices"
)

// Entry is one embedded file. Index is its position in the generated buffer
// table and is unique across the whole catalog.
type Entry struct {
	Index int
	// SourcePath is where the bytes are read from at generation time.
	SourcePath string
	// RelPath is the '/'-separated path inside a directory resource.
	// It is empty for standalone file resources.
	RelPath string
}

// Resource is either a *File or a *Directory.
type Resource interface {
	ResourceName() string
	isResource()
}

// File is a resource backed by a single file.
type File struct {
	Name string
	Entry
}

func (f *File) ResourceName() string { return f.Name }
func (*File) isResource()            {}

// Directory is a resource backed by a tree of files.
type Directory struct {
	Name   string
	Root   string
	files  []*Entry
	byPath map[string]*Entry
}

func newDirectory(name, root string) *Directory {
	return &Directory{
		Name:   name,
		Root:   root,
		byPath: make(map[string]*Entry),
	}
}

func (d *Directory) ResourceName() string { return d.Name }
func (*Directory) isResource()            {}

// Files returns the entries of the directory in registration order.
func (d *Directory) Files() []*Entry {
	return d.files
}

// Lookup returns the entry registered under relPath.
func (d *Directory) Lookup(relPath string) (*Entry, bool) {
	e, ok := d.byPath[relPath]
	return e, ok
}

// SortedPaths returns the relative paths of the directory in ascending
// lexicographic order, which is the order ListResources reports them in.
func (d *Directory) SortedPaths() []string {
	paths := make([]string, 0, len(d.files))
	for _, e := range d.files {
		paths = append(paths, e.RelPath)
	}
	slices.Sort(paths)
	return paths
}

func (d *Directory) add(e *Entry) {
	d.files = append(d.files, e)
	d.byPath[e.RelPath] = e
}

// Catalog is the ordered set of declared resources of one generation run.
type Catalog struct {
	resources []Resource
	byName    map[string]Resource
	count     int
}

func newCatalog() *Catalog {
	return &Catalog{byName: make(map[string]Resource)}
}

// Resources returns all resources in declaration order.
func (c *Catalog) Resources() []Resource {
	return c.resources
}

// Lookup finds a resource by name, case-insensitively.
func (c *Catalog) Lookup(name string) (Resource, bool) {
	r, ok := c.byName[NormalizeName(name)]
	return r, ok
}

// Files returns the file resources in declaration order.
func (c *Catalog) Files() []*File {
	var out []*File
	for _, r := range c.resources {
		if f, ok := r.(*File); ok {
			out = append(out, f)
		}
	}
	return out
}

// Directories returns the directory resources in declaration order.
func (c *Catalog) Directories() []*Directory {
	var out []*Directory
	for _, r := range c.resources {
		if d, ok := r.(*Directory); ok {
			out = append(out, d)
		}
	}
	return out
}

// Entries returns every embedded file, standalone or nested, in the order
// their buffers are emitted. For a catalog produced by a Builder, the i-th
// entry has Index i.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, 0, c.count)
	for _, r := range c.resources {
		switch r := r.(type) {
		case *File:
			out = append(out, &r.Entry)
		case *Directory:
			out = append(out, r.files...)
		}
	}
	return out
}

// Count is the number of embedded files, i.e. the size of the buffer table.
func (c *Catalog) Count() int {
	return c.count
}

func (c *Catalog) add(r Resource, files int) {
	c.resources = append(c.resources, r)
	c.byName[r.ResourceName()] = r
	c.count += files
}
