package generator

import (
	"io"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/orthanc-tools/embedres/internal/templates"
	"github.com/spf13/afero"
)

// artifactData is what both templates are rendered with.
type artifactData struct {
	Namespace   string
	BaseName    string
	Policy      ErrorPolicy
	Files       []*catalog.File
	Directories []*catalog.Directory
	Entries     []*catalog.Entry
}

func newArtifactData(cat *catalog.Catalog, baseName string, opts Options) *artifactData {
	return &artifactData{
		Namespace:   opts.Namespace,
		BaseName:    baseName,
		Policy:      opts.Policy,
		Files:       cat.Files(),
		Directories: cat.Directories(),
		Entries:     cat.Entries(),
	}
}

// WriteDeclarations writes the header artifact: one enumeration of file
// resources, one of directory resources, and the accessor prototypes.
func WriteDeclarations(w io.Writer, cat *catalog.Catalog, opts Options) error {
	return executeTemplate(templates.Declarations, w, newArtifactData(cat, "", opts), nil)
}

// WriteDefinitions writes the source artifact that includes baseName+".h".
// Every entry of cat is read again from fsys and gets its own buffer, even
// when two files have identical contents.
func WriteDefinitions(w io.Writer, fsys afero.Fs, cat *catalog.Catalog, baseName string, opts Options) error {
	return executeTemplate(templates.Definitions, w, newArtifactData(cat, baseName, opts), definitionsFuncMap(fsys))
}
