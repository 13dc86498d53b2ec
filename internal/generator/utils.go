package generator

import (
	"bufio"
	"io"
	"text/template"

	"github.com/orthanc-tools/embedres/internal/templates"
)

// executeTemplate loads a template, parses it with the provided funcMap, and
// streams it into w.
func executeTemplate(tmplName string, w io.Writer, data interface{}, funcMap template.FuncMap) error {
	t, err := templates.Parse(tmplName, funcMap)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := t.Execute(bw, data); err != nil {
		// Keep whatever was rendered so far, like an unbuffered writer would.
		_ = bw.Flush()
		return err
	}
	return bw.Flush()
}
