// Package templates holds the text/template sources of the generated C++ artifacts.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

const (
	// Declarations renders the header with the two resource enumerations.
	Declarations = "embedded_resources.h.tmpl"
	// Definitions renders the buffers and accessor bodies.
	Definitions = "embedded_resources.cpp.tmpl"
	// Manifest is the starter manifest written by `embedres init`.
	Manifest = "embedres.yaml.tmpl"
)

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template and registers funcs on it before parsing.
func Parse(name string, funcs template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcs == nil {
		funcs = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return t, nil
}
