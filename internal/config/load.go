package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.schema.json
var manifestSchema string

var schema = jsonschema.MustCompileString("manifest.schema.json", manifestSchema)

// Load reads the manifest at path, checks it against the manifest schema,
// applies defaults and resolves relative paths against the manifest directory.
func Load(path string, generatorVersion string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ResolvePaths(cfg, filepath.Dir(path))
	if err := Validate(cfg, generatorVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and schema-checks a manifest without touching the filesystem.
func Parse(data []byte) (*Config, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// validateSchema runs the YAML document through JSON so the validator sees
// plain JSON values.
func validateSchema(raw interface{}) error {
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
