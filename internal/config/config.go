package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// DefaultFileName is the manifest looked up by `embedres generate --config`
// when no explicit path is given and written by `embedres init`.
const DefaultFileName = "embedres.yaml"

// Config represents the top-level structure of an embedres manifest.
// It declares the artifacts to generate and the ordered list of resources.
type Config struct {
	// Target is the base path of the generated artifacts, without extension.
	Target string `yaml:"target"`
	// Namespace wraps the generated declarations and definitions.
	Namespace string `yaml:"namespace"`
	// UpcaseCheck rejects directory files whose relative path has an upper-case letter.
	// Defaults to true.
	UpcaseCheck *bool `yaml:"upcase_check"`
	// SystemException makes the accessors throw ::std::runtime_error.
	SystemException bool `yaml:"system_exception"`
	// Requires is a semantic version constraint on the generator (e.g. ">= 1.1").
	Requires string `yaml:"requires"`
	// Exceptions overrides what the accessors throw.
	Exceptions ExceptionsConfig `yaml:"exceptions"`
	// Ignore lists gitignore-style patterns excluded from directory resources.
	Ignore []string `yaml:"ignore"`
	// Output controls how the artifacts are written.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Resources are registered in this order.
	Resources []Resource `yaml:"resources"`
}

// ExceptionsConfig customizes the raise sites of the generated accessors.
type ExceptionsConfig struct {
	// Header is the application exception header (default OrthancException.h).
	Header string `yaml:"header"`
	// Include replaces the whole include line, e.g. `#include <my/errors.h>`.
	Include string `yaml:"include"`
	// OutOfRange is thrown for an unknown resource identifier.
	OutOfRange string `yaml:"out_of_range"`
	// InexistentPath is thrown for an unknown path in a directory resource.
	InexistentPath string `yaml:"inexistent_path"`
}

// Custom reports whether the raise sites are given explicitly.
func (e ExceptionsConfig) Custom() bool {
	return e.OutOfRange != "" || e.InexistentPath != ""
}

// OutputConfig controls artifact writing.
type OutputConfig struct {
	Atomic      bool   `yaml:"atomic"`
	Lock        bool   `yaml:"lock"`
	LockTimeout string `yaml:"lock_timeout"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path.
	Path string `yaml:"path"`
}

// Resource is one named file or directory to embed.
type Resource struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.UpcaseCheck == nil {
		t := true
		config.UpcaseCheck = &t
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// ResolvePaths makes the target and resource paths relative to dir, the
// directory holding the manifest. Absolute paths are kept.
func ResolvePaths(config *Config, dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	config.Target = resolve(config.Target)
	for i := range config.Resources {
		config.Resources[i].Path = resolve(config.Resources[i].Path)
	}
	if config.Logging.Path != "" {
		config.Logging.Path = resolve(config.Logging.Path)
	}
}

// Validate checks the manifest for errors that the schema cannot express.
//
// Parameters:
//   - config: The Config object to validate.
//   - generatorVersion: The running generator version, matched against Requires.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config, generatorVersion string) error {
	if config.Requires != "" {
		constraint, err := semver.NewConstraint(config.Requires)
		if err != nil {
			return fmt.Errorf("invalid requires constraint %q: %w", config.Requires, err)
		}
		v, err := semver.NewVersion(generatorVersion)
		if err != nil {
			return fmt.Errorf("generator version %q is not a semantic version: %w", generatorVersion, err)
		}
		if !constraint.Check(v) {
			return fmt.Errorf("manifest requires embedres %s, running %s", config.Requires, v)
		}
	}

	seen := make(map[string]bool)
	for i, res := range config.Resources {
		if res.Name == "" || res.Path == "" {
			return fmt.Errorf("resource #%d: name and path are required", i+1)
		}
		key := strings.ToUpper(res.Name)
		if seen[key] {
			return fmt.Errorf("duplicate resource name: %s", key)
		}
		seen[key] = true
	}

	if (config.Exceptions.OutOfRange == "") != (config.Exceptions.InexistentPath == "") {
		return fmt.Errorf("exceptions: out_of_range and inexistent_path must be set together")
	}
	if config.SystemException && config.Exceptions.Custom() {
		return fmt.Errorf("exceptions: custom exceptions conflict with system_exception")
	}

	if config.Output.LockTimeout != "" {
		if _, err := time.ParseDuration(config.Output.LockTimeout); err != nil {
			return fmt.Errorf("invalid output.lock_timeout %q: %w", config.Output.LockTimeout, err)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// LockTimeout returns the parsed lock timeout, zero when unset.
func (c *Config) LockTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Output.LockTimeout)
	return d
}
