package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
target: generated/EmbeddedResources
namespace: OrthancPlugins
requires: ">= 1.0.0"
ignore:
  - "*.map"
output:
  atomic: true
  lock: true
  lock_timeout: 5s
resources:
  - name: welcome
    path: site/index.html
  - name: ASSETS
    path: site/assets
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "generated/EmbeddedResources", cfg.Target)
	assert.Equal(t, "OrthancPlugins", cfg.Namespace)
	require.NotNil(t, cfg.UpcaseCheck)
	assert.True(t, *cfg.UpcaseCheck)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*.map"}, cfg.Ignore)
	assert.True(t, cfg.Output.Atomic)
	assert.Equal(t, "5s", cfg.Output.LockTimeout)
	assert.Equal(t, []Resource{
		{Name: "welcome", Path: "site/index.html"},
		{Name: "ASSETS", Path: "site/assets"},
	}, cfg.Resources)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "unknown key", manifest: "targets: x\n"},
		{name: "bad namespace", manifest: "namespace: my-ns\n"},
		{name: "resource without path", manifest: "resources:\n  - name: A\n"},
		{name: "resource name not an identifier", manifest: "resources:\n  - name: my-logo\n    path: a.png\n"},
		{name: "wrong type", manifest: "upcase_check: maybe\n"},
		{name: "bad log level", manifest: "logging:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Resources)
	assert.True(t, *cfg.UpcaseCheck)
}

func TestValidate(t *testing.T) {
	f := false
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg:  Config{Resources: []Resource{{Name: "A", Path: "a"}}, UpcaseCheck: &f},
		},
		{
			name:      "duplicate names differ by case",
			cfg:       Config{Resources: []Resource{{Name: "logo", Path: "a"}, {Name: "LOGO", Path: "b"}}},
			wantError: "duplicate resource name: LOGO",
		},
		{
			name:      "unsatisfied constraint",
			cfg:       Config{Requires: ">= 2.0.0"},
			wantError: "manifest requires embedres >= 2.0.0",
		},
		{
			name:      "invalid constraint",
			cfg:       Config{Requires: "not a version"},
			wantError: "invalid requires constraint",
		},
		{
			name:      "half custom exceptions",
			cfg:       Config{Exceptions: ExceptionsConfig{OutOfRange: "Err(1)"}},
			wantError: "must be set together",
		},
		{
			name: "custom and system exceptions",
			cfg: Config{SystemException: true, Exceptions: ExceptionsConfig{
				OutOfRange: "Err(1)", InexistentPath: "Err(2)",
			}},
			wantError: "conflict with system_exception",
		},
		{
			name:      "bad lock timeout",
			cfg:       Config{Output: OutputConfig{LockTimeout: "soon"}},
			wantError: "invalid output.lock_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg, "1.2.0")
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantError)
			}
		})
	}
}

func TestLoad_ResolvesPathsAgainstManifestDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	cfg, err := Load(path, "1.2.0")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "generated", "EmbeddedResources"), cfg.Target)
	assert.Equal(t, filepath.Join(dir, "site", "index.html"), cfg.Resources[0].Path)
	assert.Equal(t, filepath.Join(dir, "site", "assets"), cfg.Resources[1].Path)
}

func TestLoad_VersionConstraint(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	_, err := Load(path, "0.9.0")
	assert.ErrorContains(t, err, "requires embedres")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "1.2.0")
	assert.ErrorContains(t, err, "failed to read")
}
