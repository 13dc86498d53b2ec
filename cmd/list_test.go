package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunList(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir)

	var out bytes.Buffer
	err := runList(resourceOptions{}, []string{
		"welcome", filepath.Join(dir, "site", "index.html"),
		"assets", filepath.Join(dir, "site", "assets"),
	}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "WELCOME "))
	assert.Contains(t, lines[0], "#0 ")
	assert.True(t, strings.HasPrefix(lines[1], "ASSETS "))
	assert.Contains(t, lines[1], "2 files")
	assert.Equal(t, "  #1     app.js.map", lines[2])
	assert.Equal(t, "  #2     img.png", lines[3])
	assert.Equal(t, "3 buffers", lines[4])
}

func TestRunList_Errors(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir)

	err := runList(resourceOptions{}, []string{"bad name", filepath.Join(dir, "site", "index.html")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, catalog.ErrNamingViolation)

	err = runList(resourceOptions{}, []string{"A"}, &bytes.Buffer{})
	assert.Error(t, err)
}
