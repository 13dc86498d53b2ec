package generator

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// siteFs is the tree used by most tests:
// WELCOME -> site/index.html ("abcd"), ASSETS -> site/assets/ (img.png = ff 00).
func siteFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string][]byte{
		"site/index.html":     []byte("abcd"),
		"site/assets/img.png": {0xff, 0x00},
	}
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fsys, name, data, 0644))
	}
	return fsys
}

func buildCatalog(t *testing.T, fsys afero.Fs, pairs ...string) *catalog.Catalog {
	t.Helper()
	require.Zero(t, len(pairs)%2, "pairs must be name/path")
	b := catalog.NewBuilder(fsys, catalog.Options{CheckCase: true})
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, b.AddResource(pairs[i], pairs[i+1]))
	}
	return b.Catalog()
}

var (
	bufferRe = regexp.MustCompile(`static const uint8_t resource(\d+)Buffer\[\] = \{([^}]*)\};`)
	sizeRe   = regexp.MustCompile(`static const size_t resource(\d+)Size = (\d+);`)
)

// parseBuffers extracts the byte buffers of a definitions artifact, keyed by
// index and truncated to their declared size.
func parseBuffers(t *testing.T, source string) map[int][]byte {
	t.Helper()

	sizes := make(map[int]int)
	for _, m := range sizeRe.FindAllStringSubmatch(source, -1) {
		idx, _ := strconv.Atoi(m[1])
		size, _ := strconv.Atoi(m[2])
		sizes[idx] = size
	}

	buffers := make(map[int][]byte)
	for _, m := range bufferRe.FindAllStringSubmatch(source, -1) {
		idx, _ := strconv.Atoi(m[1])
		var data []byte
		for _, field := range strings.Split(m[2], ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseUint(field, 0, 8)
			require.NoError(t, err, "buffer %d field %q", idx, field)
			data = append(data, byte(v))
		}
		size, ok := sizes[idx]
		require.True(t, ok, "buffer %d has no size", idx)
		require.LessOrEqual(t, size, len(data))
		buffers[idx] = data[:size]
	}
	require.Len(t, buffers, len(sizes))
	return buffers
}
