package encoder

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBytes(t *testing.T) {
	lit := EncodeBytes([]byte("abcd"))
	assert.Equal(t, "\n    0x61, 0x62, 0x63, 0x64", lit.Text)
	assert.Equal(t, 4, lit.Size)
}

func TestEncodeBytes_FullRange(t *testing.T) {
	lit := EncodeBytes([]byte{0xff, 0x00, 0x0a, 0x80})
	assert.Equal(t, "\n    0xff, 0x00, 0x0a, 0x80", lit.Text)
}

func TestEncodeBytes_LineBreaks(t *testing.T) {
	data := make([]byte, 33)
	for i := range data {
		data[i] = byte(i)
	}
	lit := EncodeBytes(data)
	assert.Equal(t, 33, lit.Size)

	lines := strings.Split(lit.Text, "\n")
	require.Len(t, lines, 4) // leading empty line, then 16 + 16 + 1 values
	assert.Equal(t, "", lines[0])
	assert.Equal(t, 16, strings.Count(lines[1], "0x"))
	assert.Equal(t, 16, strings.Count(lines[2], "0x"))
	assert.Equal(t, "    0x20", lines[3])
	assert.True(t, strings.HasPrefix(lines[2], "    0x10, "))
}

func TestEncodeBytes_Empty(t *testing.T) {
	lit := EncodeBytes(nil)
	assert.Equal(t, 0, lit.Size)
	assert.Equal(t, "  0", lit.Text)
}

func TestEncodeFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "img.png", []byte{0xff, 0x00}, 0644))

	lit, err := EncodeFile(fsys, "img.png")
	require.NoError(t, err)
	assert.Equal(t, Literal{Text: "\n    0xff, 0x00", Size: 2}, lit)
}

func TestEncodeFile_Missing(t *testing.T) {
	_, err := EncodeFile(afero.NewMemMapFs(), "gone.bin")
	require.ErrorIs(t, err, ErrIOFailure)
	assert.Contains(t, err.Error(), "gone.bin")
}
