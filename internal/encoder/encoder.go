// Package encoder renders file contents as C array initializers.
package encoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrIOFailure is wrapped by every read error returned from EncodeFile.
var ErrIOFailure = errors.New("cannot read resource file")

// bytesPerLine matches the layout of the generated buffers.
const bytesPerLine = 16

// emptyPlaceholder keeps zero-length buffers legal: C++ forbids arrays of size 0.
const emptyPlaceholder = "  0"

// Literal is the initializer text of one buffer together with the number of
// bytes it stands for. Size is authoritative: an empty file still renders a
// placeholder element but has Size 0.
type Literal struct {
	Text string
	Size int
}

// EncodeFile reads path from fsys and renders its bytes verbatim.
func EncodeFile(fsys afero.Fs, path string) (Literal, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Literal{}, fmt.Errorf("%w: %s: %w", ErrIOFailure, path, err)
	}
	return EncodeBytes(data), nil
}

// EncodeBytes renders data as comma separated 0xNN values, sixteen per line,
// each line introduced by a newline and four spaces of indentation.
func EncodeBytes(data []byte) Literal {
	if len(data) == 0 {
		return Literal{Text: emptyPlaceholder, Size: 0}
	}

	var sb strings.Builder
	// ", " + "\n    " + "0xNN" per byte at most.
	sb.Grow(len(data)*6 + (len(data)/bytesPerLine+1)*5)
	for pos, c := range data {
		if pos > 0 {
			sb.WriteString(", ")
		}
		if pos%bytesPerLine == 0 {
			sb.WriteString("\n    ")
		}
		sb.WriteString("0x")
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0f])
	}
	return Literal{Text: sb.String(), Size: len(data)}
}

const hexDigits = "0123456789abcdef"
