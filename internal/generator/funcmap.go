package generator

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/orthanc-tools/embedres/internal/encoder"
	"github.com/spf13/afero"
)

// cQuote renders s as a C string literal. Backslashes, quotes, question marks
// (trigraphs) and control bytes are escaped; other bytes pass through.
func cQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == '"' || c == '?':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&sb, "\\%03o", c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// definitionsFuncMap returns the helpers of the definitions template.
// encode re-reads each entry from fsys while the artifact is being written.
func definitionsFuncMap(fsys afero.Fs) template.FuncMap {
	return template.FuncMap{
		"cquote": cQuote,
		"encode": func(e *catalog.Entry) (encoder.Literal, error) {
			return encoder.EncodeFile(fsys, e.SourcePath)
		},
	}
}
