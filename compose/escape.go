package compose

import (
	"bytes"
	"fmt"

	"github.com/benbjohnson/tailcss/scanner"
)

// Escape escapes a class name for use as a CSS identifier.
//
// Name code points are written as-is. A digit that starts the identifier,
// or follows a leading "-", and control characters use a hex escape
// followed by a space. Everything else is escaped with a backslash.
func Escape(name string) string {
	var buf bytes.Buffer
	for i, ch := range name {
		switch {
		case ch == 0:
			buf.WriteString("�")
		case ch < 0x20 || ch == 0x7f:
			fmt.Fprintf(&buf, "\\%x ", ch)
		case scanner.IsDigit(ch) && (i == 0 || (i == 1 && name[0] == '-')):
			fmt.Fprintf(&buf, "\\%x ", ch)
		case ch == '-' && i == 0 && len(name) == 1:
			buf.WriteString("\\-")
		case scanner.IsName(ch):
			buf.WriteRune(ch)
		default:
			buf.WriteByte('\\')
			buf.WriteRune(ch)
		}
	}
	return buf.String()
}
