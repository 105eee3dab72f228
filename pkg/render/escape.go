package render

import (
	"bytes"
	"strings"
)

const textSpecials = "&<>\"'"
const attrSpecials = "&<>\"'\n\r\t"

// writeEscapedText writes s with HTML entity escaping for text content.
// Runs of ordinary bytes are copied in bulk.
func writeEscapedText(buf *bytes.Buffer, s string) {
	for {
		i := strings.IndexAny(s, textSpecials)
		if i < 0 {
			buf.WriteString(s)
			return
		}
		buf.WriteString(s[:i])
		buf.WriteString(entity(s[i]))
		s = s[i+1:]
	}
}

// writeEscapedAttr writes s escaped for an attribute value. In addition to
// the standard entities it escapes whitespace characters that could break
// attribute parsing.
func writeEscapedAttr(buf *bytes.Buffer, s string) {
	for {
		i := strings.IndexAny(s, attrSpecials)
		if i < 0 {
			buf.WriteString(s)
			return
		}
		buf.WriteString(s[:i])
		buf.WriteString(entity(s[i]))
		s = s[i+1:]
	}
}

func entity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	case '\n':
		return "&#10;"
	case '\r':
		return "&#13;"
	case '\t':
		return "&#9;"
	default:
		return string(c)
	}
}

// EscapeText returns s with HTML entity escaping applied.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, textSpecials) {
		return s
	}
	var buf bytes.Buffer
	buf.Grow(len(s) + 8)
	writeEscapedText(&buf, s)
	return buf.String()
}
