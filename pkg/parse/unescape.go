package parse

import (
	"strconv"
	"strings"
)

// namedEntities covers the entities the renderer emits plus the common
// HTML named set. Anything unrecognized is left verbatim.
var namedEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": "\"",
	"apos": "'",
	"nbsp": " ",
}

// unescape decodes entity references in text content and attribute values,
// so that re-rendering re-escapes to the identical bytes.
func unescape(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:amp])
	s = s[amp:]

	for len(s) > 0 {
		if s[0] != '&' {
			next := strings.IndexByte(s, '&')
			if next < 0 {
				b.WriteString(s)
				break
			}
			b.WriteString(s[:next])
			s = s[next:]
			continue
		}

		semi := strings.IndexByte(s, ';')
		if semi < 0 || semi > 12 {
			b.WriteByte('&')
			s = s[1:]
			continue
		}

		name := s[1:semi]
		if decoded, ok := decodeEntity(name); ok {
			b.WriteString(decoded)
			s = s[semi+1:]
			continue
		}

		b.WriteByte('&')
		s = s[1:]
	}

	return b.String()
}

func decodeEntity(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if name[0] == '#' {
		digits := name[1:]
		base := 10
		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			digits = digits[1:]
			base = 16
		}
		n, err := strconv.ParseUint(digits, base, 32)
		if err != nil || n == 0 || n > 0x10ffff {
			return "", false
		}
		return string(rune(n)), true
	}

	decoded, ok := namedEntities[name]
	return decoded, ok
}
