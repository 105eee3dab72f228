package parse

import (
	"strings"
	"time"

	"github.com/tagforge/tagforge/pkg/markup"
	"github.com/tagforge/tagforge/pkg/metrics"
)

// Parse consumes a rendered document or fragment with a single root element
// and reconstructs its tree. A leading doctype declaration and surrounding
// whitespace are accepted; any other content outside the root is an error.
func Parse(input string) (*Element, error) {
	var start time.Time
	if metrics.Enabled() {
		start = time.Now()
	}

	p := &parser{input: input}
	p.skipSpace()
	p.skipDoctype()
	p.skipSpace()

	root, err := p.parseElement()
	if err != nil {
		metrics.RecordParseError()
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		metrics.RecordParseError()
		return nil, malformed(p.pos, "unexpected content after root element")
	}

	if metrics.Enabled() {
		metrics.ObserveParse(time.Since(start).Seconds())
	}
	return root, nil
}

// ParseFragment consumes markup with any number of top-level children
// (as produced by rendering a fragment) and returns them in order.
func ParseFragment(input string) ([]Child, error) {
	var start time.Time
	if metrics.Enabled() {
		start = time.Now()
	}

	p := &parser{input: input}
	p.skipDoctype()

	children, err := p.parseChildren("")
	if err != nil {
		metrics.RecordParseError()
		return nil, err
	}

	if metrics.Enabled() {
		metrics.ObserveParse(time.Since(start).Seconds())
	}
	return children, nil
}

// parser is a single-pass state machine over the input bytes. States follow
// the tag grammar: before-tag, tag name, attributes, element content,
// closing tag. It never backtracks past a committed token.
type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// skipDoctype consumes a leading <!doctype ...> declaration if present.
func (p *parser) skipDoctype() {
	if p.pos+2 > len(p.input) || p.input[p.pos] != '<' || p.input[p.pos+1] != '!' {
		return
	}
	if i := strings.IndexByte(p.input[p.pos:], '>'); i >= 0 {
		p.pos += i + 1
	}
}

// skipComment consumes a <!-- --> comment or a <!...> declaration.
func (p *parser) skipComment() error {
	start := p.pos
	if strings.HasPrefix(p.input[p.pos:], "<!--") {
		end := strings.Index(p.input[p.pos+4:], "-->")
		if end < 0 {
			return malformed(start, "unterminated comment")
		}
		p.pos += 4 + end + 3
		return nil
	}
	if i := strings.IndexByte(p.input[p.pos:], '>'); i >= 0 {
		p.pos += i + 1
		return nil
	}
	return malformed(start, "unterminated declaration")
}

// parseElement parses one element starting at '<'.
func (p *parser) parseElement() (*Element, error) {
	open := p.pos
	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		return nil, malformed(p.pos, "expected '<'")
	}
	p.pos++

	tag := p.readName()
	if tag == "" {
		return nil, malformed(open, "missing tag name")
	}
	tag = markup.NormalizeTag(tag)

	el := &Element{Tag: tag}

	selfClosing, err := p.parseAttributes(el, open)
	if err != nil {
		return nil, err
	}

	// Void and self-closed tags terminate without content.
	if selfClosing || markup.IsVoidElement(tag) {
		return el, nil
	}

	children, err := p.parseChildren(tag)
	if err != nil {
		return nil, err
	}
	el.Children = children
	return el, nil
}

// parseAttributes consumes the attribute list and the closing '>' of an
// open tag. Returns true for a self-closing "/>" tag.
func (p *parser) parseAttributes(el *Element, open int) (bool, error) {
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return false, malformed(open, "unterminated tag <%s", el.Tag)
		}

		switch p.input[p.pos] {
		case '>':
			p.pos++
			return false, nil
		case '/':
			p.pos++
			if p.pos >= len(p.input) || p.input[p.pos] != '>' {
				return false, malformed(p.pos, "expected '>' after '/'")
			}
			p.pos++
			return true, nil
		}

		nameStart := p.pos
		name := p.readAttrName()
		if name == "" {
			return false, malformed(nameStart, "invalid character in tag <%s", el.Tag)
		}

		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == '=' {
			p.pos++
			p.skipSpace()
			value, err := p.readAttrValue()
			if err != nil {
				return false, err
			}
			el.Attrs.Set(name, value)
		} else {
			el.Attrs.SetBare(name)
		}
	}
}

// readAttrValue reads a quoted or unquoted attribute value. Inside a quoted
// value, the opposite quote character is literal content.
func (p *parser) readAttrValue() (string, error) {
	if p.pos >= len(p.input) {
		return "", malformed(p.pos, "missing attribute value")
	}

	if q := p.input[p.pos]; q == '"' || q == '\'' {
		quoteStart := p.pos
		p.pos++
		end := strings.IndexByte(p.input[p.pos:], q)
		if end < 0 {
			return "", malformed(quoteStart, "unterminated attribute value")
		}
		value := p.input[p.pos : p.pos+end]
		p.pos += end + 1
		return unescape(value), nil
	}

	// Unquoted: up to the next whitespace or '>'.
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if isSpace(c) || c == '>' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", malformed(start, "missing attribute value")
	}
	return unescape(p.input[start:p.pos]), nil
}

// parseChildren accumulates text runs and nested elements until the
// matching closing tag (or, when tag is empty, end of input).
func (p *parser) parseChildren(tag string) ([]Child, error) {
	var children []Child

	for {
		if p.pos >= len(p.input) {
			if tag == "" {
				return children, nil
			}
			return nil, malformed(p.pos, "missing closing tag </%s>", tag)
		}

		if p.input[p.pos] != '<' {
			start := p.pos
			next := strings.IndexByte(p.input[p.pos:], '<')
			if next < 0 {
				p.pos = len(p.input)
			} else {
				p.pos += next
			}
			children = append(children, Text(unescape(p.input[start:p.pos])))
			continue
		}

		// '<' at p.pos: closing tag, comment, or nested element.
		if strings.HasPrefix(p.input[p.pos:], "</") {
			closeStart := p.pos
			p.pos += 2
			name := markup.NormalizeTag(p.readName())
			p.skipSpace()
			if p.pos >= len(p.input) || p.input[p.pos] != '>' {
				return nil, malformed(closeStart, "unterminated closing tag")
			}
			p.pos++
			if name != tag {
				return nil, malformed(closeStart, "mismatched closing tag </%s>, expected </%s>", name, tag)
			}
			return children, nil
		}

		if strings.HasPrefix(p.input[p.pos:], "<!") {
			if err := p.skipComment(); err != nil {
				return nil, err
			}
			continue
		}

		child, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// readName reads a tag name: letters, digits, '-'.
func (p *parser) readName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

// readAttrName reads an attribute name: anything up to whitespace, '=',
// '>', '/' or a quote. Wire names contain ':', '.' and '__', so the name
// charset is deliberately wide.
func (p *parser) readAttrName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if isSpace(c) || c == '=' || c == '>' || c == '/' || c == '"' || c == '\'' || c == '<' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
