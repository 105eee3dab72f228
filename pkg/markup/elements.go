package markup

// voidElements are elements that cannot have children and have no closing tag.
// These are self-closing in HTML5.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// inlineElements are elements that are typically rendered inline
// and don't need newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"bdi":    true,
	"bdo":    true,
	"br":     true,
	"cite":   true,
	"code":   true,
	"data":   true,
	"dfn":    true,
	"em":     true,
	"i":      true,
	"kbd":    true,
	"mark":   true,
	"q":      true,
	"s":      true,
	"samp":   true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"u":      true,
	"var":    true,
	"wbr":    true,
}

// IsInlineElement returns true if the tag is an inline element.
func IsInlineElement(tag string) bool {
	return inlineElements[tag]
}

// DocumentRootTag is the tag that triggers a leading doctype declaration.
const DocumentRootTag = "html"

// internedTags holds the canonical string for common tag names so that
// repeated parses and normalizations reference one allocation instead of
// copying the name each time. Lookup misses return the input unchanged.
var internedTags = map[string]string{}

func init() {
	for _, tag := range []string{
		"a", "article", "aside", "body", "br", "button", "code", "div",
		"em", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"head", "header", "html", "i", "img", "input", "label", "li",
		"link", "main", "meta", "nav", "ol", "option", "p", "pre",
		"script", "section", "select", "span", "strong", "style", "table",
		"tbody", "td", "textarea", "th", "thead", "title", "tr", "ul",
	} {
		internedTags[tag] = tag
	}
}

// InternTag returns the canonical instance of a common tag name,
// or s itself if the tag is not interned.
func InternTag(s string) string {
	if canonical, ok := internedTags[s]; ok {
		return canonical
	}
	return s
}

// NormalizeTag lowercases an ASCII tag name and interns common names.
// Non-ASCII bytes pass through unchanged.
func NormalizeTag(tag string) string {
	// Fast path: already lowercase.
	lower := true
	for i := 0; i < len(tag); i++ {
		if c := tag[i]; c >= 'A' && c <= 'Z' {
			lower = false
			break
		}
	}
	if lower {
		return InternTag(tag)
	}

	b := make([]byte, len(tag))
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return InternTag(string(b))
}
