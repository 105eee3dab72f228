package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/tagforge/tagforge/pkg/attrkey"
	"github.com/tagforge/tagforge/pkg/markup"
	"github.com/tagforge/tagforge/pkg/metrics"
)

// doctype is emitted before the document root tag.
const doctype = "<!doctype html>"

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation.
	// Intended for the CLI formatter, not the serving hot path.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes markup trees to HTML. A Renderer is stateless and
// safe for concurrent use; per-call scratch memory comes from pools.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Output is a completed render: the markup text and its byte length.
// Immutable once returned.
type Output struct {
	HTML   string
	Length int
}

// String returns the rendered markup.
func (o Output) String() string {
	return o.HTML
}

// Render serializes a tree depth-first, left-to-right. Output ordering is
// deterministic for identical input. Fails fast on the first invalid
// attribute key or unsupported child rather than emitting partial markup.
func (r *Renderer) Render(node *markup.Node) (Output, error) {
	var start time.Time
	if metrics.Enabled() {
		start = time.Now()
	}

	buf := acquireBuffer(estimate(node))
	defer releaseBuffer(buf)
	cache := attrkey.AcquireCache()
	defer attrkey.ReleaseCache(cache)

	w := walker{buf: buf, cache: cache, config: r.config}
	if err := w.renderNode(node, 0); err != nil {
		return Output{}, err
	}

	out := Output{HTML: buf.String(), Length: buf.Len()}
	if metrics.Enabled() {
		metrics.ObserveRender(time.Since(start).Seconds(), out.Length)
	}
	return out, nil
}

// RenderToWriter renders a tree and writes the result to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *markup.Node) error {
	out, err := r.Render(node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out.HTML)
	return err
}

// defaultRenderer backs the package-level Render.
var defaultRenderer = NewRenderer(Config{})

// Render serializes a tree with the default configuration.
func Render(node *markup.Node) (Output, error) {
	return defaultRenderer.Render(node)
}

// walker carries per-call render state. One walker per call; never shared.
type walker struct {
	buf    *bytes.Buffer
	cache  *attrkey.Cache
	config Config
}

func (w *walker) renderNode(node *markup.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case markup.KindElement:
		return w.renderElement(node, depth)
	case markup.KindText:
		writeEscapedText(w.buf, node.Text)
		return nil
	case markup.KindRaw:
		w.buf.WriteString(node.Text)
		return nil
	case markup.KindFragment:
		for _, child := range node.Children {
			if err := w.renderNode(child, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (w *walker) renderElement(node *markup.Node, depth int) error {
	if bad := node.BadChildType(); bad != "" {
		return &UnsupportedChildError{Tag: node.Tag, Type: bad}
	}

	tag := node.Tag

	// The document root carries a leading doctype declaration.
	if depth == 0 && tag == markup.DocumentRootTag {
		w.buf.WriteString(doctype)
		if w.config.Pretty {
			w.buf.WriteByte('\n')
		}
	}

	if w.config.Pretty && depth > 0 {
		w.writeIndent(depth)
	}

	w.buf.WriteByte('<')
	w.buf.WriteString(tag)

	for _, attr := range node.Attrs {
		if err := w.renderAttr(attr); err != nil {
			return fmt.Errorf("<%s>: %w", tag, err)
		}
	}

	// Void elements emit no closing tag and never recurse.
	if markup.IsVoidElement(tag) {
		w.buf.WriteByte('>')
		if w.config.Pretty {
			w.buf.WriteByte('\n')
		}
		return nil
	}

	w.buf.WriteByte('>')

	hasBlockChildren := len(node.Children) > 0 && !markup.IsInlineElement(tag) && !onlyTextChildren(node)
	if w.config.Pretty && hasBlockChildren {
		w.buf.WriteByte('\n')
	}

	for _, child := range node.Children {
		if err := w.renderNode(child, depth+1); err != nil {
			return err
		}
	}

	if w.config.Pretty && hasBlockChildren {
		w.writeIndent(depth)
	}

	w.buf.WriteString("</")
	w.buf.WriteString(tag)
	w.buf.WriteByte('>')
	if w.config.Pretty {
		w.buf.WriteByte('\n')
	}

	return nil
}

// renderAttr transforms the shorthand key and writes one attribute.
// Boolean true renders the bare wire name; false omits the attribute.
func (w *walker) renderAttr(attr markup.Attr) error {
	t, err := w.cache.Transform(attr.Key)
	if err != nil {
		return err
	}

	if b, ok := attr.Value.(bool); ok {
		if b {
			w.buf.WriteByte(' ')
			w.buf.WriteString(t.Name)
			w.buf.WriteString(t.Modifiers)
		}
		return nil
	}

	w.buf.WriteByte(' ')
	w.buf.WriteString(t.Name)
	w.buf.WriteString(t.Modifiers)
	w.buf.WriteString(`="`)
	writeEscapedAttr(w.buf, attrValueString(attr.Value))
	w.buf.WriteByte('"')
	return nil
}

// onlyTextChildren reports whether every child is text or raw, in which case
// pretty mode keeps the element on one line.
func onlyTextChildren(node *markup.Node) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind != markup.KindText && child.Kind != markup.KindRaw {
			return false
		}
	}
	return true
}

func (w *walker) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.config.Indent)
	}
}

// attrValueString converts an attribute value to its wire string.
func attrValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
