package markup

import "strconv"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text, escaped on render
	KindRaw                  // Pre-escaped markup, copied verbatim
	KindFragment             // Grouping without a wrapper tag
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is one element of a markup tree. A Node owns its attributes and
// children exclusively; the same *Node must not appear under two parents.
type Node struct {
	Kind     Kind
	Tag      string  // Element tag name (e.g. "div")
	Attrs    []Attr  // Ordered attributes, duplicates allowed
	Children []*Node // Child nodes, in declaration order
	Text     string  // For KindText and KindRaw

	// badChild records the Go type of an argument El could not convert.
	// The renderer reports it as an UnsupportedChildError instead of
	// silently dropping the value.
	badChild string
}

// Attr is a single attribute. Key is the shorthand form (e.g.
// "on_click__debounce_500ms"); the renderer transforms it to its wire name.
// Value may be a string, bool, int, int64 or float64. Boolean values render
// as the bare attribute name when true and are omitted when false.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// BadChildType returns the type name of an unconvertible argument passed to
// El, or "" if the subtree is well formed at this node.
func (n *Node) BadChildType() string {
	return n.badChild
}

// El creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string, int, int64,
// float64, bool. Strings and numbers become text children; booleans become
// "true"/"false" text. Any other type marks the node so that rendering fails
// with an UnsupportedChildError rather than emitting partial markup.
func El(tag string, args ...any) *Node {
	node := &Node{
		Kind: KindElement,
		Tag:  NormalizeTag(tag),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			if v.Key != "" {
				node.Attrs = append(node.Attrs, v)
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Attrs = append(node.Attrs, a)
				}
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))

		case int:
			node.Children = append(node.Children, Text(strconv.Itoa(v)))

		case int64:
			node.Children = append(node.Children, Text(strconv.FormatInt(v, 10)))

		case float64:
			node.Children = append(node.Children, Text(strconv.FormatFloat(v, 'g', -1, 64)))

		case bool:
			node.Children = append(node.Children, Text(strconv.FormatBool(v)))

		default:
			if node.badChild == "" {
				node.badChild = typeName(v)
			}
		}
	}

	return node
}

// Text creates a text node. Content is escaped when rendered.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Raw creates a node whose content is copied verbatim on render.
// The caller asserts the content is already safe markup.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
// Accepts the same argument types as El; attributes have no effect
// because a fragment emits no tag of its own.
func Fragment(args ...any) *Node {
	node := El("", args...)
	node.Kind = KindFragment
	node.Tag = ""
	return node
}
