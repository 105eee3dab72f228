// This file re-exports the markup node helpers for the el package.
package el

import "github.com/tagforge/tagforge/pkg/markup"

// Text creates a text node. Content is escaped when rendered.
func Text(content string) *Node { return markup.Text(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node { return markup.Textf(format, args...) }

// Raw creates a node rendered verbatim. Use only with trusted content.
func Raw(html string) *Node { return markup.Raw(html) }

// Fragment groups children without a wrapper element.
func Fragment(args ...any) *Node { return markup.Fragment(args...) }

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node { return markup.If(condition, node) }

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	return markup.IfElse(condition, ifTrue, ifFalse)
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() *Node) *Node { return markup.When(condition, fn) }

// Map converts a slice of values into a slice of nodes.
func Map[T any](items []T, fn func(T) *Node) []*Node { return markup.Map(items, fn) }
