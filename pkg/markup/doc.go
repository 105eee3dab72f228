// Package markup provides the in-memory tree model for tagforge.
//
// A Node represents one markup element: a tag name, an ordered attribute
// list and an ordered child list. The node kind is a closed enum over
// exactly four variants:
//
//   - KindElement: a tag with attributes and children
//   - KindText: plain text, HTML-escaped on render
//   - KindRaw: pre-escaped markup copied verbatim
//   - KindFragment: children rendered with no wrapper tag
//
// Nodes are built with the variadic El factory:
//
//	markup.El("div", markup.Attr{Key: "cls", Value: "card"},
//	    markup.El("h1", "Title"),
//	    markup.El("p", "Content"),
//	)
//
// Attribute keys are stored in caller shorthand; the renderer converts them
// to wire names (see package attrkey). Attribute order and duplicates are
// preserved exactly as given.
//
// A tree is consumed read-only by the renderer. Nodes own their children;
// sharing a *Node between two parents or building a cycle is not supported.
package markup
