// Package el is the declarative element DSL for tagforge.
//
// It provides one constructor per HTML tag, attribute helpers for both
// plain and reactive attributes, and a Page layout helper:
//
//	node := el.Div(el.Class("card"),
//	    el.H1("Title"),
//	    el.Button(el.On("click", "$count++"), "Increment"),
//	)
//	out, err := render.Render(node)
//
// Constructors accept attributes, child nodes, strings, numbers and
// booleans in any order; strings and numbers become text children. Values
// of any other type cause the eventual render call to fail with an
// UnsupportedChildError rather than being dropped.
package el
