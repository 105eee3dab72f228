// Package parse reconstructs markup trees from rendered text.
//
// Parse is the structural inverse of package render: it consumes well-formed
// output (or compatible hand-written HTML) and produces an Element tree with
// attributes keyed by wire name. Attribute transformation is one-way, so the
// original shorthand keys are not recoverable.
//
//	el, err := parse.Parse(`<div id="test">content</div>`)
//	// el.Tag == "div", el.Attr("id") == "test"
//
// Parsed trees are owned by the caller and mutable: set or remove
// attributes, append children, then convert back with ToNode and re-render.
// Because wire names are final, a parse -> render round trip is idempotent
// after the first pass.
//
// Malformed input (unterminated tags, mismatched closing tags) fails with an
// error matching ErrMalformed that carries the byte offset of the problem.
package parse
