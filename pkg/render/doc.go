// Package render serializes markup trees to HTML text.
//
// The renderer walks a tree depth-first, transforming each shorthand
// attribute key to its wire name (see package attrkey) and escaping text
// and attribute values. It handles:
//
//   - Void element rendering (input, br, img, etc. — no closing tag)
//   - Boolean attributes (true renders the bare name, false omits it)
//   - The document root tag, which emits a leading doctype
//   - Fragments, whose children render with no wrapper tag
//   - Raw nodes, copied verbatim (caller asserts safety)
//
// # Usage
//
//	out, err := render.Render(node)
//	// out.HTML, out.Length
//
// or with configuration:
//
//	r := render.NewRenderer(render.Config{Pretty: true})
//	err := r.RenderToWriter(w, node)
//
// # Memory
//
// Output size is estimated before writing so the destination buffer is
// sized once. Scratch buffers and per-worker attribute caches come from
// pools and are returned when the call finishes, error paths included.
// A Renderer holds no per-call state and is safe for concurrent use.
//
// # Failure
//
// A render call fails fast with an error matching attrkey.ErrInvalidKey or
// render.ErrUnsupportedChild; no partial markup is returned.
package render
