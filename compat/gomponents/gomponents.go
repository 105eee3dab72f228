// Package gomponents bridges tagforge trees and the gomponents ecosystem.
//
// Wrap lets a tagforge tree stand in wherever a gomponents.Node is
// expected; Import embeds already-rendered gomponents output as a raw
// child of a tagforge tree.
package gomponents

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/tagforge/tagforge/pkg/markup"
	"github.com/tagforge/tagforge/pkg/render"
)

// wrapped adapts a markup tree to the gomponents Node interface.
type wrapped struct {
	node     *markup.Node
	renderer *render.Renderer
}

// Render implements gomponents.Node.
func (w wrapped) Render(out io.Writer) error {
	return w.renderer.RenderToWriter(out, w.node)
}

// Wrap adapts a tagforge tree to gomponents.Node. Rendering happens lazily
// when the surrounding gomponents tree renders.
func Wrap(node *markup.Node) g.Node {
	return wrapped{node: node, renderer: render.NewRenderer(render.Config{})}
}

// WrapWith is Wrap with an explicit renderer configuration.
func WrapWith(r *render.Renderer, node *markup.Node) g.Node {
	return wrapped{node: node, renderer: r}
}

// Import renders a gomponents node and embeds the result as a raw child.
// gomponents output is already escaped, so it is inserted verbatim.
func Import(node g.Node) (*markup.Node, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return nil, err
	}
	return markup.Raw(b.String()), nil
}
