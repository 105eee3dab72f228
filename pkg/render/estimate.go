package render

import "github.com/tagforge/tagforge/pkg/markup"

// Estimation constants. Per-attribute overhead covers ` key="value"` glue;
// per-child overhead covers tag punctuation for element children.
const (
	attrOverhead  = 4
	childOverhead = 16
	sampleLimit   = 8
)

// estimate guesses the output size of a tree so the destination buffer is
// sized once up front. It may underestimate; buffer growth corrects that.
// Wide child lists are sampled rather than walked exhaustively.
func estimate(node *markup.Node) int {
	if node == nil {
		return 0
	}

	switch node.Kind {
	case markup.KindText, markup.KindRaw:
		return len(node.Text)
	case markup.KindFragment:
		return estimateChildren(node.Children)
	}

	size := 2*len(node.Tag) + 5
	for _, attr := range node.Attrs {
		size += len(attr.Key) + attrOverhead
		if s, ok := attr.Value.(string); ok {
			size += len(s)
		} else {
			size += 8
		}
	}
	return size + estimateChildren(node.Children)
}

// estimateChildren samples the first few children and scales the average
// over the full list.
func estimateChildren(children []*markup.Node) int {
	n := len(children)
	if n == 0 {
		return 0
	}

	sampled := n
	if sampled > sampleLimit {
		sampled = sampleLimit
	}

	size := 0
	for _, child := range children[:sampled] {
		size += estimate(child) + childOverhead
	}
	if n > sampled {
		size = size / sampled * n
	}
	return size
}
