package el

import "github.com/tagforge/tagforge/pkg/markup"

// Type aliases for the markup primitives used by the DSL.
type Node = markup.Node
type Kind = markup.Kind
