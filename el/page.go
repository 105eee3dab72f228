package el

import "github.com/tagforge/tagforge/pkg/markup"

// DefaultRuntimeSrc is the CDN location of the reactive runtime included by
// Page when PageConfig.Runtime is true.
const DefaultRuntimeSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"

// PageConfig configures the Page layout helper.
type PageConfig struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Head holds extra nodes appended to <head> after the title.
	Head []*Node

	// Footer holds nodes appended to <body> after the content.
	Footer []*Node

	// HtmlAttrs and BodyAttrs are extra attributes for the html and body tags.
	HtmlAttrs []markup.Attr
	BodyAttrs []markup.Attr

	// Runtime includes the reactive runtime script tag in <head>.
	Runtime bool

	// RuntimeSrc overrides the runtime script source.
	RuntimeSrc string
}

// Page wraps content in a complete HTML document: doctype (emitted by the
// renderer for the html root), head with title and optional runtime script,
// and body with the given content.
func Page(config PageConfig, content ...any) *Node {
	if config.Lang == "" {
		config.Lang = "en"
	}

	headArgs := []any{
		Meta(Attr("charset", "utf-8")),
		Meta(Name("viewport"), Attr("content", "width=device-width, initial-scale=1")),
		Title(config.Title),
	}
	for _, n := range config.Head {
		headArgs = append(headArgs, n)
	}
	if config.Runtime {
		src := config.RuntimeSrc
		if src == "" {
			src = DefaultRuntimeSrc
		}
		headArgs = append(headArgs, Script(Src(src), Type("module")))
	}

	bodyArgs := make([]any, 0, len(content)+len(config.Footer)+1)
	bodyArgs = append(bodyArgs, config.BodyAttrs)
	bodyArgs = append(bodyArgs, content...)
	for _, n := range config.Footer {
		bodyArgs = append(bodyArgs, n)
	}

	htmlArgs := []any{Attr("lang", config.Lang)}
	htmlArgs = append(htmlArgs, config.HtmlAttrs)
	htmlArgs = append(htmlArgs, Head(headArgs...), Body(bodyArgs...))

	return Html(htmlArgs...)
}
