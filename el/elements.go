// This file defines the function-per-tag element constructors.
package el

import "github.com/tagforge/tagforge/pkg/markup"

// CustomTag returns a constructor for a tag the DSL has no function for.
//
//	MyWidget := el.CustomTag("my-widget")
//	MyWidget(el.Class("on"), "hi")
func CustomTag(tag string) func(args ...any) *Node {
	tag = markup.NormalizeTag(tag)
	return func(args ...any) *Node {
		return markup.El(tag, args...)
	}
}

// Document structure

func Html(args ...any) *Node     { return markup.El("html", args...) }
func Head(args ...any) *Node     { return markup.El("head", args...) }
func Body(args ...any) *Node     { return markup.El("body", args...) }
func Title(args ...any) *Node    { return markup.El("title", args...) }
func Meta(args ...any) *Node     { return markup.El("meta", args...) }
func LinkEl(args ...any) *Node   { return markup.El("link", args...) }
func Base(args ...any) *Node     { return markup.El("base", args...) }
func Script(args ...any) *Node   { return markup.El("script", args...) }
func StyleEl(args ...any) *Node  { return markup.El("style", args...) }
func Noscript(args ...any) *Node { return markup.El("noscript", args...) }

// Sectioning

func Header(args ...any) *Node  { return markup.El("header", args...) }
func Footer(args ...any) *Node  { return markup.El("footer", args...) }
func Main(args ...any) *Node    { return markup.El("main", args...) }
func Nav(args ...any) *Node     { return markup.El("nav", args...) }
func Section(args ...any) *Node { return markup.El("section", args...) }
func Article(args ...any) *Node { return markup.El("article", args...) }
func Aside(args ...any) *Node   { return markup.El("aside", args...) }
func Address(args ...any) *Node { return markup.El("address", args...) }
func H1(args ...any) *Node      { return markup.El("h1", args...) }
func H2(args ...any) *Node      { return markup.El("h2", args...) }
func H3(args ...any) *Node      { return markup.El("h3", args...) }
func H4(args ...any) *Node      { return markup.El("h4", args...) }
func H5(args ...any) *Node      { return markup.El("h5", args...) }
func H6(args ...any) *Node      { return markup.El("h6", args...) }
func Hgroup(args ...any) *Node  { return markup.El("hgroup", args...) }

// Grouping content

func Div(args ...any) *Node        { return markup.El("div", args...) }
func P(args ...any) *Node          { return markup.El("p", args...) }
func Span(args ...any) *Node       { return markup.El("span", args...) }
func Pre(args ...any) *Node        { return markup.El("pre", args...) }
func Blockquote(args ...any) *Node { return markup.El("blockquote", args...) }
func Ul(args ...any) *Node         { return markup.El("ul", args...) }
func Ol(args ...any) *Node         { return markup.El("ol", args...) }
func Li(args ...any) *Node         { return markup.El("li", args...) }
func Dl(args ...any) *Node         { return markup.El("dl", args...) }
func Dt(args ...any) *Node         { return markup.El("dt", args...) }
func Dd(args ...any) *Node         { return markup.El("dd", args...) }
func Hr(args ...any) *Node         { return markup.El("hr", args...) }
func Figure(args ...any) *Node     { return markup.El("figure", args...) }
func Figcaption(args ...any) *Node { return markup.El("figcaption", args...) }
func Details(args ...any) *Node    { return markup.El("details", args...) }
func Summary(args ...any) *Node    { return markup.El("summary", args...) }
func Dialog(args ...any) *Node     { return markup.El("dialog", args...) }

// Text-level semantics

func A(args ...any) *Node      { return markup.El("a", args...) }
func Strong(args ...any) *Node { return markup.El("strong", args...) }
func Em(args ...any) *Node     { return markup.El("em", args...) }
func B(args ...any) *Node      { return markup.El("b", args...) }
func I(args ...any) *Node      { return markup.El("i", args...) }
func U(args ...any) *Node      { return markup.El("u", args...) }
func S(args ...any) *Node      { return markup.El("s", args...) }
func Small(args ...any) *Node  { return markup.El("small", args...) }
func Mark(args ...any) *Node   { return markup.El("mark", args...) }
func Sub(args ...any) *Node    { return markup.El("sub", args...) }
func Sup(args ...any) *Node    { return markup.El("sup", args...) }
func Code(args ...any) *Node   { return markup.El("code", args...) }
func Kbd(args ...any) *Node    { return markup.El("kbd", args...) }
func Samp(args ...any) *Node   { return markup.El("samp", args...) }
func Var(args ...any) *Node    { return markup.El("var", args...) }
func Cite(args ...any) *Node   { return markup.El("cite", args...) }
func Abbr(args ...any) *Node   { return markup.El("abbr", args...) }
func Time(args ...any) *Node   { return markup.El("time", args...) }
func Br(args ...any) *Node     { return markup.El("br", args...) }
func Wbr(args ...any) *Node    { return markup.El("wbr", args...) }

// Embedded content

func Img(args ...any) *Node    { return markup.El("img", args...) }
func Picture(args ...any) *Node { return markup.El("picture", args...) }
func Source(args ...any) *Node { return markup.El("source", args...) }
func Video(args ...any) *Node  { return markup.El("video", args...) }
func Audio(args ...any) *Node  { return markup.El("audio", args...) }
func Track(args ...any) *Node  { return markup.El("track", args...) }
func Embed(args ...any) *Node  { return markup.El("embed", args...) }
func Iframe(args ...any) *Node { return markup.El("iframe", args...) }
func Canvas(args ...any) *Node { return markup.El("canvas", args...) }
func Svg(args ...any) *Node    { return markup.El("svg", args...) }

// Tables

func Table(args ...any) *Node    { return markup.El("table", args...) }
func Caption(args ...any) *Node  { return markup.El("caption", args...) }
func Thead(args ...any) *Node    { return markup.El("thead", args...) }
func Tbody(args ...any) *Node    { return markup.El("tbody", args...) }
func Tfoot(args ...any) *Node    { return markup.El("tfoot", args...) }
func Tr(args ...any) *Node       { return markup.El("tr", args...) }
func Th(args ...any) *Node       { return markup.El("th", args...) }
func Td(args ...any) *Node       { return markup.El("td", args...) }
func Col(args ...any) *Node      { return markup.El("col", args...) }
func Colgroup(args ...any) *Node { return markup.El("colgroup", args...) }

// Forms

func Form(args ...any) *Node     { return markup.El("form", args...) }
func Input(args ...any) *Node    { return markup.El("input", args...) }
func Button(args ...any) *Node   { return markup.El("button", args...) }
func Select(args ...any) *Node   { return markup.El("select", args...) }
func Option(args ...any) *Node   { return markup.El("option", args...) }
func Optgroup(args ...any) *Node { return markup.El("optgroup", args...) }
func Textarea(args ...any) *Node { return markup.El("textarea", args...) }
func Label(args ...any) *Node    { return markup.El("label", args...) }
func Fieldset(args ...any) *Node { return markup.El("fieldset", args...) }
func Legend(args ...any) *Node   { return markup.El("legend", args...) }
func Datalist(args ...any) *Node { return markup.El("datalist", args...) }
func Output(args ...any) *Node   { return markup.El("output", args...) }
func Progress(args ...any) *Node { return markup.El("progress", args...) }
func Meter(args ...any) *Node    { return markup.El("meter", args...) }
