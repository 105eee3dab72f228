package el

import (
	"strings"
	"testing"

	"github.com/tagforge/tagforge/pkg/markup"
	"github.com/tagforge/tagforge/pkg/render"
)

func renderString(t *testing.T, node *Node) string {
	t.Helper()
	out, err := render.Render(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.HTML
}

func TestBasicElements(t *testing.T) {
	got := renderString(t, Div(ID("main"), Class("wrap", "dark"),
		H1(Text("Title")),
		P(Text("Body")),
	))
	want := `<div id="main" class="wrap dark"><h1>Title</h1><p>Body</p></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormElements(t *testing.T) {
	got := renderString(t, Form(Attr("method", "post"),
		Input(Type("text"), Name("q"), Placeholder("Search"), Required(true)),
		Button(Type("submit"), Disabled(false), Text("Go")),
	))
	want := `<form method="post"><input type="text" name="q" placeholder="Search" required><button type="submit">Go</button></form>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCustomTag(t *testing.T) {
	got := renderString(t, CustomTag("my-widget", Data("state", "open")))
	want := `<my-widget data-state="open"></my-widget>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReactiveAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "on click",
			node: Button(On("click", "$count++"), Text("+")),
			want: `<button data-on:click="$count++">+</button>`,
		},
		{
			name: "on with modifiers",
			node: Input(On("input__debounce_500ms", "search()")),
			want: `<input data-on:input__debounce.500ms="search()">`,
		},
		{
			name: "on keys combo",
			node: Div(OnKeys("ctrl_k", "openSearch()")),
			want: `<div data-on-keys:ctrl-k="openSearch()"></div>`,
		},
		{
			name: "on keys bare",
			node: Div(OnKeys("", "logKey($event)")),
			want: `<div data-on-keys="logKey($event)"></div>`,
		},
		{
			name: "bind",
			node: Input(Bind("username")),
			want: `<input data-bind:username="">`,
		},
		{
			name: "signal and computed",
			node: Div(Signal("count", "0"), Computed("double", "$count * 2")),
			want: `<div data-signals:count="0" data-computed:double="$count * 2"></div>`,
		},
		{
			name: "show and text",
			node: Span(Show("$open"), TextExpr("$label")),
			want: `<span data-show="$open" data-text="$label"></span>`,
		},
		{
			name: "attr and class binds",
			node: A(AttrBind("title", "$tip"), ClassBind("active", "$on")),
			want: `<a data-attr:title="$tip" data-class:active="$on"></a>`,
		},
		{
			name: "signals and indicator",
			node: Div(Signals(`{"count": 0}`), Indicator("loading")),
			want: `<div data-signals="{&quot;count&quot;: 0}" data-indicator="loading"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	items := []string{"a", "b"}
	got := renderString(t, Ul(
		Map(items, func(s string) *Node { return Li(Text(s)) }),
		If(false, Li(Text("hidden"))),
	))
	want := `<ul><li>a</li><li>b</li></ul>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPage(t *testing.T) {
	page := Page(PageConfig{
		Title:   "Demo",
		Runtime: true,
	}, Main(H1(Text("Hello"))))

	got := renderString(t, page)

	if !strings.HasPrefix(got, "<!doctype html><html lang=\"en\">") {
		t.Errorf("missing doctype or lang, got %q", got)
	}
	for _, want := range []string{
		`<meta charset="utf-8">`,
		`<title>Demo</title>`,
		`<script src="` + DefaultRuntimeSrc + `" type="module"></script>`,
		`<main><h1>Hello</h1></main>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q in %q", want, got)
		}
	}
}

func TestPageCustomization(t *testing.T) {
	page := Page(PageConfig{
		Title:     "X",
		Lang:      "de",
		Head:      []*Node{LinkEl(Href("/app.css"), Attr("rel", "stylesheet"))},
		Footer:    []*Node{Footer(Text("bye"))},
		BodyAttrs: []markup.Attr{Attr("cls", "dark")},
	}, P(Text("hi")))

	got := renderString(t, page)
	for _, want := range []string{
		`<html lang="de">`,
		`<link href="/app.css" rel="stylesheet">`,
		`<body class="dark">`,
		`<footer>bye</footer>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "datastar") {
		t.Errorf("runtime should be absent, got %q", got)
	}
}
