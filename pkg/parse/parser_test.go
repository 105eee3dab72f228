package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/tagforge/tagforge/pkg/render"
)

func TestParseSimple(t *testing.T) {
	el, err := Parse(`<div id="test">content</div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Tag != "div" {
		t.Errorf("Tag = %q, want %q", el.Tag, "div")
	}
	if v, ok := el.Attr("id"); !ok || v != "test" {
		t.Errorf("id attr = %q, %v; want %q, true", v, ok, "test")
	}
	if len(el.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(el.Children))
	}
	if text, ok := el.Children[0].(Text); !ok || text != "content" {
		t.Errorf("child = %#v, want Text %q", el.Children[0], "content")
	}
}

func TestParseNested(t *testing.T) {
	el, err := Parse(`<div><div><span>inner</span></div></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	span := el.Find("span")
	if span == nil {
		t.Fatal("span not found")
	}
	if len(span.Children) != 1 {
		t.Fatalf("span has %d children, want 1", len(span.Children))
	}
	if text, ok := span.Children[0].(Text); !ok || text != "inner" {
		t.Errorf("span child = %#v, want Text %q", span.Children[0], "inner")
	}

	// Depth check: div > div > span.
	inner := el.Elements()
	if len(inner) != 1 || inner[0].Tag != "div" {
		t.Fatalf("unexpected first level: %+v", inner)
	}
	if els := inner[0].Elements(); len(els) != 1 || els[0].Tag != "span" {
		t.Fatalf("unexpected second level: %+v", els)
	}
}

func TestParseAttributes(t *testing.T) {
	el, err := Parse(`<input type="text" value='single' checked data-count=3>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := el.Attr("type"); v != "text" {
		t.Errorf("type = %q", v)
	}
	if v, _ := el.Attr("value"); v != "single" {
		t.Errorf("value = %q", v)
	}
	if !el.Attrs.Has("checked") {
		t.Error("bare attribute lost")
	}
	if v, _ := el.Attr("data-count"); v != "3" {
		t.Errorf("unquoted value = %q", v)
	}
	want := []string{"type", "value", "checked", "data-count"}
	got := el.Attrs.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attr order: got %v, want %v", got, want)
			break
		}
	}
}

func TestParseQuoteInsideQuotes(t *testing.T) {
	el, err := Parse(`<div title="it's fine"></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := el.Attr("title"); v != "it's fine" {
		t.Errorf("title = %q", v)
	}
}

func TestParseWireAttributeNames(t *testing.T) {
	el, err := Parse(`<button data-on:click__debounce.500ms="save()">Go</button>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := el.Attr("data-on:click__debounce.500ms"); !ok || v != "save()" {
		t.Errorf("wire attr = %q, %v", v, ok)
	}
}

func TestParseVoidAndSelfClosing(t *testing.T) {
	el, err := Parse(`<div><br><img src="/x.png"><custom-el/></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	els := el.Elements()
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3", len(els))
	}
	if els[0].Tag != "br" || els[1].Tag != "img" || els[2].Tag != "custom-el" {
		t.Errorf("unexpected tags: %s %s %s", els[0].Tag, els[1].Tag, els[2].Tag)
	}
}

func TestParseDoctypeAndWhitespace(t *testing.T) {
	el, err := Parse("\n<!doctype html>\n<html><body>hi</body></html>\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Tag != "html" {
		t.Errorf("Tag = %q, want html", el.Tag)
	}
}

func TestParseComments(t *testing.T) {
	el, err := Parse(`<div><!-- note -->text</div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(el.Children) != 1 {
		t.Fatalf("comment should be skipped, got %d children", len(el.Children))
	}
	if text, _ := el.Children[0].(Text); text != "text" {
		t.Errorf("child = %#v", el.Children[0])
	}
}

func TestParseEntities(t *testing.T) {
	el, err := Parse(`<p>a &amp; b &lt;c&gt; &#39;q&#39; &#x41;</p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := el.Children[0].(Text); text != "a & b <c> 'q' A" {
		t.Errorf("got %q", string(text))
	}
}

func TestParseUppercaseTagsNormalized(t *testing.T) {
	el, err := Parse(`<DIV><SPAN>x</SPAN></DIV>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Tag != "div" {
		t.Errorf("Tag = %q, want div", el.Tag)
	}
	if el.Find("span") == nil {
		t.Error("span not found after normalization")
	}
}

func TestParseMismatchedClosingTag(t *testing.T) {
	input := `<div><span>text</div>`
	_, err := Parse(input)
	if err == nil {
		t.Fatal("mismatched closing tag must fail")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error should match ErrMalformed, got %v", err)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error should be *Error, got %T", err)
	}
	if want := strings.Index(input, "</div>"); perr.Offset != want {
		t.Errorf("Offset = %d, want %d", perr.Offset, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bare text", "just text"},
		{"unterminated tag", "<div"},
		{"missing tag name", "<>"},
		{"missing closing tag", "<div>text"},
		{"unterminated attribute", `<div id="x`},
		{"unterminated comment", "<div><!-- x</div>"},
		{"trailing content", "<div></div><div></div>"},
		{"unterminated closing", "<div>text</div"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error should match ErrMalformed, got %v", err)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error should be *Error, got %T", err)
			}
			if perr.Offset < 0 || perr.Offset > len(tt.input) {
				t.Errorf("Offset = %d out of range", perr.Offset)
			}
		})
	}
}

func TestParseFragment(t *testing.T) {
	children, err := ParseFragment(`<li>one</li>between<li>two</li>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	if el, ok := children[0].(*Element); !ok || el.Tag != "li" {
		t.Errorf("first child = %#v", children[0])
	}
	if text, ok := children[1].(Text); !ok || text != "between" {
		t.Errorf("second child = %#v", children[1])
	}
}

func TestMutateAndRerender(t *testing.T) {
	el, err := Parse(`<div id="card"><span>old</span></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	el.SetAttr("id", "updated")
	el.SetAttr("data-state", "open")
	el.RemoveAttr("missing")
	el.AppendChild(&Element{Tag: "footer"})
	el.AppendText("tail")

	out, err := render.Render(el.ToNode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div id="updated" data-state="open"><span>old</span><footer></footer>tail</div>`
	if out.HTML != want {
		t.Errorf("got %q, want %q", out.HTML, want)
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	inputs := []string{
		`<div id="test">content</div>`,
		`<!doctype html><html><head><title>T</title></head><body><p>x &amp; y</p></body></html>`,
		`<form method="post"><input type="text" name="q" required><br></form>`,
		`<button data-on:click__throttle.1s="go()" data-bind:value="name">Go</button>`,
	}

	for _, input := range inputs {
		el, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		first, err := render.Render(el.ToNode())
		if err != nil {
			t.Fatalf("render: %v", err)
		}

		again, err := Parse(first.HTML)
		if err != nil {
			t.Fatalf("re-parse of %q: %v", first.HTML, err)
		}
		second, err := render.Render(again.ToNode())
		if err != nil {
			t.Fatalf("re-render: %v", err)
		}

		if first.HTML != second.HTML {
			t.Errorf("round trip not stable:\n first: %q\nsecond: %q", first.HTML, second.HTML)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	input := `<div class="card"><h2>Title</h2><p>Some body text with an &amp; entity.</p><input type="text" name="q" required></div>`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
