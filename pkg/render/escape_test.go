package render

import (
	"bytes"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a & b", "a &amp; b"},
		{"<b>", "&lt;b&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
		{"&&&", "&amp;&amp;&amp;"},
	}
	for _, tt := range tests {
		if got := EscapeText(tt.in); got != tt.want {
			t.Errorf("EscapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteEscapedAttr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nbreak", "line&#10;break"},
		{"tab\there", "tab&#9;here"},
		{"cr\rhere", "cr&#13;here"},
		{`q"a`, "q&quot;a"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		writeEscapedAttr(&buf, tt.in)
		if buf.String() != tt.want {
			t.Errorf("writeEscapedAttr(%q) = %q, want %q", tt.in, buf.String(), tt.want)
		}
	}
}
