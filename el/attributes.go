package el

import (
	"strings"

	"github.com/tagforge/tagforge/pkg/markup"
)

// Attr creates an attribute from a shorthand key. The key is transformed to
// its wire name at render time, so both plain ("cls") and reactive
// ("on_click__debounce_500ms") shorthands work here.
func Attr(key string, value any) markup.Attr {
	return markup.Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) markup.Attr { return Attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) markup.Attr { return Attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the style element).
func StyleAttr(style string) markup.Attr { return Attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") -> data-id="123"
func Data(key, value string) markup.Attr { return Attr("data-"+key, value) }

// Common form attributes

// Name sets the name attribute.
func Name(name string) markup.Attr { return Attr("name", name) }

// Type sets the type attribute.
func Type(t string) markup.Attr { return Attr("type", t) }

// Value sets the value attribute.
func Value(v string) markup.Attr { return Attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) markup.Attr { return Attr("placeholder", p) }

// Href sets the href attribute.
func Href(href string) markup.Attr { return Attr("href", href) }

// Src sets the src attribute.
func Src(src string) markup.Attr { return Attr("src", src) }

// Required sets the boolean required attribute.
func Required(required bool) markup.Attr { return Attr("required", required) }

// Disabled sets the boolean disabled attribute.
func Disabled(disabled bool) markup.Attr { return Attr("disabled", disabled) }

// Checked sets the boolean checked attribute.
func Checked(checked bool) markup.Attr { return Attr("checked", checked) }

// Reactive attributes. Event and key names use underscore shorthand and may
// carry "__" modifier segments, exactly as in the raw key grammar:
//
//	On("click__debounce_500ms", "search()")  ->  data-on:click__debounce.500ms
//
// See package attrkey for the full grammar.

// On binds an expression to an event: On("click", "$count++") -> data-on:click.
func On(event, expr string) markup.Attr { return Attr("on_"+event, expr) }

// OnKeys binds an expression to a keyboard shortcut:
// OnKeys("ctrl_k", "openSearch()") -> data-on-keys:ctrl-k.
// An empty combo captures all keys (data-on-keys).
func OnKeys(combo, expr string) markup.Attr {
	if combo == "" {
		return Attr("on_keys", expr)
	}
	return Attr("on_keys_"+combo, expr)
}

// Bind two-way binds an input to a signal: Bind("username") -> data-bind:username.
func Bind(signal string) markup.Attr { return Attr("ds_bind_"+signal, "") }

// Show toggles visibility on an expression: Show("$open") -> data-show.
func Show(expr string) markup.Attr { return Attr("ds_show", expr) }

// Effect runs an expression on signal changes: -> data-effect.
func Effect(expr string) markup.Attr { return Attr("ds_effect", expr) }

// TextExpr binds element text to an expression: -> data-text.
func TextExpr(expr string) markup.Attr { return Attr("ds_text", expr) }

// Signals declares signals with initial values: -> data-signals.
// The value is a JSON object literal.
func Signals(json string) markup.Attr { return Attr("ds_signals", json) }

// Signal declares one named signal: Signal("count", "0") -> data-signals:count.
func Signal(name, initial string) markup.Attr { return Attr("ds_signals_"+name, initial) }

// Indicator exposes an in-flight request flag: -> data-indicator.
func Indicator(signal string) markup.Attr { return Attr("ds_indicator", signal) }

// AttrBind binds an attribute to an expression:
// AttrBind("title", "$tooltip") -> data-attr:title.
func AttrBind(name, expr string) markup.Attr { return Attr("ds_attr_"+name, expr) }

// ClassBind toggles a class on an expression:
// ClassBind("hidden", "$isHidden") -> data-class:hidden.
func ClassBind(name, expr string) markup.Attr { return Attr("ds_class_"+name, expr) }

// Computed declares a derived signal:
// Computed("total", "$price * $qty") -> data-computed:total.
func Computed(name, expr string) markup.Attr { return Attr("ds_computed_"+name, expr) }
