// Package attrkey compiles shorthand attribute keys into wire-format
// attribute names.
//
// Shorthand keys encode a reactive attribute plus optional behavioral
// modifiers in a single identifier:
//
//	on_click                      -> data-on:click
//	on_keys_ctrl_k                -> data-on-keys:ctrl-k
//	on_input__debounce_500ms      -> data-on:input  +  __debounce.500ms
//	ds_bind_username              -> data-bind:username
//	data_style_background_color   -> data-style:background-color
//	cls                           -> class
//	data_test                     -> data-test
//
// Transformation is a pure function of the key string, so results are
// memoized in a two-tier cache: a per-worker map front (Cache) backed by a
// process-wide concurrent map. See Transform and Cache.Transform.
//
// Keys containing characters that can never form a legal attribute name
// (control characters, whitespace, '=', quotes, '>', '<', '/') fail with an
// error matching ErrInvalidKey.
package attrkey
