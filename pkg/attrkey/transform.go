package attrkey

import "strings"

// Transformed is the wire form of a shorthand attribute key.
type Transformed struct {
	// Name is the final markup attribute name, e.g. "data-on:click".
	Name string

	// Modifiers is the behavioral suffix appended after the name,
	// e.g. "__debounce.500ms". Empty for most attributes.
	Modifiers string
}

// Wire returns the complete attribute name as written to output.
func (t Transformed) Wire() string {
	if t.Modifiers == "" {
		return t.Name
	}
	return t.Name + t.Modifiers
}

// literalRemaps are exact-name substitutions checked before any generic rule.
var literalRemaps = map[string]string{
	"cls":       "class",
	"_class":    "class",
	"htmlClass": "class",
	"klass":     "class",
	"class_":    "class",
	"_for":      "for",
	"fr":        "for",
	"htmlFor":   "for",
	"for_":      "for",
	"type_":     "type",
	// Identity fast path for the most common plain attributes.
	"id":     "id",
	"type":   "type",
	"name":   "name",
	"value":  "value",
	"href":   "href",
	"src":    "src",
	"alt":    "alt",
	"title":  "title",
	"method": "method",
	"action": "action",
	"target": "target",
	"rel":    "rel",
	"class":  "class",
	"for":    "for",
}

// keyedPlugins map a reactive plugin name to its wire prefix. A key of the
// form ds_<plugin>_<key> or data_<plugin>_<key> becomes "data-<plugin>:<key>"
// with underscores in <key> hyphenated.
var keyedPlugins = map[string]bool{
	"attr":     true,
	"bind":     true,
	"class":    true,
	"computed": true,
	"signals":  true,
	"style":    true,
}

// barePlugins are keyed plugins also reachable without the ds_/data_ prefix
// (attr_title -> data-attr:title). Kept to the two names that cannot collide
// with ordinary HTML attributes.
var barePlugins = map[string]bool{
	"attr": true,
	"bind": true,
}

// plainPlugins map a non-keyed plugin shorthand directly to its wire name.
var plainPlugins = map[string]string{
	"text":      "data-text",
	"show":      "data-show",
	"effect":    "data-effect",
	"signals":   "data-signals",
	"indicator": "data-indicator",
	"ref":       "data-ref",
}

// compute derives the wire form of a shorthand key. Pure function of the
// input; Transform and Cache.Transform memoize it.
func compute(key string) (Transformed, error) {
	if key == "" {
		return Transformed{}, invalidKey(key, "empty key")
	}
	if err := validate(key); err != nil {
		return Transformed{}, err
	}
	if key == "_" {
		return Transformed{Name: "_"}, nil
	}

	base, mods := splitModifiers(key)

	name, err := transformBase(base)
	if err != nil {
		return Transformed{}, err
	}
	return Transformed{Name: name, Modifiers: transformModifiers(mods)}, nil
}

// splitModifiers separates the base key from its "__" modifier tail.
// The delimiter is searched from index 1 so that a leading underscore
// (as in _class) is never mistaken for a modifier boundary.
func splitModifiers(key string) (base, mods string) {
	if len(key) < 2 {
		return key, ""
	}
	i := strings.Index(key[1:], "__")
	if i < 0 {
		return key, ""
	}
	i++
	return key[:i], key[i:]
}

// transformModifiers rewrites each "__" separated segment. A segment with an
// internal underscore splits into modifier and value joined by a dot
// (debounce_500ms -> debounce.500ms); a bare segment passes through.
func transformModifiers(mods string) string {
	if mods == "" {
		return ""
	}
	segments := strings.Split(mods[2:], "__")
	var b strings.Builder
	b.Grow(len(mods))
	for _, seg := range segments {
		b.WriteString("__")
		if i := strings.IndexByte(seg, '_'); i >= 0 {
			b.WriteString(seg[:i])
			b.WriteByte('.')
			// Any further underscores hyphenate into the value token.
			b.WriteString(hyphenate(seg[i+1:]))
		} else {
			b.WriteString(seg)
		}
	}
	return b.String()
}

// transformBase converts the base portion of a key to its wire name.
// Rule order: literal remap, namespaced reactive prefixes, special-character
// passthrough, generic hyphenation.
func transformBase(base string) (string, error) {
	if mapped, ok := literalRemaps[base]; ok {
		return mapped, nil
	}

	// data-on-keys is a colon-free family and must be matched before on_*.
	if base == "on_keys" {
		return "data-on-keys", nil
	}
	if rest, ok := strings.CutPrefix(base, "on_keys_"); ok {
		return "data-on-keys:" + hyphenate(rest), nil
	}
	if rest, ok := strings.CutPrefix(base, "on_"); ok {
		return "data-on:" + hyphenate(rest), nil
	}

	if name, ok := pluginName(base); ok {
		return name, nil
	}

	// A key already carrying wire punctuation is final; emit it verbatim.
	if strings.ContainsAny(base, "@.-:[](){}$%^&*+|?,~!") {
		return base, nil
	}

	if strings.HasPrefix(base, "_") {
		base = base[1:]
	}
	return hyphenate(base), nil
}

// pluginName resolves the reactive plugin families.
func pluginName(base string) (string, bool) {
	rest, prefixed := strings.CutPrefix(base, "ds_")
	if !prefixed {
		rest, prefixed = strings.CutPrefix(base, "data_")
	}

	if prefixed {
		if name, ok := plainPlugins[rest]; ok {
			return name, true
		}
		if plugin, key, ok := strings.Cut(rest, "_"); ok && keyedPlugins[plugin] {
			return "data-" + plugin + ":" + hyphenate(key), true
		}
		return "", false
	}

	if name, ok := plainPlugins[base]; ok {
		return name, true
	}
	if plugin, key, ok := strings.Cut(base, "_"); ok && barePlugins[plugin] {
		return "data-" + plugin + ":" + hyphenate(key), true
	}
	return "", false
}

func hyphenate(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// validate rejects characters that can never appear in an attribute name.
func validate(key string) error {
	for i := 0; i < len(key); i++ {
		switch c := key[i]; {
		case c < 0x20 || c == 0x7f:
			return invalidKey(key, "control character")
		case c == ' ' || c == '\t':
			return invalidKey(key, "whitespace")
		case c == '=' || c == '"' || c == '\'' || c == '>' || c == '<' || c == '/' || c == '`':
			return invalidKey(key, "reserved character "+string(c))
		}
	}
	return nil
}
