package parse

import "github.com/tagforge/tagforge/pkg/markup"

// Child is a closed union over the two things an element can contain:
// a Text run or a nested *Element.
type Child interface {
	child()
}

// Text is a run of character data between tags, with entities decoded.
type Text string

func (Text) child() {}

// Element is a parsed markup element. Attribute names are wire names
// (already transformed); the original shorthand key is not recoverable.
// An Element tree is independently owned by the caller and supports
// structural mutation followed by re-rendering via ToNode.
type Element struct {
	Tag      string
	Attrs    Attrs
	Children []Child
}

func (*Element) child() {}

// Attr returns the value of the named attribute. Bare attributes
// (e.g. required) report an empty value and ok=true.
func (e *Element) Attr(name string) (string, bool) {
	return e.Attrs.Get(name)
}

// SetAttr sets an attribute, preserving document position for existing
// names and appending new names at the end.
func (e *Element) SetAttr(name, value string) {
	e.Attrs.Set(name, value)
}

// RemoveAttr removes an attribute. Returns true if it was present.
func (e *Element) RemoveAttr(name string) bool {
	return e.Attrs.Del(name)
}

// AppendChild appends a nested element.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// AppendText appends a text child.
func (e *Element) AppendText(text string) {
	e.Children = append(e.Children, Text(text))
}

// Elements returns the element children, skipping text runs.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Find returns the first descendant element with the given tag, searching
// depth-first, or nil.
func (e *Element) Find(tag string) *Element {
	for _, child := range e.Children {
		el, ok := child.(*Element)
		if !ok {
			continue
		}
		if el.Tag == tag {
			return el
		}
		if found := el.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// ToNode converts the element back into a renderable markup tree.
// Attribute names are wire-final, so re-transformation is an identity and
// a parse -> render round trip is stable.
func (e *Element) ToNode() *markup.Node {
	node := &markup.Node{
		Kind: markup.KindElement,
		Tag:  e.Tag,
	}
	for _, name := range e.Attrs.names {
		v := e.Attrs.vals[name]
		if v.bare {
			node.Attrs = append(node.Attrs, markup.Attr{Key: name, Value: true})
		} else {
			node.Attrs = append(node.Attrs, markup.Attr{Key: name, Value: v.value})
		}
	}
	for _, child := range e.Children {
		switch c := child.(type) {
		case Text:
			node.Children = append(node.Children, markup.Text(string(c)))
		case *Element:
			node.Children = append(node.Children, c.ToNode())
		}
	}
	return node
}

// FragmentNode converts parsed fragment children into a renderable tree.
func FragmentNode(children []Child) *markup.Node {
	node := &markup.Node{Kind: markup.KindFragment}
	for _, child := range children {
		switch c := child.(type) {
		case Text:
			node.Children = append(node.Children, markup.Text(string(c)))
		case *Element:
			node.Children = append(node.Children, c.ToNode())
		}
	}
	return node
}

// attrValue is one attribute slot. Bare attributes (no "=value") re-render
// as the bare name.
type attrValue struct {
	value string
	bare  bool
}

// Attrs is an ordered attribute map keyed by wire name. Document order is
// preserved so re-rendering is byte-stable.
type Attrs struct {
	names []string
	vals  map[string]attrValue
}

// Get returns the value of the named attribute.
func (a *Attrs) Get(name string) (string, bool) {
	v, ok := a.vals[name]
	return v.value, ok
}

// Has reports whether the attribute is present.
func (a *Attrs) Has(name string) bool {
	_, ok := a.vals[name]
	return ok
}

// Set stores an attribute value, keeping the position of existing names.
func (a *Attrs) Set(name, value string) {
	a.set(name, attrValue{value: value})
}

// SetBare stores a value-less attribute (rendered as the bare name).
func (a *Attrs) SetBare(name string) {
	a.set(name, attrValue{bare: true})
}

func (a *Attrs) set(name string, v attrValue) {
	if a.vals == nil {
		a.vals = make(map[string]attrValue, 4)
	}
	if _, exists := a.vals[name]; !exists {
		a.names = append(a.names, name)
	}
	a.vals[name] = v
}

// Del removes an attribute. Returns true if it was present.
func (a *Attrs) Del(name string) bool {
	if _, ok := a.vals[name]; !ok {
		return false
	}
	delete(a.vals, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	return len(a.names)
}

// Names returns the attribute names in document order.
func (a *Attrs) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}
