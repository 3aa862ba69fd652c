package htmldom

import (
	"slices"
	"strings"

	"github.com/boxesandglue/elemental"
	"golang.org/x/net/html"
)

// Element is an element node.
type Element struct {
	Node
	listeners map[string][]elemental.Listener
}

var _ elemental.Element = (*Element)(nil)

// TagName returns the upper-cased tag name, as the DOM does for HTML
// elements.
func (e *Element) TagName() string {
	return strings.ToUpper(e.n.Data)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) {
	e.setAttr("id", id)
}

// ClassList returns the token list of the class attribute.
func (e *Element) ClassList() elemental.ClassList {
	return classList{e}
}

// Style returns the inline style object.
func (e *Element) Style() elemental.Style {
	return style{e}
}

// GetAttribute returns the value of the attribute name and whether it is
// present.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute name is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute sets the attribute name. Names are lower-cased and must be
// valid XML names.
func (e *Element) SetAttribute(name, value string) error {
	if err := validateName(name); err != nil {
		return err
	}
	e.setAttr(strings.ToLower(name), value)
	return nil
}

func (e *Element) setAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute removes the attribute name if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	attr := e.n.Attr
	for i, a := range attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr = append(attr[:i], attr[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the attribute list in document order.
func (e *Element) Attributes() []html.Attribute {
	return append([]html.Attribute(nil), e.n.Attr...)
}

// Dataset returns the data-* attributes keyed by their suffix.
func (e *Element) Dataset() map[string]string {
	ret := make(map[string]string)
	for _, a := range e.n.Attr {
		if suffix, ok := strings.CutPrefix(a.Key, "data-"); ok && a.Namespace == "" {
			ret[suffix] = a.Val
		}
	}
	return ret
}

// classList implements elemental.ClassList on the class attribute.
type classList struct {
	el *Element
}

func (cl classList) Values() []string {
	v, _ := cl.el.GetAttribute("class")
	return strings.Fields(v)
}

func (cl classList) Contains(token string) bool {
	return slices.Contains(cl.Values(), token)
}

// Add appends the tokens that are not yet present.
func (cl classList) Add(tokens ...string) error {
	for _, t := range tokens {
		if err := validateToken(t); err != nil {
			return err
		}
	}
	values := cl.Values()
	for _, t := range tokens {
		if !slices.Contains(values, t) {
			values = append(values, t)
		}
	}
	cl.el.setAttr("class", strings.Join(values, " "))
	return nil
}
