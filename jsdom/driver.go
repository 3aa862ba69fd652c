//go:build js

// Package jsdom implements the elemental host API for the browser through
// GopherJS.
package jsdom

import (
	"fmt"
	"strings"

	"github.com/boxesandglue/elemental"
	"github.com/gopherjs/gopherjs/js"
)

func init() {
	elemental.RegisterDocument(document{js.Global.Get("document")})
}

type document struct {
	o *js.Object
}

// call converts JavaScript exceptions thrown by fn into errors.
func call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(*js.Error); ok {
				err = fmt.Errorf("jsdom: %w", jsErr)
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func (d document) CreateElement(tag string, opts elemental.ElementCreationOptions) (elemental.Element, error) {
	var o *js.Object
	err := call(func() {
		if opts.Is != "" {
			o = d.o.Call("createElement", tag, map[string]any{"is": opts.Is})
		} else {
			o = d.o.Call("createElement", tag)
		}
	})
	if err != nil {
		return nil, err
	}
	return element{node{o}}, nil
}

func (d document) CreateTextNode(data string) elemental.Node {
	return node{d.o.Call("createTextNode", data)}
}

func (d document) CreateDocumentFragment() elemental.Node {
	return node{d.o.Call("createDocumentFragment")}
}

func (d document) ParseHTML(markup string) (elemental.Node, error) {
	var content *js.Object
	err := call(func() {
		parent := d.o.Call("createElement", "template")
		parent.Set("innerHTML", markup)
		content = parent.Get("content")
	})
	if err != nil {
		return nil, err
	}
	return node{content}, nil
}

type node struct {
	o *js.Object
}

// DOMNode returns the underlying JavaScript object.
func (n node) DOMNode() *js.Object {
	return n.o
}

func wrap(o *js.Object) elemental.Node {
	if o == nil || o == js.Undefined {
		return nil
	}
	if o.Get("nodeType").Int() == int(elemental.ElementNode) {
		return element{node{o}}
	}
	return node{o}
}

func (n node) NodeType() elemental.NodeType {
	return elemental.NodeType(n.o.Get("nodeType").Int())
}

func (n node) FirstChild() elemental.Node {
	return wrap(n.o.Get("firstChild"))
}

func (n node) ChildNodes() []elemental.Node {
	var ret []elemental.Node
	for c := n.o.Get("firstChild"); c != nil && c != js.Undefined; c = c.Get("nextSibling") {
		ret = append(ret, wrap(c))
	}
	return ret
}

func (n node) HasChildNodes() bool {
	return n.o.Call("hasChildNodes").Bool()
}

func (n node) AppendChild(child elemental.Node) error {
	c, ok := child.(interface{ DOMNode() *js.Object })
	if !ok {
		return fmt.Errorf("jsdom: cannot append %T", child)
	}
	return call(func() {
		n.o.Call("appendChild", c.DOMNode())
	})
}

func (n node) TextContent() string {
	return n.o.Get("textContent").String()
}

type element struct {
	node
}

func (e element) TagName() string {
	return e.o.Get("tagName").String()
}

func (e element) ID() string {
	return e.o.Get("id").String()
}

func (e element) SetID(id string) {
	e.o.Set("id", id)
}

func (e element) ClassList() elemental.ClassList {
	return classList{e.o.Get("classList")}
}

func (e element) Style() elemental.Style {
	return style{e.o.Get("style")}
}

func (e element) GetAttribute(name string) (string, bool) {
	v := e.o.Call("getAttribute", name)
	if v == nil {
		return "", false
	}
	return v.String(), true
}

func (e element) HasAttribute(name string) bool {
	return e.o.Call("hasAttribute", name).Bool()
}

func (e element) SetAttribute(name, value string) error {
	return call(func() {
		e.o.Call("setAttribute", name, value)
	})
}

func (e element) RemoveAttribute(name string) {
	e.o.Call("removeAttribute", name)
}

func (e element) AddEventListener(typ string, l elemental.Listener) {
	e.o.Call("addEventListener", typ, func(ev *js.Object) {
		l(event{ev})
	})
}

type event struct {
	o *js.Object
}

func (ev event) Type() string {
	return ev.o.Get("type").String()
}

// Object returns the native event.
func (ev event) Object() *js.Object {
	return ev.o
}

type classList struct {
	o *js.Object
}

func (cl classList) Add(tokens ...string) error {
	return call(func() {
		for _, t := range tokens {
			cl.o.Call("add", t)
		}
	})
}

func (cl classList) Contains(token string) bool {
	return cl.o.Call("contains", token).Bool()
}

func (cl classList) Values() []string {
	return strings.Fields(cl.o.Get("value").String())
}

type style struct {
	o *js.Object
}

func (s style) SetProperty(name, value string) {
	s.o.Call("setProperty", name, value)
}

func (s style) GetPropertyValue(name string) string {
	return s.o.Call("getPropertyValue", name).String()
}

func (s style) CSSText() string {
	return s.o.Get("cssText").String()
}
