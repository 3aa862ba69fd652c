package elemental

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// recorder is a host that logs every call made on it.
type recorder struct {
	calls []string
}

type recNode struct {
	r        *recorder
	typ      NodeType
	name     string
	parent   *recNode
	children []Node
}

type recElement struct {
	recNode
}

type recClassList struct{ r *recorder }
type recStyle struct{ r *recorder }

func (r *recorder) log(format string, args ...string) {
	r.calls = append(r.calls, format+"("+strings.Join(args, ",")+")")
}

func (r *recorder) CreateElement(tag string, opts ElementCreationOptions) (Element, error) {
	if tag == "" {
		return nil, errors.New("empty tag")
	}
	r.log("createElement", tag, opts.Is)
	return &recElement{recNode{r: r, typ: ElementNode, name: tag}}, nil
}

func (r *recorder) CreateTextNode(data string) Node {
	return &recNode{r: r, typ: TextNode, name: data}
}

func (r *recorder) CreateDocumentFragment() Node {
	return &recNode{r: r, typ: DocumentFragmentNode}
}

func (r *recorder) ParseHTML(markup string) (Node, error) {
	frag := &recNode{r: r, typ: DocumentFragmentNode}
	for _, tag := range strings.Fields(markup) {
		if tag == "#text" {
			frag.children = append(frag.children, &recNode{r: r, typ: TextNode, parent: frag})
			continue
		}
		frag.children = append(frag.children, &recElement{recNode{r: r, typ: ElementNode, name: tag, parent: frag}})
	}
	return frag, nil
}

func (n *recNode) NodeType() NodeType { return n.typ }
func (n *recNode) FirstChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}
func (n *recNode) ChildNodes() []Node  { return n.children }
func (n *recNode) HasChildNodes() bool { return len(n.children) > 0 }
func (n *recNode) TextContent() string { return n.name }
func (n *recNode) AppendChild(child Node) error {
	var c *recNode
	switch x := child.(type) {
	case *recNode:
		c = x
	case *recElement:
		c = &x.recNode
	}
	n.r.log("appendChild", c.name)
	if p := c.parent; p != nil {
		for i, sibling := range p.children {
			if sibling == child {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	c.parent = n
	n.children = append(n.children, child)
	return nil
}

func (e *recElement) TagName() string             { return strings.ToUpper(e.name) }
func (e *recElement) ID() string                  { return "" }
func (e *recElement) SetID(id string)             { e.r.log("id", id) }
func (e *recElement) ClassList() ClassList        { return recClassList{e.r} }
func (e *recElement) Style() Style                { return recStyle{e.r} }
func (e *recElement) HasAttribute(string) bool    { return false }
func (e *recElement) RemoveAttribute(name string) { e.r.log("removeAttribute", name) }
func (e *recElement) GetAttribute(string) (string, bool) {
	return "", false
}
func (e *recElement) SetAttribute(name, value string) error {
	e.r.log("setAttribute", name, value)
	return nil
}
func (e *recElement) AddEventListener(typ string, l Listener) {
	e.r.log("addEventListener", typ)
}

func (c recClassList) Add(tokens ...string) error {
	c.r.log("classList.add", tokens...)
	return nil
}
func (c recClassList) Contains(string) bool { return false }
func (c recClassList) Values() []string     { return nil }

func (s recStyle) SetProperty(name, value string) { s.r.log("style", name, value) }
func (s recStyle) GetPropertyValue(string) string { return "" }
func (s recStyle) CSSText() string                { return "" }

func TestDispatchOrder(t *testing.T) {
	r := &recorder{}
	b := New(r)
	_, err := b.CreateElementWithListeners("button", Attrs{
		"type":      "submit",
		"dataSet":   Dataset{"row": "1"},
		"style":     Styles{"fontSize": "2em"},
		"onClick":   Listener(func(Event) {}),
		"class":     "x y",
		"id":        "save",
		"disabled":  false,
		"draggable": true,
		"title":     nil,
	}, Listeners{"Focus": func(Event) {}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"createElement(button,)",
		"id(save)",
		"classList.add(x)",
		"classList.add(y)",
		"addEventListener(click)",
		"addEventListener(focus)",
		"style(font-size,2em)",
		"setAttribute(data-row,1)",
		"removeAttribute(disabled)",
		"setAttribute(draggable,true)",
		"setAttribute(type,submit)",
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls =\n%s\nwant\n%s", strings.Join(r.calls, "\n"), strings.Join(want, "\n"))
	}
}

func TestCustomElementIsHint(t *testing.T) {
	r := &recorder{}
	if _, err := New(r).CreateCustomElement("button", Attrs{"is": "fancy-button"}); err != nil {
		t.Fatal(err)
	}
	want := []string{"createElement(button,fancy-button)", "setAttribute(is,fancy-button)"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %q, want %q", r.calls, want)
	}
}

func TestHostErrorPropagates(t *testing.T) {
	r := &recorder{}
	if _, err := New(r).CreateElement(""); err == nil || err.Error() != "empty tag" {
		t.Errorf("err = %v, want the host error unchanged", err)
	}
}

func TestFunctionValueUnderStyleKey(t *testing.T) {
	r := &recorder{}
	_, err := New(r).CreateElementWithAttrs("div", Attrs{
		"style":   func(Event) {},
		"dataSet": Listener(func(Event) {}),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"createElement(div,)",
		"addEventListener(taset)",
		"addEventListener(yle)",
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %q, want %q", r.calls, want)
	}
}

func TestUnsupportedStyleValue(t *testing.T) {
	r := &recorder{}
	_, err := New(r).CreateElementWithAttrs("div", Attrs{"style": "color: red"})
	if err == nil {
		t.Errorf("expected an error for a string style value")
	}
}

func TestEventTypeFromKey(t *testing.T) {
	testdata := map[string]string{
		"onClick":     "click",
		"onKeyDown":   "keydown",
		"ondblclick":  "dblclick",
		"xxMouseOver": "mouseover",
		"o":           "o",
	}
	for key, want := range testdata {
		if got := eventTypeFromKey(key); got != want {
			t.Errorf("eventTypeFromKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestCSSPropertyName(t *testing.T) {
	testdata := map[string]string{
		"color":           "color",
		"backgroundColor": "background-color",
		"border-top":      "border-top",
		"WebkitTransform": "-webkit-transform",
		"cssFloat":        "float",
		"--main-color":    "--main-color",
	}
	for name, want := range testdata {
		if got := cssPropertyName(name); got != want {
			t.Errorf("cssPropertyName(%q) = %q, want %q", name, got, want)
		}
	}
}

type celsius float64

func (c celsius) String() string { return "warm" }

func TestStringValue(t *testing.T) {
	testdata := []struct {
		in   any
		want string
	}{
		{"a", "a"},
		{3, "3"},
		{int64(-7), "-7"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{celsius(30), "warm"},
		{uint8(9), "9"},
	}
	for _, td := range testdata {
		if got := stringValue(td.in); got != td.want {
			t.Errorf("stringValue(%v) = %q, want %q", td.in, got, td.want)
		}
	}
}
