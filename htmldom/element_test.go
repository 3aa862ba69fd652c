package htmldom

import (
	"errors"
	"reflect"
	"testing"

	"github.com/boxesandglue/elemental"
)

func TestCreateElement(t *testing.T) {
	doc := NewDocument()
	testdata := []struct {
		tag  string
		ok   bool
		want string
	}{
		{"div", true, "DIV"},
		{"MY-Widget", true, "MY-WIDGET"},
		{"svg:rect", true, "SVG:RECT"},
		{"", false, ""},
		{"1div", false, ""},
		{"di v", false, ""},
		{"<p>", false, ""},
	}
	for _, td := range testdata {
		el, err := doc.CreateElement(td.tag, elemental.ElementCreationOptions{})
		if !td.ok {
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Errorf("CreateElement(%q) err = %v, want ErrInvalidCharacter", td.tag, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("CreateElement(%q) err = %v", td.tag, err)
			continue
		}
		if got := el.TagName(); got != td.want {
			t.Errorf("CreateElement(%q).TagName() = %q, want %q", td.tag, got, td.want)
		}
	}
}

func TestAttributes(t *testing.T) {
	el := newElement(t, "a")
	if err := el.SetAttribute("HREF", "/one"); err != nil {
		t.Fatal(err)
	}
	if err := el.SetAttribute("href", "/two"); err != nil {
		t.Fatal(err)
	}
	if got, ok := el.GetAttribute("Href"); !ok || got != "/two" {
		t.Errorf("GetAttribute(Href) = %q, %t, want %q, true", got, ok, "/two")
	}
	if got := len(el.Attributes()); got != 1 {
		t.Errorf("len(Attributes()) = %d, want 1", got)
	}
	if err := el.SetAttribute("bad name", "x"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("SetAttribute(bad name) err = %v, want ErrInvalidCharacter", err)
	}
	el.RemoveAttribute("href")
	el.RemoveAttribute("href")
	if el.HasAttribute("href") {
		t.Errorf("href was not removed")
	}
}

func TestDataset(t *testing.T) {
	el := newElement(t, "div")
	el.setAttr("data-row", "1")
	el.setAttr("title", "x")
	el.setAttr("data-col", "2")
	if got, want := el.Dataset(), map[string]string{"row": "1", "col": "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Dataset() = %v, want %v", got, want)
	}
}

func TestClassList(t *testing.T) {
	el := newElement(t, "div")
	cl := el.ClassList()
	if err := cl.Add("a", "b", "a"); err != nil {
		t.Fatal(err)
	}
	if err := cl.Add("b", "c"); err != nil {
		t.Fatal(err)
	}
	if got, want := cl.Values(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %q, want %q", got, want)
	}
	if !cl.Contains("c") || cl.Contains("d") {
		t.Errorf("Contains() is wrong")
	}
	if err := cl.Add(""); !errors.Is(err, ErrSyntax) {
		t.Errorf("Add(\"\") err = %v, want ErrSyntax", err)
	}
	if err := cl.Add("x y"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("Add(\"x y\") err = %v, want ErrInvalidCharacter", err)
	}
	if got, _ := el.GetAttribute("class"); got != "a b c" {
		t.Errorf("class = %q, want %q", got, "a b c")
	}
}

func TestAppendChildMovesNode(t *testing.T) {
	doc := NewDocument()
	a, _ := doc.CreateElement("div", elemental.ElementCreationOptions{})
	b, _ := doc.CreateElement("div", elemental.ElementCreationOptions{})
	child, _ := doc.CreateElement("span", elemental.ElementCreationOptions{})

	if err := a.AppendChild(child); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendChild(child); err != nil {
		t.Fatal(err)
	}
	if a.HasChildNodes() {
		t.Errorf("child was not removed from the old parent")
	}
	if b.FirstChild() != child {
		t.Errorf("child was not appended to the new parent")
	}
	if got := child.(*Element).ParentNode(); got != b {
		t.Errorf("ParentNode() = %v, want b", got)
	}
}

func TestAppendChildHierarchy(t *testing.T) {
	doc := NewDocument()
	outer, _ := doc.CreateElement("div", elemental.ElementCreationOptions{})
	inner, _ := doc.CreateElement("div", elemental.ElementCreationOptions{})
	if err := outer.AppendChild(inner); err != nil {
		t.Fatal(err)
	}
	if err := inner.AppendChild(outer); !errors.Is(err, ErrHierarchy) {
		t.Errorf("appending an ancestor: err = %v, want ErrHierarchy", err)
	}
	if err := outer.AppendChild(outer); !errors.Is(err, ErrHierarchy) {
		t.Errorf("appending to itself: err = %v, want ErrHierarchy", err)
	}
	text := doc.CreateTextNode("x")
	if err := text.AppendChild(inner); !errors.Is(err, ErrHierarchy) {
		t.Errorf("appending to a text node: err = %v, want ErrHierarchy", err)
	}
}

type foreignNode struct {
	elemental.Node
}

func TestAppendForeignNode(t *testing.T) {
	el := newElement(t, "div")
	if err := el.AppendChild(foreignNode{}); !errors.Is(err, ErrForeignNode) {
		t.Errorf("err = %v, want ErrForeignNode", err)
	}
}

func TestWrapperIdentity(t *testing.T) {
	doc := NewDocument()
	frag, err := doc.ParseHTML("<ul><li>a</li></ul>")
	if err != nil {
		t.Fatal(err)
	}
	ul := frag.FirstChild().(*Element)
	li := ul.FirstChild().(*Element)
	calls := 0
	li.AddEventListener("click", func(elemental.Event) { calls++ })

	again := ul.ChildNodes()[0].(*Element)
	if again != li {
		t.Fatalf("ChildNodes() returned a new wrapper")
	}
	if doc.Wrap(li.HTML()) != li {
		t.Errorf("Wrap() returned a new wrapper")
	}
	again.DispatchEvent(NewEvent("click"))
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestAdoptFromOtherDocument(t *testing.T) {
	d1, d2 := NewDocument(), NewDocument()
	btn, _ := d1.CreateElement("button", elemental.ElementCreationOptions{})
	clicked := false
	btn.AddEventListener("click", func(elemental.Event) { clicked = true })

	parent, _ := d2.CreateElement("form", elemental.ElementCreationOptions{})
	if err := parent.AppendChild(btn); err != nil {
		t.Fatal(err)
	}
	got := parent.FirstChild().(*Element)
	if got != btn {
		t.Fatalf("adopted node has a new wrapper")
	}
	got.DispatchEvent(NewEvent("click"))
	if !clicked {
		t.Errorf("listener was lost on adoption")
	}
	if _, ok := d1.nodes[btn.(*Element).HTML()]; ok {
		t.Errorf("node is still registered with the old document")
	}
}

func TestTextContent(t *testing.T) {
	doc := NewDocument()
	frag, err := doc.ParseHTML("<p>one <b>two</b><!-- no --> three</p>")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := frag.TextContent(), "one two three"; got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
	if got, want := doc.CreateTextNode("x").TextContent(), "x"; got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
}

func TestCreationIsHint(t *testing.T) {
	el, err := NewDocument().CreateElement("button", elemental.ElementCreationOptions{Is: "fancy-button"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := el.GetAttribute("is"); got != "fancy-button" {
		t.Errorf("is = %q, want %q", got, "fancy-button")
	}
}
