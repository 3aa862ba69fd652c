package htmldom

import (
	"runtime"
	"strings"
	"sync"
	"weak"

	"github.com/boxesandglue/elemental"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func init() {
	elemental.RegisterDocument(NewDocument())
}

// Document is an elemental.Document backed by golang.org/x/net/html. Every
// node it hands out has exactly one wrapper at a time. Wrappers are held
// weakly and dropped once the program no longer references them, except
// for elements with event listeners, which are kept for as long as the
// Document lives so the listeners stay attached to their node.
type Document struct {
	mu    sync.Mutex
	nodes map[*html.Node]entry
}

// entry refers to the wrapper of one node.
type entry struct {
	el   weak.Pointer[Element]
	node weak.Pointer[Node]

	// retained is set for elements with listeners.
	retained *Element
}

func (en entry) value() elemental.Node {
	if en.retained != nil {
		return en.retained
	}
	if el := en.el.Value(); el != nil {
		return el
	}
	if nd := en.node.Value(); nd != nil {
		return nd
	}
	return nil
}

var _ elemental.Document = (*Document)(nil)

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{nodes: make(map[*html.Node]entry)}
}

// CreateElement creates a detached element. Tag names are lower-cased.
func (d *Document) CreateElement(tag string, opts elemental.ElementCreationOptions) (elemental.Element, error) {
	if err := validateName(tag); err != nil {
		return nil, err
	}
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	el := d.wrap(n).(*Element)
	if opts.Is != "" {
		el.setAttr("is", opts.Is)
	}
	return el, nil
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) elemental.Node {
	return d.wrap(&html.Node{Type: html.TextNode, Data: data})
}

// CreateDocumentFragment creates an empty fragment.
func (d *Document) CreateDocumentFragment() elemental.Node {
	return d.newFragment()
}

// fragmentData marks the html.DocumentNode behind a fragment.
const fragmentData = "#document-fragment"

func (d *Document) newFragment() *Node {
	return d.wrap(&html.Node{Type: html.DocumentNode, Data: fragmentData}).(*Node)
}

// ParseHTML parses markup in the context of a template element and returns
// the resulting fragment.
func (d *Document) ParseHTML(markup string) (elemental.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "template",
		DataAtom: atom.Template,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	frag := d.newFragment()
	for _, n := range nodes {
		frag.n.AppendChild(n)
	}
	return frag, nil
}

// Wrap returns the wrapper of an existing x/net/html node. Listeners that
// were added through a previous wrapper of n are kept.
func (d *Document) Wrap(n *html.Node) elemental.Node {
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

func (d *Document) wrap(n *html.Node) elemental.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w := d.nodes[n].value(); w != nil {
		return w
	}
	var w elemental.Node
	switch n.Type {
	case html.ElementNode:
		w = &Element{Node: Node{doc: d, n: n, typ: elemental.ElementNode}}
	case html.CommentNode:
		w = &Node{doc: d, n: n, typ: elemental.CommentNode}
	case html.DoctypeNode:
		w = &Node{doc: d, n: n, typ: elemental.DoctypeNode}
	case html.DocumentNode:
		typ := elemental.DocumentNode
		if n.Data == fragmentData {
			typ = elemental.DocumentFragmentNode
		}
		w = &Node{doc: d, n: n, typ: typ}
	default:
		w = &Node{doc: d, n: n, typ: elemental.TextNode}
	}
	d.track(n, w)
	return w
}

// track stores a weak entry for w and removes it again once w has been
// garbage collected. The caller holds d.mu.
func (d *Document) track(n *html.Node, w elemental.Node) {
	var en entry
	switch x := w.(type) {
	case *Element:
		en.el = weak.Make(x)
		runtime.AddCleanup(x, d.forget, n)
	case *Node:
		en.node = weak.Make(x)
		runtime.AddCleanup(x, d.forget, n)
	}
	d.nodes[n] = en
}

// forget drops the entry of n unless n got a new wrapper in the meantime.
func (d *Document) forget(n *html.Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if en, ok := d.nodes[n]; ok && en.value() == nil {
		delete(d.nodes, n)
	}
}

// retain keeps el alive for the lifetime of the document.
func (d *Document) retain(el *Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	en := d.nodes[el.n]
	en.retained = el
	d.nodes[el.n] = en
}

// size returns the number of tracked nodes.
func (d *Document) size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.nodes)
}

// adopt moves the wrappers of a subtree from another htmldom document into
// d, keeping their listeners.
func (d *Document) adopt(w htmlNoder) {
	other := w.document()
	if other == d {
		return
	}
	type moved struct {
		n        *html.Node
		w        elemental.Node
		retained bool
	}
	var subtree []moved
	other.mu.Lock()
	walk(w.htmlNode(), func(n *html.Node) {
		en, ok := other.nodes[n]
		if !ok {
			return
		}
		delete(other.nodes, n)
		if x := en.value(); x != nil {
			subtree = append(subtree, moved{n: n, w: x, retained: en.retained != nil})
		}
	})
	other.mu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, m := range subtree {
		setDocument(m.w, d)
		d.track(m.n, m.w)
		if m.retained {
			en := d.nodes[m.n]
			en.retained = m.w.(*Element)
			d.nodes[m.n] = en
		}
	}
}

func setDocument(w elemental.Node, d *Document) {
	switch x := w.(type) {
	case *Element:
		x.doc = d
	case *Node:
		x.doc = d
	}
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
