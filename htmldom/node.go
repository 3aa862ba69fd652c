package htmldom

import (
	"fmt"
	"strings"

	"github.com/boxesandglue/elemental"
	"golang.org/x/net/html"
)

type htmlNoder interface {
	htmlNode() *html.Node
	document() *Document
}

// Node is a text, comment, doctype, document or fragment node. Elements are
// represented by Element.
type Node struct {
	doc *Document
	n   *html.Node
	typ elemental.NodeType
}

var _ elemental.Node = (*Node)(nil)

func (nd *Node) htmlNode() *html.Node { return nd.n }
func (nd *Node) document() *Document  { return nd.doc }

// HTML returns the underlying x/net/html node.
func (nd *Node) HTML() *html.Node {
	return nd.n
}

// NodeType returns the DOM node type.
func (nd *Node) NodeType() elemental.NodeType {
	return nd.typ
}

// FirstChild returns the first child or nil.
func (nd *Node) FirstChild() elemental.Node {
	if nd.n.FirstChild == nil {
		return nil
	}
	return nd.doc.wrap(nd.n.FirstChild)
}

// ChildNodes returns the children at the time of the call.
func (nd *Node) ChildNodes() []elemental.Node {
	var ret []elemental.Node
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		ret = append(ret, nd.doc.wrap(c))
	}
	return ret
}

// HasChildNodes reports whether the node has children.
func (nd *Node) HasChildNodes() bool {
	return nd.n.FirstChild != nil
}

// ParentNode returns the parent or nil.
func (nd *Node) ParentNode() elemental.Node {
	if nd.n.Parent == nil {
		return nil
	}
	return nd.doc.wrap(nd.n.Parent)
}

// TextContent returns the data of text and comment nodes and the
// concatenated text of all descendant text nodes otherwise.
func (nd *Node) TextContent() string {
	switch nd.n.Type {
	case html.TextNode, html.CommentNode, html.RawNode:
		return nd.n.Data
	}
	var sb strings.Builder
	walk(nd.n, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

// AppendChild moves child to the end of the child list. A child that
// already has a parent is removed from it first. The children of a
// fragment are moved and the fragment is left empty.
func (nd *Node) AppendChild(child elemental.Node) error {
	c, ok := child.(htmlNoder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, child)
	}
	switch nd.typ {
	case elemental.ElementNode, elemental.DocumentNode, elemental.DocumentFragmentNode:
	default:
		return fmt.Errorf("%w: cannot append to a %s node", ErrHierarchy, nd.typ)
	}
	if child.NodeType() == elemental.DocumentFragmentNode {
		for child.HasChildNodes() {
			if err := nd.AppendChild(child.FirstChild()); err != nil {
				return err
			}
		}
		return nil
	}
	if child.NodeType() == elemental.DocumentNode {
		return fmt.Errorf("%w: cannot append a document", ErrHierarchy)
	}
	cn := c.htmlNode()
	for p := nd.n; p != nil; p = p.Parent {
		if p == cn {
			return fmt.Errorf("%w: node is an ancestor of the parent", ErrHierarchy)
		}
	}
	nd.doc.adopt(c)
	if cn.Parent != nil {
		cn.Parent.RemoveChild(cn)
	}
	nd.n.AppendChild(cn)
	return nil
}

// String returns the HTML serialization of the node.
func (nd *Node) String() string {
	return OuterHTML(nd)
}
