package elemental

import "sync"

// NodeType identifies the kind of a node. The values are the ones the DOM
// uses for Node.nodeType.
type NodeType int

// The node types a host can produce.
const (
	ElementNode          NodeType = 1
	TextNode             NodeType = 3
	CommentNode          NodeType = 8
	DocumentNode         NodeType = 9
	DoctypeNode          NodeType = 10
	DocumentFragmentNode NodeType = 11
)

// String returns the DOM name of the node type.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DoctypeNode:
		return "doctype"
	case DocumentFragmentNode:
		return "fragment"
	}
	return "unknown"
}

// Node is a host node.
type Node interface {
	NodeType() NodeType

	// FirstChild returns nil if the node has no children.
	FirstChild() Node

	// ChildNodes returns a snapshot of the children.
	ChildNodes() []Node

	HasChildNodes() bool

	// AppendChild moves child to the end of the child list. If child is a
	// fragment its children are moved instead.
	AppendChild(child Node) error

	TextContent() string
}

// Element is a host element.
type Element interface {
	Node

	TagName() string
	ID() string
	SetID(id string)
	ClassList() ClassList
	Style() Style

	GetAttribute(name string) (string, bool)
	HasAttribute(name string) bool
	SetAttribute(name, value string) error
	RemoveAttribute(name string)

	// AddEventListener registers l for events of type typ. The host invokes
	// it later under its own event dispatch.
	AddEventListener(typ string, l Listener)
}

// ClassList is the DOMTokenList of the class attribute.
type ClassList interface {
	Add(tokens ...string) error
	Contains(token string) bool
	Values() []string
}

// Style is the inline style object of an element.
type Style interface {
	// SetProperty sets a CSS property. An empty value removes it.
	SetProperty(name, value string)
	GetPropertyValue(name string) string
	CSSText() string
}

// Event is the native event a listener receives. Hosts pass their own
// implementation; use a type assertion to get at host specific data.
type Event interface {
	Type() string
}

// Listener is an event handler.
type Listener func(Event)

// ElementCreationOptions corresponds to the options argument of
// document.createElement.
type ElementCreationOptions struct {
	// Is names a customized built-in element to upgrade to.
	Is string
}

// Document is the host document API. Everything the builder does is routed
// through it.
type Document interface {
	CreateElement(tag string, opts ElementCreationOptions) (Element, error)
	CreateTextNode(data string) Node
	CreateDocumentFragment() Node

	// ParseHTML sets markup as the inner HTML of a detached template
	// element and returns the template content. No sanitising takes place.
	ParseHTML(markup string) (Node, error)
}

var (
	documentMu sync.RWMutex
	document   Document
)

// RegisterDocument makes d the document used by the package level
// functions. Hosts call it from init. It returns the previously registered
// document.
func RegisterDocument(d Document) (old Document) {
	documentMu.Lock()
	defer documentMu.Unlock()
	old, document = document, d
	return old
}

// CurrentDocument returns the registered document or nil.
func CurrentDocument() Document {
	documentMu.RLock()
	defer documentMu.RUnlock()
	return document
}
