package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/boxesandglue/elemental"
	"golang.org/x/net/html"
)

// Render writes the HTML serialization of n to w. Fragments and documents
// render their children.
func Render(w io.Writer, n elemental.Node) error {
	hn, ok := n.(htmlNoder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, n)
	}
	if n.NodeType() == elemental.DocumentFragmentNode {
		for c := hn.htmlNode().FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	return html.Render(w, hn.htmlNode())
}

// OuterHTML returns the serialization of n or the error text if it cannot
// be rendered.
func OuterHTML(n elemental.Node) string {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return err.Error()
	}
	return buf.String()
}

// InnerHTML returns the serialization of the children of n.
func InnerHTML(n elemental.Node) string {
	var buf bytes.Buffer
	for _, c := range n.ChildNodes() {
		if err := Render(&buf, c); err != nil {
			return err.Error()
		}
	}
	return buf.String()
}

func indent(s string) string {
	ret := []string{}
	for _, line := range strings.Split(s, "\n") {
		ret = append(ret, "    "+line)
	}
	return strings.Join(ret, "\n")
}

// Dump returns an indented tree of n for debugging.
func Dump(n elemental.Node) string {
	var firstline string
	switch n.NodeType() {
	case elemental.ElementNode:
		if el, ok := n.(*Element); ok {
			firstline = "<" + el.n.Data
			for _, a := range el.n.Attr {
				firstline += fmt.Sprintf(" %s=%q", a.Key, a.Val)
			}
			if types := el.ListenerTypes(); len(types) > 0 {
				firstline += " on=" + strings.Join(types, ",")
			}
			firstline += ">"
		} else if el, ok := n.(elemental.Element); ok {
			firstline = "<" + strings.ToLower(el.TagName()) + ">"
		} else {
			firstline = "<?>"
		}
	case elemental.TextNode:
		return fmt.Sprintf("#text %q", n.TextContent())
	case elemental.CommentNode:
		return fmt.Sprintf("#comment %q", n.TextContent())
	default:
		firstline = "#" + n.NodeType().String()
	}
	ret := []string{firstline}
	for _, c := range n.ChildNodes() {
		ret = append(ret, indent(Dump(c)))
	}
	return strings.Join(ret, "\n")
}
