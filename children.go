package elemental

import "fmt"

// normalizeChildren turns strings into text nodes and drops nil entries.
func normalizeChildren(doc Document, children []any) ([]Node, error) {
	nodes := make([]Node, 0, len(children))
	for i, child := range children {
		switch c := child.(type) {
		case nil:
			continue
		case string:
			nodes = append(nodes, doc.CreateTextNode(c))
		case Node:
			nodes = append(nodes, c)
		default:
			return nil, fmt.Errorf("%w: child %d has type %T", ErrInvalidChild, i, child)
		}
	}
	return nodes, nil
}

// appendChildren appends nodes to parent in order. The children of a
// fragment are moved into parent one by one, leaving the fragment empty.
func appendChildren(parent Node, nodes []Node) error {
	for _, child := range nodes {
		if child.NodeType() == DocumentFragmentNode {
			for child.HasChildNodes() {
				if err := parent.AppendChild(child.FirstChild()); err != nil {
					return err
				}
			}
			continue
		}
		if err := parent.AppendChild(child); err != nil {
			return err
		}
	}
	return nil
}
