package elemental

// DangerousHTML parses markup into a detached fragment. The markup is not
// sanitised or escaped in any way, so it must come from a trusted source.
func (b *Builder) DangerousHTML(markup string) (Node, error) {
	return b.doc.ParseHTML(markup)
}

// CreateElementFromHTMLString parses markup that consists of exactly one
// top-level element and returns that element. Any other shape, including
// surrounding whitespace or a lone text node, returns a MalformedRootError.
func (b *Builder) CreateElementFromHTMLString(markup string) (Element, error) {
	frag, err := b.DangerousHTML(markup)
	if err != nil {
		return nil, err
	}
	children := frag.ChildNodes()
	if len(children) != 1 {
		return nil, &MalformedRootError{Count: len(children)}
	}
	el, ok := children[0].(Element)
	if !ok || children[0].NodeType() != ElementNode {
		return nil, &MalformedRootError{Count: 1, Type: children[0].NodeType()}
	}
	return el, nil
}

// DangerousHTML calls Builder.DangerousHTML on the registered document.
func DangerousHTML(markup string) (Node, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.DangerousHTML(markup)
}

// CreateElementFromHTMLString calls Builder.CreateElementFromHTMLString on
// the registered document.
func CreateElementFromHTMLString(markup string) (Element, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.CreateElementFromHTMLString(markup)
}
