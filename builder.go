package elemental

import "fmt"

// Builder creates elements on a host document. It holds no reference to
// the elements it creates.
type Builder struct {
	doc Document
	cfg Config
}

// Option configures a Builder.
type Option func(*Builder)

// WithConfig replaces the builder configuration.
func WithConfig(cfg Config) Option {
	return func(b *Builder) {
		b.cfg = cfg
	}
}

// WithExplicitBooleans sets the attributes that render boolean true as
// "true".
func WithExplicitBooleans(names ...string) Option {
	return func(b *Builder) {
		b.cfg.ExplicitBooleans = names
	}
}

// New returns a builder for doc.
func New(doc Document, opts ...Option) *Builder {
	b := &Builder{doc: doc, cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Document returns the host document of the builder.
func (b *Builder) Document() Document {
	return b.doc
}

// CreateElement creates a tag element without attributes. Children are
// strings, which become text nodes, or nodes. Fragments are flattened into
// the new element.
func (b *Builder) CreateElement(tag string, children ...any) (Element, error) {
	return b.create(tag, nil, nil, children)
}

// CreateElementWithAttrs creates a tag element, applies attrs and appends
// the children.
func (b *Builder) CreateElementWithAttrs(tag string, attrs Attrs, children ...any) (Element, error) {
	return b.create(tag, attrs, nil, children)
}

// CreateElementWithListeners is CreateElementWithAttrs with an explicit set
// of event listeners.
func (b *Builder) CreateElementWithListeners(tag string, attrs Attrs, on Listeners, children ...any) (Element, error) {
	return b.create(tag, attrs, on, children)
}

// CreateCustomElement creates an element with a non-standard tag name such
// as "my-widget". A string in attrs["is"] is passed to the host as the
// customized built-in hint.
func (b *Builder) CreateCustomElement(tag string, attrs Attrs, children ...any) (Element, error) {
	return b.create(tag, attrs, nil, children)
}

func (b *Builder) create(tag string, attrs Attrs, on Listeners, children []any) (Element, error) {
	nodes, err := normalizeChildren(b.doc, children)
	if err != nil {
		return nil, err
	}
	var opts ElementCreationOptions
	if is, ok := attrs["is"].(string); ok {
		opts.Is = is
	}
	el, err := b.doc.CreateElement(tag, opts)
	if err != nil {
		return nil, err
	}
	if err := b.applyAttrs(el, attrs, on); err != nil {
		return nil, fmt.Errorf("<%s>: %w", tag, err)
	}
	if err := appendChildren(el, nodes); err != nil {
		return nil, fmt.Errorf("<%s>: %w", tag, err)
	}
	return el, nil
}

func defaultBuilder() (*Builder, error) {
	doc := CurrentDocument()
	if doc == nil {
		return nil, ErrNoDocument
	}
	return New(doc), nil
}

// CreateElement calls Builder.CreateElement on the registered document.
func CreateElement(tag string, children ...any) (Element, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.CreateElement(tag, children...)
}

// CreateElementWithAttrs calls Builder.CreateElementWithAttrs on the
// registered document.
func CreateElementWithAttrs(tag string, attrs Attrs, children ...any) (Element, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.CreateElementWithAttrs(tag, attrs, children...)
}

// CreateElementWithListeners calls Builder.CreateElementWithListeners on
// the registered document.
func CreateElementWithListeners(tag string, attrs Attrs, on Listeners, children ...any) (Element, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.CreateElementWithListeners(tag, attrs, on, children...)
}

// CreateCustomElement calls Builder.CreateCustomElement on the registered
// document.
func CreateCustomElement(tag string, attrs Attrs, children ...any) (Element, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.CreateCustomElement(tag, attrs, children...)
}
