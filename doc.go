// Package elemental creates DOM elements imperatively from a tag name, an
// attribute bag and a list of children.
//
// The package talks to the host through the Document interface. The htmldom
// package provides a host on top of golang.org/x/net/html and jsdom a
// browser host for GopherJS. A host registers itself when imported, after
// that the package level functions can be used:
//
//	el, err := elemental.CreateElementWithAttrs("button", elemental.Attrs{
//		"class":    "btn primary",
//		"disabled": true,
//		"onClick":  elemental.Listener(func(ev elemental.Event) { ... }),
//	}, "Save")
//
// CreateElementFromHTMLString and DangerousHTML parse markup without any
// sanitising.
package elemental
