// Package htmldom implements the elemental host API on top of
// golang.org/x/net/html node trees.
//
// Importing the package registers a shared document with elemental, so the
// package level functions of elemental work without a browser:
//
//	import _ "github.com/boxesandglue/elemental/htmldom"
//
// Elements can be serialized with Render or OuterHTML and inspected with CSS
// selectors through QuerySelectorAll and Matches.
package htmldom
