package htmldom

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

func compileSelector(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err)
	}
	return sel, nil
}

// Selection returns a goquery selection rooted at the node.
func (nd *Node) Selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(nd.n).Selection
}

// QuerySelectorAll returns the descendant elements that match selector in
// document order.
func (nd *Node) QuerySelectorAll(selector string) ([]*Element, error) {
	sel, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	var ret []*Element
	nd.Selection().FindMatcher(sel).Each(func(i int, s *goquery.Selection) {
		if el, ok := nd.doc.wrap(s.Get(0)).(*Element); ok {
			ret = append(ret, el)
		}
	})
	return ret, nil
}

// QuerySelector returns the first descendant element that matches selector
// or nil.
func (nd *Node) QuerySelector(selector string) (*Element, error) {
	all, err := nd.QuerySelectorAll(selector)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// Matches reports whether the element matches selector.
func (e *Element) Matches(selector string) (bool, error) {
	sel, err := compileSelector(selector)
	if err != nil {
		return false, err
	}
	return sel.Match(e.n), nil
}
