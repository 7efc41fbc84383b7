package htmldom

import (
	"golang.org/x/net/html"

	"github.com/andybalholm/cascadia"
	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
)

// compile parses a selector group, caching compiled selectors per
// document.
func (d *Document) compile(selector string) (cascadia.SelectorGroup, error) {
	if g, ok := d.selectors[selector]; ok {
		return g, nil
	}
	g, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, errs.New(errs.CodeBadSelector).Wrap(err)
	}
	d.selectors[selector] = g
	return g, nil
}

// queryIn returns the first descendant of root matching selector.
func (d *Document) queryIn(root *html.Node, selector string) (dom.Element, error) {
	g, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	raw := firstMatch(root, g)
	if raw == nil {
		return nil, nil
	}
	return d.adopt(raw).(dom.Element), nil
}

// queryAllIn returns all descendants of root matching selector, in
// document order. The result is a snapshot, not a live view.
func (d *Document) queryAllIn(root *html.Node, selector string) ([]dom.Element, error) {
	g, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	var out []dom.Element
	walkMatches(root, g, func(raw *html.Node) bool {
		out = append(out, d.adopt(raw).(dom.Element))
		return true
	})
	return out, nil
}

func firstMatch(root *html.Node, g cascadia.SelectorGroup) *html.Node {
	var found *html.Node
	walkMatches(root, g, func(raw *html.Node) bool {
		found = raw
		return false
	})
	return found
}

// walkMatches visits matching element descendants of root (root itself
// excluded) until visit returns false.
func walkMatches(root *html.Node, g cascadia.SelectorGroup, visit func(*html.Node) bool) bool {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && g.Match(c) {
			if !visit(c) {
				return false
			}
		}
		if !walkMatches(c, g, visit) {
			return false
		}
	}
	return true
}
