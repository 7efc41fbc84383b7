package htmldom

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
)

// Element is an element node handle.
type Element struct {
	node

	// content is the lazily created inert content view of template
	// elements; nil for ordinary elements.
	content *Fragment
}

// TagName returns the uppercase tag name.
func (e *Element) TagName() string { return strings.ToUpper(e.n.Data) }

// GetAttribute returns an attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

// HasAttribute reports whether an attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// InnerHTML renders the element's children as markup.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&b, c)
	}
	return b.String()
}

// SetInnerHTML replaces the element's children with parsed markup.
// Unparseable markup leaves the element empty.
func (e *Element) SetInnerHTML(markup string) {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		e.doc.log.Warn("inner markup parse failed",
			zap.String("tag", e.n.Data), zap.Error(err))
		return
	}
	for _, raw := range nodes {
		e.n.AppendChild(raw)
	}
}

// OuterHTML renders the element itself as markup.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	html.Render(&b, e.n)
	return b.String()
}

// InsertAdjacentHTML parses markup in the element's context and inserts
// the result at pos.
func (e *Element) InsertAdjacentHTML(pos dom.Position, markup string) error {
	context := e.n
	if pos == dom.PositionBeforeBegin || pos == dom.PositionAfterEnd {
		if e.n.Parent != nil && e.n.Parent.Type == html.ElementNode {
			context = e.n.Parent
		}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return errs.New(errs.CodeBadMarkup).Wrap(err)
	}

	switch pos {
	case dom.PositionBeforeEnd:
		for _, raw := range nodes {
			e.n.AppendChild(raw)
		}
	case dom.PositionAfterBegin:
		first := e.n.FirstChild
		for _, raw := range nodes {
			if first != nil {
				e.n.InsertBefore(raw, first)
			} else {
				e.n.AppendChild(raw)
			}
		}
	case dom.PositionBeforeBegin:
		if e.n.Parent == nil {
			return nil
		}
		for _, raw := range nodes {
			e.n.Parent.InsertBefore(raw, e.n)
		}
	case dom.PositionAfterEnd:
		if e.n.Parent == nil {
			return nil
		}
		next := e.n.NextSibling
		for _, raw := range nodes {
			if next != nil {
				e.n.Parent.InsertBefore(raw, next)
			} else {
				e.n.Parent.AppendChild(raw)
			}
		}
	}
	return nil
}

// ClassList returns the native class list view.
func (e *Element) ClassList() dom.ClassList { return classList{e} }

// Dataset returns the native data-* attribute view.
func (e *Element) Dataset() dom.Dataset { return dataset{e} }

// Matches tests the element against a selector group.
func (e *Element) Matches(selector string) (bool, error) {
	g, err := e.doc.compile(selector)
	if err != nil {
		return false, err
	}
	return g.Match(e.n), nil
}

// Closest returns the nearest ancestor-or-self matching selector, nil
// when the chain is exhausted.
func (e *Element) Closest(selector string) (dom.Element, error) {
	g, err := e.doc.compile(selector)
	if err != nil {
		return nil, err
	}
	for raw := e.n; raw != nil && raw.Type == html.ElementNode; raw = raw.Parent {
		if g.Match(raw) {
			return e.doc.adopt(raw).(dom.Element), nil
		}
	}
	return nil, nil
}

// QuerySelector returns the first descendant matching selector, or nil.
func (e *Element) QuerySelector(selector string) (dom.Element, error) {
	return e.doc.queryIn(e.n, selector)
}

// QuerySelectorAll returns a snapshot of descendants matching selector,
// in document order.
func (e *Element) QuerySelectorAll(selector string) ([]dom.Element, error) {
	return e.doc.queryAllIn(e.n, selector)
}

// Content returns the inert content fragment of template elements and
// nil for everything else. The fragment shares the template's children.
func (e *Element) Content() dom.Node {
	if e.n.DataAtom != atom.Template {
		return nil
	}
	if e.content == nil {
		e.content = &Fragment{node{n: e.n, doc: e.doc}}
		e.content.self = e.content
	}
	return e.content
}

// classList implements dom.ClassList over the class attribute.
type classList struct{ el *Element }

func (c classList) names() []string {
	raw, _ := c.el.GetAttribute("class")
	return strings.Fields(raw)
}

func (c classList) write(names []string) {
	c.el.SetAttribute("class", strings.Join(names, " "))
}

func (c classList) Contains(name string) bool {
	for _, n := range c.names() {
		if n == name {
			return true
		}
	}
	return false
}

func (c classList) Add(names ...string) {
	list := c.names()
	changed := false
	for _, name := range names {
		found := false
		for _, n := range list {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			list = append(list, name)
			changed = true
		}
	}
	if changed {
		c.write(list)
	}
}

func (c classList) Remove(names ...string) {
	list := c.names()
	kept := list[:0]
	for _, n := range list {
		drop := false
		for _, name := range names {
			if n == name {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, n)
		}
	}
	if len(kept) != len(list) {
		c.write(kept)
	}
}

func (c classList) Toggle(name string) bool {
	if c.Contains(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

// dataset implements dom.Dataset over data-* attributes with camelCase
// key translation.
type dataset struct{ el *Element }

func (d dataset) Get(key string) (string, bool) {
	return d.el.GetAttribute(dom.DataAttrName(key))
}

func (d dataset) Set(key, value string) {
	d.el.SetAttribute(dom.DataAttrName(key), value)
}

func (d dataset) Delete(key string) {
	d.el.RemoveAttribute(dom.DataAttrName(key))
}
