package dom

import "fmt"

// Attr is a single attribute for Setup and Element. Attribute slices
// preserve caller order, unlike maps.
type Attr struct {
	Key   string
	Value any
}

// Reserved Setup keys.
const (
	// TextKey sets the element's text content instead of an attribute.
	// The value is taken literally; no markup parsing happens.
	TextKey = "_text"

	// HTMLKey sets the element's inner markup instead of an attribute.
	// The value is parsed as HTML and is not sanitized.
	HTMLKey = "_html"
)

// Element creates a new element and applies attrs via Setup.
func (d *DOM) Element(tag string, attrs ...Attr) Element {
	el := d.doc.CreateElement(tag)
	d.Setup(el, attrs...)
	return el
}

// Text creates a new text node.
func (d *DOM) Text(s string) Node {
	return d.doc.CreateTextNode(s)
}

// Comment creates a new comment node.
func (d *DOM) Comment(s string) Node {
	return d.doc.CreateComment(s)
}

// Setup applies attrs to el in order. TextKey and HTMLKey set content;
// every other key is set as a literal attribute with the value
// stringified.
func (d *DOM) Setup(el Element, attrs ...Attr) {
	for _, a := range attrs {
		switch a.Key {
		case "":
			continue
		case TextKey:
			el.SetTextContent(fmt.Sprint(a.Value))
		case HTMLKey:
			el.SetInnerHTML(fmt.Sprint(a.Value))
		default:
			el.SetAttribute(a.Key, fmt.Sprint(a.Value))
		}
	}
}

// Fragment builds a new document fragment from template:
//
//   - nil or a markup string: parse the markup into a fragment
//   - a template-like element (content is a fragment): import its content
//   - any other element: a fragment of deep clones of its children
//   - an existing fragment: a deep clone
//   - a []Node or []Element: deep clones of the members, in order
//
// Anything else yields nil.
func (d *DOM) Fragment(template any) Node {
	switch t := template.(type) {
	case nil:
		return d.fragmentFromHTML("")
	case string:
		return d.fragmentFromHTML(t)
	case Element:
		if te, ok := t.(TemplateElement); ok {
			if content := te.Content(); content != nil && IsFragment(content) {
				return d.importFragment(content)
			}
		}
		frag := d.doc.CreateFragment()
		for _, child := range t.ChildNodes() {
			frag.AppendChild(child.CloneNode(true))
		}
		return frag
	case Node:
		if IsFragment(t) {
			return t.CloneNode(true)
		}
		frag := d.doc.CreateFragment()
		frag.AppendChild(t.CloneNode(true))
		return frag
	case []Node:
		frag := d.doc.CreateFragment()
		for _, n := range t {
			frag.AppendChild(n.CloneNode(true))
		}
		return frag
	case []Element:
		frag := d.doc.CreateFragment()
		for _, n := range t {
			frag.AppendChild(n.CloneNode(true))
		}
		return frag
	}
	return nil
}

// importFragment deep-imports a foreign fragment's children into a new
// fragment owned by this document.
func (d *DOM) importFragment(content Node) Node {
	frag := d.doc.CreateFragment()
	for _, child := range content.ChildNodes() {
		frag.AppendChild(child.CloneNode(true))
	}
	return frag
}

// fragmentFromHTML parses markup into a fragment. The shared range's
// contextual-fragment capability is preferred; otherwise the markup is
// written into the shared scratch element and its children are drained,
// first to last, into a fresh fragment. The scratch element is empty
// again when this returns.
func (d *DOM) fragmentFromHTML(markup string) Node {
	if cf, ok := d.sharedRange().(ContextualFragmenter); ok {
		if frag, err := cf.CreateContextualFragment(markup); err == nil {
			return frag
		}
	}

	sink := d.scratch()
	sink.SetInnerHTML(markup)
	frag := d.doc.CreateFragment()
	for child := sink.FirstChild(); child != nil; child = sink.FirstChild() {
		frag.AppendChild(child)
	}
	return frag
}

// Range creates a new range. With only a start node the range selects
// that whole node; with both boundaries it is set explicitly; with
// neither it stays at the document's default position.
func (d *DOM) Range(start Node, startOffset int, end Node, endOffset int) Range {
	r := d.doc.CreateRange()
	switch {
	case start != nil && end != nil:
		r.SetStart(start, startOffset)
		r.SetEnd(end, endOffset)
	case start != nil:
		r.SelectNode(start)
	}
	return r
}
