package htmldom

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/andybalholm/cascadia"
	"github.com/bruntbrus/minidom/pkg/dom"
)

// Document is the root handle of an htmldom tree and the factory for new
// nodes. It interns wrappers so repeated lookups of the same underlying
// node return the same handle.
//
// A Document is confined to a single goroutine.
type Document struct {
	node

	ready  bool
	frames []func()

	wrappers  map[*html.Node]dom.Node
	selectors map[string]cascadia.SelectorGroup

	log *zap.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger attaches a logger for debug traces. The default is a nop
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

func newDocument(root *html.Node, ready bool, opts []Option) *Document {
	d := &Document{
		node:      node{n: root},
		ready:     ready,
		wrappers:  make(map[*html.Node]dom.Node),
		selectors: make(map[string]cascadia.SelectorGroup),
		log:       zap.NewNop(),
	}
	d.doc = d
	d.self = d
	d.wrappers[root] = d
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDocument creates an empty document with the usual html/head/body
// skeleton, in the not-yet-ready state. Call SetReady to fire the
// document-ready notification.
func NewDocument(opts ...Option) *Document {
	root, err := html.Parse(strings.NewReader(""))
	if err != nil {
		// An empty input cannot fail to parse.
		panic(err)
	}
	return newDocument(root, false, opts)
}

// Parse reads a complete HTML document. The result is already in the
// ready state.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return newDocument(root, true, opts), nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// adopt returns the interned wrapper for raw, creating one on first
// sight.
func (d *Document) adopt(raw *html.Node) dom.Node {
	if raw == nil {
		return nil
	}
	if w, ok := d.wrappers[raw]; ok {
		return w
	}

	var w dom.Node
	switch {
	case raw.Type == html.ElementNode && raw.Data == fragmentMarker:
		f := &Fragment{node{n: raw, doc: d}}
		f.self = f
		w = f
	case raw.Type == html.ElementNode:
		e := &Element{node: node{n: raw, doc: d}}
		e.self = e
		w = e
	case raw.Type == html.CommentNode:
		c := &Comment{node{n: raw, doc: d}}
		c.self = c
		w = c
	case raw.Type == html.DoctypeNode:
		t := &Doctype{node{n: raw, doc: d}}
		t.self = t
		w = t
	default:
		t := &Text{node{n: raw, doc: d}}
		t.self = t
		w = t
	}
	d.wrappers[raw] = w
	return w
}

// OwnerDocument of the document itself is nil.
func (d *Document) OwnerDocument() dom.Document { return nil }

// CreateElement creates a detached element. Tag names are normalized to
// lowercase.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	raw := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.adopt(raw).(dom.Element)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(s string) dom.Node {
	return d.adopt(&html.Node{Type: html.TextNode, Data: s})
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(s string) dom.Node {
	return d.adopt(&html.Node{Type: html.CommentNode, Data: s})
}

// CreateFragment creates an empty document fragment.
func (d *Document) CreateFragment() dom.Node {
	raw := &html.Node{Type: html.ElementNode, Data: fragmentMarker}
	return d.adopt(raw)
}

// CreateRange creates a range at the document's default position.
func (d *Document) CreateRange() dom.Range {
	return &Range{
		doc:   d,
		start: boundary{node: d, offset: 0},
		end:   boundary{node: d, offset: 0},
	}
}

// DocumentElement returns the root <html> element.
func (d *Document) DocumentElement() dom.Element {
	return d.findByAtom(atom.Html)
}

// Head returns the <head> element.
func (d *Document) Head() dom.Element {
	return d.findByAtom(atom.Head)
}

// Body returns the <body> element.
func (d *Document) Body() dom.Element {
	return d.findByAtom(atom.Body)
}

func (d *Document) findByAtom(a atom.Atom) dom.Element {
	raw := findElement(d.n, a)
	if raw == nil {
		return nil
	}
	return d.adopt(raw).(dom.Element)
}

func findElement(raw *html.Node, a atom.Atom) *html.Node {
	if raw.Type == html.ElementNode && raw.DataAtom == a {
		return raw
	}
	for c := raw.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// QuerySelector returns the first element in the document matching
// selector, or nil.
func (d *Document) QuerySelector(selector string) (dom.Element, error) {
	return d.queryIn(d.n, selector)
}

// QuerySelectorAll returns a snapshot of all elements in the document
// matching selector, in document order.
func (d *Document) QuerySelectorAll(selector string) ([]dom.Element, error) {
	return d.queryAllIn(d.n, selector)
}

// IsReady reports whether the document has finished loading.
func (d *Document) IsReady() bool { return d.ready }

// SetReady marks the document loaded and fires the ready notification.
// Only the first call dispatches.
func (d *Document) SetReady() {
	if d.ready {
		return
	}
	d.ready = true
	ev := &baseEvent{typ: dom.ReadyEvent}
	d.DispatchEvent(ev)
}

// RequestFrame queues fn for the next frame.
func (d *Document) RequestFrame(fn func()) {
	d.frames = append(d.frames, fn)
}

// RenderFrame runs all callbacks queued so far. Callbacks that request
// further frames run on the next RenderFrame call.
func (d *Document) RenderFrame() {
	queued := d.frames
	d.frames = nil
	for _, fn := range queued {
		fn()
	}
}
