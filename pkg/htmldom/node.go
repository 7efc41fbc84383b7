package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/bruntbrus/minidom/pkg/dom"
)

// fragmentMarker is the Data value of synthetic fragment containers.
const fragmentMarker = "#fragment"

// node is the shared core of all wrapper types. self points back at the
// outer wrapper so the base can hand out properly typed handles.
type node struct {
	n    *html.Node
	doc  *Document
	self dom.Node

	listeners map[string][]listener
}

// hoster is implemented by all htmldom wrappers.
type hoster interface {
	HostNode() *html.Node
}

// HostNode returns the underlying tree node.
func (nd *node) HostNode() *html.Node { return nd.n }

func (nd *node) base() *node { return nd }

// Underlying unwraps a node handle to its *html.Node, following Unwrap
// chains of foreign wrapper types. Returns nil for handles from other
// substrates.
func Underlying(n dom.Node) *html.Node {
	for n != nil {
		if h, ok := n.(hoster); ok {
			return h.HostNode()
		}
		u, ok := n.(interface{ Unwrap() dom.Node })
		if !ok {
			return nil
		}
		n = u.Unwrap()
	}
	return nil
}

// SameNode reports whether two handles refer to the same underlying node.
func SameNode(a, b dom.Node) bool {
	ua := Underlying(a)
	return ua != nil && ua == Underlying(b)
}

func (nd *node) NodeType() int {
	switch nd.n.Type {
	case html.ElementNode:
		return dom.KindElement
	case html.TextNode, html.RawNode:
		return dom.KindText
	case html.CommentNode:
		return dom.KindComment
	case html.DocumentNode:
		return dom.KindDocument
	case html.DoctypeNode:
		return dom.KindDoctype
	}
	return 0
}

func (nd *node) NodeName() string {
	switch nd.n.Type {
	case html.ElementNode:
		return strings.ToUpper(nd.n.Data)
	case html.TextNode, html.RawNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return nd.n.Data
	}
	return ""
}

func (nd *node) OwnerDocument() dom.Document { return nd.doc }

func (nd *node) ParentNode() dom.Node {
	if nd.n.Parent == nil {
		return nil
	}
	return nd.doc.adopt(nd.n.Parent)
}

func (nd *node) FirstChild() dom.Node {
	if nd.n.FirstChild == nil {
		return nil
	}
	return nd.doc.adopt(nd.n.FirstChild)
}

func (nd *node) LastChild() dom.Node {
	if nd.n.LastChild == nil {
		return nil
	}
	return nd.doc.adopt(nd.n.LastChild)
}

func (nd *node) PrevSibling() dom.Node {
	if nd.n.PrevSibling == nil {
		return nil
	}
	return nd.doc.adopt(nd.n.PrevSibling)
}

func (nd *node) NextSibling() dom.Node {
	if nd.n.NextSibling == nil {
		return nil
	}
	return nd.doc.adopt(nd.n.NextSibling)
}

func (nd *node) ChildNodes() []dom.Node {
	var kids []dom.Node
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, nd.doc.adopt(c))
	}
	return kids
}

// detach unlinks raw from its parent, if any.
func detach(raw *html.Node) {
	if raw.Parent != nil {
		raw.Parent.RemoveChild(raw)
	}
}

func (nd *node) AppendChild(child dom.Node) {
	if dom.IsFragment(child) {
		moveFragmentChildren(child, func(raw *html.Node) {
			nd.n.AppendChild(raw)
		})
		return
	}
	raw := Underlying(child)
	if raw == nil {
		return
	}
	detach(raw)
	nd.n.AppendChild(raw)
}

func (nd *node) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		nd.AppendChild(child)
		return
	}
	refRaw := Underlying(ref)
	if refRaw == nil {
		return
	}
	if dom.IsFragment(child) {
		moveFragmentChildren(child, func(raw *html.Node) {
			nd.n.InsertBefore(raw, refRaw)
		})
		return
	}
	raw := Underlying(child)
	if raw == nil {
		return
	}
	detach(raw)
	nd.n.InsertBefore(raw, refRaw)
}

// moveFragmentChildren drains a fragment's children first-to-last,
// handing each detached node to insert.
func moveFragmentChildren(frag dom.Node, insert func(raw *html.Node)) {
	container := Underlying(frag)
	if container == nil {
		return
	}
	for c := container.FirstChild; c != nil; c = container.FirstChild {
		container.RemoveChild(c)
		insert(c)
	}
}

func (nd *node) RemoveChild(child dom.Node) {
	raw := Underlying(child)
	if raw == nil {
		return
	}
	nd.n.RemoveChild(raw)
}

func (nd *node) CloneNode(deep bool) dom.Node {
	return nd.doc.adopt(cloneRaw(nd.n, deep))
}

// cloneRaw copies a tree node without its parent or sibling links.
func cloneRaw(raw *html.Node, deep bool) *html.Node {
	clone := &html.Node{
		Type:      raw.Type,
		DataAtom:  raw.DataAtom,
		Data:      raw.Data,
		Namespace: raw.Namespace,
	}
	if len(raw.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(raw.Attr))
		copy(clone.Attr, raw.Attr)
	}
	if deep {
		for c := raw.FirstChild; c != nil; c = c.NextSibling {
			clone.AppendChild(cloneRaw(c, true))
		}
	}
	return clone
}

func (nd *node) TextContent() string {
	switch nd.n.Type {
	case html.TextNode, html.CommentNode, html.RawNode:
		return nd.n.Data
	}
	var b strings.Builder
	collectText(nd.n, &b)
	return b.String()
}

func collectText(raw *html.Node, b *strings.Builder) {
	for c := raw.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			continue
		}
		collectText(c, b)
	}
}

func (nd *node) SetTextContent(s string) {
	switch nd.n.Type {
	case html.TextNode, html.CommentNode, html.RawNode:
		nd.n.Data = s
		return
	}
	for c := nd.n.FirstChild; c != nil; c = nd.n.FirstChild {
		nd.n.RemoveChild(c)
	}
	if s != "" {
		nd.n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Text is a text node handle.
type Text struct{ node }

// Comment is a comment node handle.
type Comment struct{ node }

// Doctype is a doctype node handle.
type Doctype struct{ node }

// Fragment is a synthetic document fragment. Its children live in a
// detached container node; appending the fragment elsewhere moves them.
type Fragment struct{ node }

// NodeType identifies the handle as a fragment regardless of the
// container's underlying type.
func (f *Fragment) NodeType() int { return dom.KindFragment }

// NodeName returns the platform name for fragments.
func (f *Fragment) NodeName() string { return "#document-fragment" }

// CloneNode copies the fragment. The clone is a fresh fragment; a deep
// clone copies all children.
func (f *Fragment) CloneNode(deep bool) dom.Node {
	clone := f.doc.CreateFragment()
	if deep {
		container := Underlying(clone)
		for c := f.n.FirstChild; c != nil; c = c.NextSibling {
			container.AppendChild(cloneRaw(c, true))
		}
	}
	return clone
}
