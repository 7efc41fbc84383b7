package htmldom

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
)

// boundary is one end of a range: an offset into a container's children.
type boundary struct {
	node   dom.Node
	offset int
}

// Range is a selection range over an htmldom tree.
type Range struct {
	doc   *Document
	start boundary
	end   boundary
}

func (r *Range) StartContainer() dom.Node { return r.start.node }
func (r *Range) StartOffset() int         { return r.start.offset }
func (r *Range) EndContainer() dom.Node   { return r.end.node }
func (r *Range) EndOffset() int           { return r.end.offset }

// Collapsed reports whether start and end are the same boundary point.
func (r *Range) Collapsed() bool {
	return r.start.node == r.end.node && r.start.offset == r.end.offset
}

// SetStart moves the start boundary.
func (r *Range) SetStart(n dom.Node, offset int) {
	r.start = boundary{node: n, offset: offset}
}

// SetEnd moves the end boundary.
func (r *Range) SetEnd(n dom.Node, offset int) {
	r.end = boundary{node: n, offset: offset}
}

// SelectNode makes the range span exactly n within its parent.
func (r *Range) SelectNode(n dom.Node) {
	parent := n.ParentNode()
	if parent == nil {
		r.SelectNodeContents(n)
		return
	}
	idx := childIndex(n)
	r.start = boundary{node: parent, offset: idx}
	r.end = boundary{node: parent, offset: idx + 1}
}

// SelectNodeContents makes the range span all of n's children.
func (r *Range) SelectNodeContents(n dom.Node) {
	r.start = boundary{node: n, offset: 0}
	r.end = boundary{node: n, offset: len(n.ChildNodes())}
}

// Collapse shrinks the range to one of its boundary points.
func (r *Range) Collapse(toStart bool) {
	if toStart {
		r.end = r.start
	} else {
		r.start = r.end
	}
}

// childIndex returns n's position among its parent's children.
func childIndex(n dom.Node) int {
	idx := 0
	for sib := n.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		idx++
	}
	return idx
}

// CreateContextualFragment parses markup into a fragment, using the
// range's start container as parsing context. Non-element containers
// fall back to the document body.
func (r *Range) CreateContextualFragment(markup string) (dom.Node, error) {
	context := Underlying(r.start.node)
	if context == nil || context.Type != html.ElementNode {
		if body := r.doc.Body(); body != nil {
			context = Underlying(body)
		}
	}
	if context == nil {
		return nil, errs.New(errs.CodeBadMarkup).
			WithDetail("no element context is available for parsing")
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		r.doc.log.Debug("contextual fragment parse failed", zap.Error(err))
		return nil, errs.New(errs.CodeBadMarkup).Wrap(err)
	}

	frag := r.doc.CreateFragment()
	container := Underlying(frag)
	for _, raw := range nodes {
		container.AppendChild(raw)
	}
	return frag, nil
}
