package el

import (
	"fmt"

	"github.com/bruntbrus/minidom/pkg/dom"
)

// Blueprint is an inert description of a node: an element with
// attributes and children, a text node, or raw markup.
type Blueprint struct {
	Tag   string
	Text  string
	Raw   string
	Attrs []dom.Attr
	Kids  []*Blueprint
}

// Text creates a text blueprint.
func Text(content string) *Blueprint {
	return &Blueprint{Text: content}
}

// Textf creates a formatted text blueprint.
func Textf(format string, args ...any) *Blueprint {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped markup blueprint.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(markup string) *Blueprint {
	return &Blueprint{Raw: markup}
}

// newBlueprint creates an element blueprint from variadic arguments.
// Arguments can be: nil, dom.Attr, []dom.Attr, *Blueprint, []*Blueprint,
// or a string (shorthand for a text child).
func newBlueprint(tag string, args []any) *Blueprint {
	bp := &Blueprint{Tag: tag}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue
		case dom.Attr:
			if v.Key != "" {
				bp.Attrs = append(bp.Attrs, v)
			}
		case []dom.Attr:
			for _, a := range v {
				if a.Key != "" {
					bp.Attrs = append(bp.Attrs, a)
				}
			}
		case *Blueprint:
			if v != nil {
				bp.Kids = append(bp.Kids, v)
			}
		case []*Blueprint:
			for _, kid := range v {
				if kid != nil {
					bp.Kids = append(bp.Kids, kid)
				}
			}
		case string:
			bp.Kids = append(bp.Kids, Text(v))
		}
	}

	return bp
}

// If returns the blueprint if condition is true, nil otherwise.
func If(condition bool, bp *Blueprint) *Blueprint {
	if condition {
		return bp
	}
	return nil
}

// Map builds one blueprint per item.
func Map[T any](items []T, fn func(item T, index int) *Blueprint) []*Blueprint {
	out := make([]*Blueprint, 0, len(items))
	for i, item := range items {
		if bp := fn(item, i); bp != nil {
			out = append(out, bp)
		}
	}
	return out
}

// Build materializes bp into real nodes owned by d's document. Raw
// blueprints become fragments; void elements ignore children. A nil
// blueprint yields nil.
func Build(d *dom.DOM, bp *Blueprint) dom.Node {
	switch {
	case bp == nil:
		return nil
	case bp.Raw != "":
		return d.Fragment(bp.Raw)
	case bp.Tag == "":
		return d.Text(bp.Text)
	}

	node := d.Element(bp.Tag, bp.Attrs...)
	if IsVoidElement(bp.Tag) {
		return node
	}
	for _, kid := range bp.Kids {
		if child := Build(d, kid); child != nil {
			d.Append(node, child)
		}
	}
	return node
}
