package dom

import errs "github.com/bruntbrus/minidom/internal/errors"

// Query returns the first element in scope's subtree matching selector,
// or nil. A nil scope means the whole document.
func (d *DOM) Query(scope Node, selector string) (Element, error) {
	if scope == nil {
		scope = d.doc
	}
	q, ok := scope.(Queryer)
	if !ok {
		return nil, errs.New(errs.CodeQueryUnsupported)
	}
	return q.QuerySelector(selector)
}

// QueryAll returns a snapshot of all elements in scope's subtree
// matching selector, in document order. A nil scope means the whole
// document.
func (d *DOM) QueryAll(scope Node, selector string) ([]Element, error) {
	if scope == nil {
		scope = d.doc
	}
	q, ok := scope.(Queryer)
	if !ok {
		return nil, errs.New(errs.CodeQueryUnsupported)
	}
	return q.QuerySelectorAll(selector)
}

// Matches tests el against selector using the first matching capability
// found, probing Matcher then LegacyMatcher. Elements with neither
// capability yield an unsupported-operation error.
func (d *DOM) Matches(el Element, selector string) (bool, error) {
	if m, ok := el.(Matcher); ok {
		return m.Matches(selector)
	}
	if m, ok := el.(LegacyMatcher); ok {
		return m.MatchesSelector(selector)
	}
	return false, errs.New(errs.CodeMatchesUnsupported)
}

// Closest returns the nearest ancestor-or-self of el matching selector,
// or nil when the parent chain is exhausted. The element itself is
// tested first.
func (d *DOM) Closest(el Element, selector string) (Element, error) {
	if am, ok := el.(AncestorMatcher); ok {
		return am.Closest(selector)
	}

	for n := Node(el); n != nil; n = n.ParentNode() {
		e, ok := n.(Element)
		if !ok {
			break
		}
		matched, err := d.Matches(e, selector)
		if err != nil {
			return nil, err
		}
		if matched {
			return e, nil
		}
	}
	return nil, nil
}

// Each invokes fn once per element child of parent, in document order,
// over a snapshot taken before the first call. Non-element children are
// skipped.
func (d *DOM) Each(parent Node, fn func(child Element, index int)) {
	var kids []Element
	for _, n := range parent.ChildNodes() {
		if el, ok := n.(Element); ok && IsElement(el) {
			kids = append(kids, el)
		}
	}
	for i, el := range kids {
		fn(el, i)
	}
}
