package dom

// Append inserts child as the last child of parent. A string child is
// parsed as markup; a Node child is linked directly.
func (d *DOM) Append(parent Node, child any) {
	switch c := child.(type) {
	case string:
		d.insertMarkup(parent, PositionBeforeEnd, c)
	case Node:
		parent.AppendChild(c)
	}
}

// Prepend inserts child as the first child of parent, degrading to
// append when parent has no children.
func (d *DOM) Prepend(parent Node, child any) {
	switch c := child.(type) {
	case string:
		d.insertMarkup(parent, PositionAfterBegin, c)
	case Node:
		if first := parent.FirstChild(); first != nil {
			parent.InsertBefore(c, first)
		} else {
			parent.AppendChild(c)
		}
	}
}

// Before inserts child as the previous sibling of target. A no-op when
// target has no parent.
func (d *DOM) Before(target Node, child any) {
	switch c := child.(type) {
	case string:
		d.insertMarkup(target, PositionBeforeBegin, c)
	case Node:
		if parent := target.ParentNode(); parent != nil {
			parent.InsertBefore(c, target)
		}
	}
}

// After inserts child as the next sibling of target, degrading to
// append-to-parent when target is the last child. A no-op when target
// has no parent.
func (d *DOM) After(target Node, child any) {
	switch c := child.(type) {
	case string:
		d.insertMarkup(target, PositionAfterEnd, c)
	case Node:
		parent := target.ParentNode()
		if parent == nil {
			return
		}
		if next := target.NextSibling(); next != nil {
			parent.InsertBefore(c, next)
		} else {
			parent.AppendChild(c)
		}
	}
}

// insertMarkup inserts markup at pos relative to target, preferring the
// substrate's positional markup insertion and falling back to fragment
// parsing plus direct linking.
func (d *DOM) insertMarkup(target Node, pos Position, markup string) {
	if mi, ok := target.(MarkupInserter); ok {
		if err := mi.InsertAdjacentHTML(pos, markup); err == nil {
			return
		}
	}

	frag := d.Fragment(markup)
	switch pos {
	case PositionBeforeEnd:
		target.AppendChild(frag)
	case PositionAfterBegin:
		if first := target.FirstChild(); first != nil {
			target.InsertBefore(frag, first)
		} else {
			target.AppendChild(frag)
		}
	case PositionBeforeBegin:
		if parent := target.ParentNode(); parent != nil {
			parent.InsertBefore(frag, target)
		}
	case PositionAfterEnd:
		parent := target.ParentNode()
		if parent == nil {
			return
		}
		if next := target.NextSibling(); next != nil {
			parent.InsertBefore(frag, next)
		} else {
			parent.AppendChild(frag)
		}
	}
}

// Remove detaches n from its parent. A no-op, not an error, when n has
// no parent.
func (d *DOM) Remove(n Node) {
	if parent := n.ParentNode(); parent != nil {
		parent.RemoveChild(n)
	}
}

// Clear wipes all of el's descendants by clearing its text content.
// This drops non-text descendants too; the approximation is part of the
// documented behavior.
func (d *DOM) Clear(el Node) {
	el.SetTextContent("")
}

// Clone returns a copy of n, deep when requested.
func (d *DOM) Clone(n Node, deep bool) Node {
	return n.CloneNode(deep)
}
