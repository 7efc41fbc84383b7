package dom

import "strings"

// AddClass adds the given class names to el. Each name may itself be a
// space-separated list.
func (d *DOM) AddClass(el Element, names ...string) {
	if list := splitNames(names); len(list) > 0 {
		d.class.add(el, list)
	}
}

// RemoveClass removes the given class names from el.
func (d *DOM) RemoveClass(el Element, names ...string) {
	if list := splitNames(names); len(list) > 0 {
		d.class.remove(el, list)
	}
}

// ToggleClass flips membership of each given class name independently.
// Applying it twice restores the original class set.
func (d *DOM) ToggleClass(el Element, names ...string) {
	if list := splitNames(names); len(list) > 0 {
		d.class.toggle(el, list)
	}
}

// HasClass reports whether el has every one of the given class names.
func (d *DOM) HasClass(el Element, names ...string) bool {
	list := splitNames(names)
	if len(list) == 0 {
		return false
	}
	return d.class.has(el, list)
}

// splitNames normalizes space-separated strings into a flat name list.
func splitNames(names []string) []string {
	var out []string
	for _, name := range names {
		out = append(out, strings.Fields(name)...)
	}
	return out
}

// classOps is the class manipulation strategy, selected once when the
// facade is constructed.
type classOps interface {
	add(el Element, names []string)
	remove(el Element, names []string)
	toggle(el Element, names []string)
	has(el Element, names []string) bool
}

// nativeClassOps uses the substrate's class list. Elements without the
// capability fall through to attribute munging.
type nativeClassOps struct{}

func classListOf(el Element) ClassList {
	if cl, ok := el.(ClassLister); ok {
		return cl.ClassList()
	}
	return nil
}

func (nativeClassOps) add(el Element, names []string) {
	list := classListOf(el)
	if list == nil {
		attrClassOps{}.add(el, names)
		return
	}
	list.Add(names...)
}

func (nativeClassOps) remove(el Element, names []string) {
	list := classListOf(el)
	if list == nil {
		attrClassOps{}.remove(el, names)
		return
	}
	list.Remove(names...)
}

func (nativeClassOps) toggle(el Element, names []string) {
	list := classListOf(el)
	if list == nil {
		attrClassOps{}.toggle(el, names)
		return
	}
	for _, name := range names {
		list.Toggle(name)
	}
}

func (nativeClassOps) has(el Element, names []string) bool {
	list := classListOf(el)
	if list == nil {
		return attrClassOps{}.has(el, names)
	}
	for _, name := range names {
		if !list.Contains(name) {
			return false
		}
	}
	return true
}

// attrClassOps manipulates the raw class attribute: split on whitespace,
// dedupe by presence check, and write back only when something changed.
type attrClassOps struct{}

func readClasses(el Element) []string {
	raw, _ := el.GetAttribute("class")
	return strings.Fields(raw)
}

func writeClasses(el Element, classes []string) {
	el.SetAttribute("class", strings.Join(classes, " "))
}

func containsName(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

func (attrClassOps) add(el Element, names []string) {
	classes := readClasses(el)
	changed := false
	for _, name := range names {
		if !containsName(classes, name) {
			classes = append(classes, name)
			changed = true
		}
	}
	if changed {
		writeClasses(el, classes)
	}
}

func (attrClassOps) remove(el Element, names []string) {
	classes := readClasses(el)
	kept := classes[:0]
	for _, c := range classes {
		if !containsName(names, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(classes) {
		writeClasses(el, kept)
	}
}

func (attrClassOps) toggle(el Element, names []string) {
	classes := readClasses(el)
	for _, name := range names {
		if containsName(classes, name) {
			kept := classes[:0]
			for _, c := range classes {
				if c != name {
					kept = append(kept, c)
				}
			}
			classes = kept
		} else {
			classes = append(classes, name)
		}
	}
	writeClasses(el, classes)
}

func (attrClassOps) has(el Element, names []string) bool {
	classes := readClasses(el)
	for _, name := range names {
		if !containsName(classes, name) {
			return false
		}
	}
	return true
}
