package dom

import (
	"fmt"
	"strings"
	"unicode"
)

// SetData stores a data value on el under a camelCase key. Values are
// always stringified.
func (d *DOM) SetData(el Element, key string, value any) {
	d.data.set(el, key, fmt.Sprint(value))
}

// GetData reads the data value stored under a camelCase key. The second
// result is false when the key is absent.
func (d *DOM) GetData(el Element, key string) (string, bool) {
	return d.data.get(el, key)
}

// dataOps is the data access strategy, selected once when the facade is
// constructed.
type dataOps interface {
	set(el Element, key, value string)
	get(el Element, key string) (string, bool)
}

// nativeDataOps uses the substrate's dataset. Elements without the
// capability fall through to attribute access.
type nativeDataOps struct{}

func datasetOf(el Element) Dataset {
	if ds, ok := el.(DatasetHaver); ok {
		return ds.Dataset()
	}
	return nil
}

func (nativeDataOps) set(el Element, key, value string) {
	set := datasetOf(el)
	if set == nil {
		attrDataOps{}.set(el, key, value)
		return
	}
	set.Set(key, value)
}

func (nativeDataOps) get(el Element, key string) (string, bool) {
	set := datasetOf(el)
	if set == nil {
		return attrDataOps{}.get(el, key)
	}
	return set.Get(key)
}

// attrDataOps reads and writes data-* attributes directly, translating
// camelCase keys to kebab-case attribute names.
type attrDataOps struct{}

func (attrDataOps) set(el Element, key, value string) {
	el.SetAttribute(DataAttrName(key), value)
}

func (attrDataOps) get(el Element, key string) (string, bool) {
	return el.GetAttribute(DataAttrName(key))
}

// DataAttrName converts a camelCase data key to its data-* attribute
// name: every uppercase letter is prefixed with a hyphen and lowercased.
func DataAttrName(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 8)
	b.WriteString("data-")
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
