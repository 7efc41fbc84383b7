// Package domtest provides substrate wrappers with selectively stripped
// capabilities, so facade fallback paths can be exercised against the
// default htmldom substrate.
//
// Wrapping works by interface embedding: a wrapper struct embeds the
// substrate interface, which hides every capability method the substrate
// type carries beyond the interface, and the wrapper adds back only what
// the strip mask allows.
//
// Example:
//
//	doc := domtest.Wrap(htmldom.NewDocument(), domtest.StripClassList)
//	d := dom.New(doc)
//	// d now manipulates classes through raw attribute munging.
package domtest

import (
	"testing"

	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
	"github.com/bruntbrus/minidom/pkg/htmldom"
)

// Strip selects capabilities to hide from the facade.
type Strip uint

const (
	StripClassList Strip = 1 << iota
	StripDataset
	StripContextualFragment
	StripMarkupInsertion
	StripModernEvents
	StripLegacyEvents
	StripFrames
)

var errStripped = errs.Newf(errs.CategoryCapability, "capability stripped for testing")

// New creates a ready-to-use htmldom document and facade for a test.
func New(tb testing.TB) (*htmldom.Document, *dom.DOM) {
	tb.Helper()
	doc := htmldom.NewDocument()
	return doc, dom.New(doc)
}

// Wrap hides the selected capabilities of doc. The wrapped document
// still supports queries, events (unless stripped), readiness, and
// frame scheduling.
func Wrap(doc dom.Document, strip Strip) dom.Document {
	return &Doc{Document: doc, strip: strip}
}

// Doc is a capability-stripped document. The zero strip mask passes
// everything through.
type Doc struct {
	dom.Document
	strip Strip
}

// Unwrap exposes the wrapped document so substrate helpers can reach
// the underlying tree.
func (d *Doc) Unwrap() dom.Node { return d.Document }

// CreateElement wraps created elements so per-element capabilities are
// stripped consistently.
func (d *Doc) CreateElement(tag string) dom.Element {
	return &El{Element: d.Document.CreateElement(tag), strip: d.strip}
}

// DocumentElement wraps the root element so capability probes see the
// same stripped surface as created elements.
func (d *Doc) DocumentElement() dom.Element {
	root := d.Document.DocumentElement()
	if root == nil {
		return nil
	}
	return &El{Element: root, strip: d.strip}
}

// CreateRange drops the contextual-fragment capability when stripped.
func (d *Doc) CreateRange() dom.Range {
	r := d.Document.CreateRange()
	if d.strip&StripContextualFragment != 0 {
		return bareRange{r}
	}
	return r
}

// QuerySelector passes through to the wrapped document.
func (d *Doc) QuerySelector(selector string) (dom.Element, error) {
	if q, ok := d.Document.(dom.Queryer); ok {
		return q.QuerySelector(selector)
	}
	return nil, errStripped
}

// QuerySelectorAll passes through to the wrapped document.
func (d *Doc) QuerySelectorAll(selector string) ([]dom.Element, error) {
	if q, ok := d.Document.(dom.Queryer); ok {
		return q.QuerySelectorAll(selector)
	}
	return nil, errStripped
}

// ConstructEvent fails when modern construction is stripped, forcing
// the facade onto the legacy path.
func (d *Doc) ConstructEvent(ctor, name string, init dom.EventInit) (dom.Event, error) {
	if d.strip&StripModernEvents != 0 {
		return nil, errStripped
	}
	if ec, ok := d.Document.(dom.EventConstructor); ok {
		return ec.ConstructEvent(ctor, name, init)
	}
	return nil, errStripped
}

// CreateEvent fails when legacy construction is stripped.
func (d *Doc) CreateEvent(iface string) (dom.InitializableEvent, error) {
	if d.strip&StripLegacyEvents != 0 {
		return nil, errStripped
	}
	if lf, ok := d.Document.(dom.LegacyEventFactory); ok {
		return lf.CreateEvent(iface)
	}
	return nil, errStripped
}

// IsReady passes through to the wrapped document.
func (d *Doc) IsReady() bool {
	if rn, ok := d.Document.(dom.ReadyNotifier); ok {
		return rn.IsReady()
	}
	return false
}

// RequestFrame passes through unless frames are stripped.
func (d *Doc) RequestFrame(fn func()) {
	if d.strip&StripFrames != 0 {
		return
	}
	if fs, ok := d.Document.(dom.FrameScheduler); ok {
		fs.RequestFrame(fn)
	}
}

// AddEventListener passes through to the wrapped document.
func (d *Doc) AddEventListener(name string, fn dom.Listener) {
	if t, ok := d.Document.(dom.EventTarget); ok {
		t.AddEventListener(name, fn)
	}
}

// RemoveEventListener passes through to the wrapped document.
func (d *Doc) RemoveEventListener(name string, fn dom.Listener) {
	if t, ok := d.Document.(dom.EventTarget); ok {
		t.RemoveEventListener(name, fn)
	}
}

// DispatchEvent passes through to the wrapped document.
func (d *Doc) DispatchEvent(ev dom.Event) bool {
	if t, ok := d.Document.(dom.EventTarget); ok {
		return t.DispatchEvent(ev)
	}
	return true
}

// El is a capability-stripped element.
type El struct {
	dom.Element
	strip Strip
}

// Unwrap exposes the wrapped element.
func (e *El) Unwrap() dom.Node { return e.Element }

// ClassList returns nil when the class-list capability is stripped.
func (e *El) ClassList() dom.ClassList {
	if e.strip&StripClassList != 0 {
		return nil
	}
	if cl, ok := e.Element.(dom.ClassLister); ok {
		return cl.ClassList()
	}
	return nil
}

// Dataset returns nil when the dataset capability is stripped.
func (e *El) Dataset() dom.Dataset {
	if e.strip&StripDataset != 0 {
		return nil
	}
	if ds, ok := e.Element.(dom.DatasetHaver); ok {
		return ds.Dataset()
	}
	return nil
}

// InsertAdjacentHTML fails when markup insertion is stripped, forcing
// the facade onto the fragment fallback.
func (e *El) InsertAdjacentHTML(pos dom.Position, markup string) error {
	if e.strip&StripMarkupInsertion != 0 {
		return errStripped
	}
	if mi, ok := e.Element.(dom.MarkupInserter); ok {
		return mi.InsertAdjacentHTML(pos, markup)
	}
	return errStripped
}

// Matches passes through to the wrapped element.
func (e *El) Matches(selector string) (bool, error) {
	if m, ok := e.Element.(dom.Matcher); ok {
		return m.Matches(selector)
	}
	return false, errStripped
}

// QuerySelector passes through to the wrapped element.
func (e *El) QuerySelector(selector string) (dom.Element, error) {
	if q, ok := e.Element.(dom.Queryer); ok {
		return q.QuerySelector(selector)
	}
	return nil, errStripped
}

// QuerySelectorAll passes through to the wrapped element.
func (e *El) QuerySelectorAll(selector string) ([]dom.Element, error) {
	if q, ok := e.Element.(dom.Queryer); ok {
		return q.QuerySelectorAll(selector)
	}
	return nil, errStripped
}

// AddEventListener passes through to the wrapped element.
func (e *El) AddEventListener(name string, fn dom.Listener) {
	if t, ok := e.Element.(dom.EventTarget); ok {
		t.AddEventListener(name, fn)
	}
}

// RemoveEventListener passes through to the wrapped element.
func (e *El) RemoveEventListener(name string, fn dom.Listener) {
	if t, ok := e.Element.(dom.EventTarget); ok {
		t.RemoveEventListener(name, fn)
	}
}

// DispatchEvent passes through to the wrapped element.
func (e *El) DispatchEvent(ev dom.Event) bool {
	if t, ok := e.Element.(dom.EventTarget); ok {
		return t.DispatchEvent(ev)
	}
	return true
}

// bareRange hides the contextual-fragment capability of a range.
type bareRange struct {
	dom.Range
}

// BareElement hides every capability of el beyond the core Element
// surface, including selector matching.
func BareElement(el dom.Element) dom.Element {
	return &bare{Element: el}
}

type bare struct {
	dom.Element
}

func (e *bare) Unwrap() dom.Node { return e.Element }

// LegacyMatchElement exposes selector matching only under the legacy
// MatchesSelector name.
func LegacyMatchElement(el dom.Element) dom.Element {
	return &legacyMatch{Element: el}
}

type legacyMatch struct {
	dom.Element
}

func (e *legacyMatch) Unwrap() dom.Node { return e.Element }

// MatchesSelector delegates to the wrapped element's modern capability.
func (e *legacyMatch) MatchesSelector(selector string) (bool, error) {
	if m, ok := e.Element.(dom.Matcher); ok {
		return m.Matches(selector)
	}
	return false, errStripped
}

// WalkElement keeps selector matching but hides the native Closest
// capability, forcing the facade to walk the parent chain itself.
func WalkElement(el dom.Element) dom.Element {
	return &walk{Element: el}
}

type walk struct {
	dom.Element
}

func (e *walk) Unwrap() dom.Node { return e.Element }

// Matches passes through to the wrapped element.
func (e *walk) Matches(selector string) (bool, error) {
	if m, ok := e.Element.(dom.Matcher); ok {
		return m.Matches(selector)
	}
	return false, errStripped
}
