// Package dom is a thin convenience layer over a document-object-model
// substrate: node-type checks, element creation and insertion, class-list
// manipulation, data-attribute access, selector matching, event binding
// and dispatch, and synthetic event construction.
//
// The tree itself is not implemented here. The substrate is supplied by
// the caller through the Document interface; htmldom provides the default
// implementation backed by golang.org/x/net/html. Optional behavior is
// modeled as capability interfaces (ClassLister, Matcher, EventConstructor
// and friends) that the facade probes at runtime, falling back to portable
// implementations when a capability is absent.
//
// # The Facade
//
// All stateful helpers hang off a DOM value constructed once per document:
//
//	doc := htmldom.NewDocument()
//	d := dom.New(doc)
//	card := d.Element("div", dom.Attr{Key: "class", Value: "card"})
//	d.Append(doc.Body(), card)
//
// The DOM value owns two lazily-created scratch objects, a reusable range
// and a reusable parsing sink element, used only by fragment parsing
// fallbacks. Neither is ever handed to callers.
//
// # Concurrency
//
// A DOM and its document are confined to a single goroutine. The scratch
// element is fully drained within each call, so reentrant calls from
// event listeners are safe.
package dom
