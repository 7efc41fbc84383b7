// Package htmldom is the default substrate for the dom facade, backed by
// golang.org/x/net/html trees with cascadia selector matching.
//
// Wrapper handles are interned per document, so two lookups of the same
// underlying node return the same dom.Node and handle comparison works.
// Fragments are synthetic container nodes; appending a fragment moves its
// children, matching platform semantics.
//
// The substrate implements the full capability surface the facade can
// probe: class lists, datasets, selector matching and queries, positional
// markup insertion, contextual fragment parsing, both modern and legacy
// event construction, readiness notification, and a caller-pumped frame
// queue. Tests that need a capability gap strip it with domtest wrappers.
//
// Documents are confined to a single goroutine.
package htmldom
