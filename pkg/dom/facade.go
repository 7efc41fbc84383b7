package dom

// constructionPath records which event construction strategy a kind
// resolved to on first use.
type constructionPath uint8

const (
	pathUnprobed constructionPath = iota
	pathModern
	pathLegacy
)

// DOM is the utility facade over one substrate document. It holds the
// facade-owned scratch state (a reusable range and a reusable parsing
// sink element) and the capability strategies selected at construction.
//
// A DOM is not safe for concurrent use.
type DOM struct {
	doc Document

	// Lazily created, never invalidated. The scratch element is only
	// ever used as an HTML parsing sink and is drained after each use.
	cachedRange   Range
	cachedScratch Element

	class classOps
	data  dataOps

	eventPath map[string]constructionPath
}

// New constructs a facade for doc. Class and data strategies are probed
// once here rather than on every call. The probe prefers the document
// element so construction leaves no stray node behind; documents
// without a root fall back to a detached element, which the substrate
// may keep interned.
func New(doc Document) *DOM {
	d := &DOM{
		doc:       doc,
		eventPath: make(map[string]constructionPath),
	}

	probe := doc.DocumentElement()
	if probe == nil {
		probe = doc.CreateElement("div")
	}
	if cl, ok := probe.(ClassLister); ok && cl.ClassList() != nil {
		d.class = nativeClassOps{}
	} else {
		d.class = attrClassOps{}
	}
	if ds, ok := probe.(DatasetHaver); ok && ds.Dataset() != nil {
		d.data = nativeDataOps{}
	} else {
		d.data = attrDataOps{}
	}

	return d
}

// Document returns the substrate document this facade operates on.
func (d *DOM) Document() Document {
	return d.doc
}

// sharedRange returns the facade-owned range, creating it on first use.
func (d *DOM) sharedRange() Range {
	if d.cachedRange == nil {
		d.cachedRange = d.doc.CreateRange()
	}
	return d.cachedRange
}

// scratch returns the facade-owned parsing sink, creating it on first use.
func (d *DOM) scratch() Element {
	if d.cachedScratch == nil {
		d.cachedScratch = d.doc.CreateElement("div")
	}
	return d.cachedScratch
}
