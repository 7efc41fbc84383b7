package dom

// Node is a handle to a tree node owned by the substrate. Mutators follow
// platform semantics: appending a node that already has a parent moves it,
// and appending a fragment moves the fragment's children.
type Node interface {
	NodeType() int
	NodeName() string
	OwnerDocument() Document

	ParentNode() Node
	FirstChild() Node
	LastChild() Node
	PrevSibling() Node
	NextSibling() Node
	ChildNodes() []Node

	AppendChild(child Node)
	InsertBefore(child, ref Node)
	RemoveChild(child Node)
	CloneNode(deep bool) Node

	TextContent() string
	SetTextContent(s string)
}

// Element is a node with attributes and markup accessors.
type Element interface {
	Node

	TagName() string
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	HasAttribute(name string) bool

	InnerHTML() string
	SetInnerHTML(markup string)
}

// Document is the root of a substrate tree and the factory for new nodes.
type Document interface {
	Node

	CreateElement(tag string) Element
	CreateTextNode(s string) Node
	CreateComment(s string) Node
	CreateFragment() Node
	CreateRange() Range

	DocumentElement() Element
}

// Range is a selection range over the tree.
type Range interface {
	StartContainer() Node
	StartOffset() int
	EndContainer() Node
	EndOffset() int
	Collapsed() bool

	SetStart(n Node, offset int)
	SetEnd(n Node, offset int)
	SelectNode(n Node)
	SelectNodeContents(n Node)
	Collapse(toStart bool)
}

// ClassList is a substrate-native view of an element's classes.
type ClassList interface {
	Add(names ...string)
	Remove(names ...string)
	Toggle(name string) bool
	Contains(name string) bool
}

// Dataset is a substrate-native view of an element's data-* attributes.
// Keys are camelCase, values are always strings.
type Dataset interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Position names an insertion point for markup relative to a node.
type Position string

const (
	PositionBeforeBegin Position = "beforebegin"
	PositionAfterBegin  Position = "afterbegin"
	PositionBeforeEnd   Position = "beforeend"
	PositionAfterEnd    Position = "afterend"
)

// Capability interfaces. The facade probes these at runtime; substrates
// implement whichever subset they can support natively.

// ClassLister exposes a native class list. A nil ClassList means the
// capability is absent and the facade falls back to attribute munging.
type ClassLister interface {
	ClassList() ClassList
}

// DatasetHaver exposes a native dataset. A nil Dataset means the
// capability is absent.
type DatasetHaver interface {
	Dataset() Dataset
}

// Matcher tests an element against a selector.
type Matcher interface {
	Matches(selector string) (bool, error)
}

// LegacyMatcher is the older name for selector matching, probed after
// Matcher.
type LegacyMatcher interface {
	MatchesSelector(selector string) (bool, error)
}

// AncestorMatcher finds the nearest ancestor-or-self matching a selector.
type AncestorMatcher interface {
	Closest(selector string) (Element, error)
}

// Queryer runs selector queries scoped to a node's subtree.
type Queryer interface {
	QuerySelector(selector string) (Element, error)
	QuerySelectorAll(selector string) ([]Element, error)
}

// MarkupInserter inserts parsed markup at a position relative to a node.
type MarkupInserter interface {
	InsertAdjacentHTML(pos Position, markup string) error
}

// TemplateElement exposes an element's inert content fragment, as
// template-like elements have. Content returns nil for ordinary elements.
type TemplateElement interface {
	Content() Node
}

// ContextualFragmenter parses markup into a fragment using the range's
// start container as parsing context.
type ContextualFragmenter interface {
	CreateContextualFragment(markup string) (Node, error)
}

// ReadyNotifier reports whether the document has finished loading.
type ReadyNotifier interface {
	IsReady() bool
}

// FrameScheduler registers a callback for the next repaint.
type FrameScheduler interface {
	RequestFrame(fn func())
}
