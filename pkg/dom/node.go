package dom

// Node kind tags, following the platform node-type enumeration.
const (
	KindElement     = 1
	KindAttribute   = 2
	KindText        = 3
	KindCDATA       = 4
	KindEntityRef   = 5
	KindEntity      = 6
	KindInstruction = 7
	KindComment     = 8
	KindDocument    = 9
	KindDoctype     = 10
	KindFragment    = 11
	KindNotation    = 12
)

// kindNames maps node kind tags to their canonical lowercase names.
// Index 0 is the empty string so out-of-range lookups and tag 0 agree.
var kindNames = [13]string{
	"",
	"element",
	"attribute",
	"text",
	"cdata",
	"entityref",
	"entity",
	"instruction",
	"comment",
	"document",
	"doctype",
	"fragment",
	"notation",
}

// GetType returns the canonical lowercase name for a node kind tag, or
// the empty string for tag 0 and tags outside [1,12].
func GetType(tag int) string {
	if tag < 0 || tag >= len(kindNames) {
		return ""
	}
	return kindNames[tag]
}

// TypeOf returns the canonical name of a node's kind.
func TypeOf(n Node) string {
	if n == nil {
		return ""
	}
	return GetType(n.NodeType())
}

// IsNode reports whether v is a non-nil value exposing a node kind tag
// within [1,12].
func IsNode(v any) bool {
	n, ok := v.(interface{ NodeType() int })
	if !ok {
		return false
	}
	t := n.NodeType()
	return t >= KindElement && t <= KindNotation
}

// IsElement reports whether n is an element node.
func IsElement(n Node) bool { return n != nil && n.NodeType() == KindElement }

// IsText reports whether n is a text node.
func IsText(n Node) bool { return n != nil && n.NodeType() == KindText }

// IsComment reports whether n is a comment node.
func IsComment(n Node) bool { return n != nil && n.NodeType() == KindComment }

// IsDocument reports whether n is a document node.
func IsDocument(n Node) bool { return n != nil && n.NodeType() == KindDocument }

// IsDoctype reports whether n is a doctype node.
func IsDoctype(n Node) bool { return n != nil && n.NodeType() == KindDoctype }

// IsFragment reports whether n is a document fragment.
func IsFragment(n Node) bool { return n != nil && n.NodeType() == KindFragment }
