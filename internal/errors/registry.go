package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// Well-known error codes.
const (
	CodeMatchesUnsupported = "E001"
	CodeQueryUnsupported   = "E002"
	CodeEventUnsupported   = "E003"
	CodeBadSelector        = "E010"
	CodeBadMarkup          = "E020"
	CodeBadEventInterface  = "E030"
	CodeCLIInput           = "E040"
	CodeCLIArgs            = "E041"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Capability Errors (E001-E009)
	// ============================================

	CodeMatchesUnsupported: {
		Category: CategoryCapability,
		Message:  "Selector matching not supported",
		Detail:   "The element's substrate exposes neither a Matches nor a MatchesSelector capability, so there is no way to test the element against a selector.",
		DocURL:   "https://github.com/bruntbrus/minidom#selector-matching",
	},
	CodeQueryUnsupported: {
		Category: CategoryCapability,
		Message:  "Selector queries not supported by this scope",
		Detail:   "The node used as a query scope does not expose a selector query capability. Use the document or an element from a substrate that supports queries.",
		DocURL:   "https://github.com/bruntbrus/minidom#queries",
	},
	CodeEventUnsupported: {
		Category: CategoryCapability,
		Message:  "Event construction not supported",
		Detail:   "The document exposes neither a modern event constructor nor a legacy create-then-init event factory.",
		DocURL:   "https://github.com/bruntbrus/minidom#events",
	},

	// ============================================
	// Selector Errors (E010-E019)
	// ============================================

	CodeBadSelector: {
		Category: CategorySelector,
		Message:  "Invalid selector",
		Detail:   "The selector string could not be parsed by the selector engine.",
		DocURL:   "https://github.com/bruntbrus/minidom#queries",
	},

	// ============================================
	// Markup Errors (E020-E029)
	// ============================================

	CodeBadMarkup: {
		Category: CategoryMarkup,
		Message:  "Markup parsing failed",
		Detail:   "The HTML string could not be parsed into a fragment in the current context.",
		DocURL:   "https://github.com/bruntbrus/minidom#fragments",
	},

	// ============================================
	// Event Errors (E030-E039)
	// ============================================

	CodeBadEventInterface: {
		Category: CategoryEvent,
		Message:  "Unknown legacy event interface",
		Detail:   "The legacy event factory was asked for an event interface it does not recognize.",
		DocURL:   "https://github.com/bruntbrus/minidom#events",
	},

	// ============================================
	// CLI Errors (E040-E049)
	// ============================================

	CodeCLIInput: {
		Category: CategoryCLI,
		Message:  "Cannot read input document",
		Detail:   "The HTML input could not be opened or parsed.",
		DocURL:   "https://github.com/bruntbrus/minidom#cli",
	},
	CodeCLIArgs: {
		Category: CategoryCLI,
		Message:  "Invalid command arguments",
		Detail:   "The command was invoked with missing or conflicting arguments.",
		DocURL:   "https://github.com/bruntbrus/minidom#cli",
	},
}

// Register adds a custom error template. Registering an existing code
// overwrites it.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
