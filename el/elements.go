package el

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Sectioning elements

// Header creates a header element blueprint.
func Header(args ...any) *Blueprint { return newBlueprint("header", args) }

// Footer creates a footer element blueprint.
func Footer(args ...any) *Blueprint { return newBlueprint("footer", args) }

// Main creates a main element blueprint.
func Main(args ...any) *Blueprint { return newBlueprint("main", args) }

// Nav creates a nav element blueprint.
func Nav(args ...any) *Blueprint { return newBlueprint("nav", args) }

// Section creates a section element blueprint.
func Section(args ...any) *Blueprint { return newBlueprint("section", args) }

// Article creates an article element blueprint.
func Article(args ...any) *Blueprint { return newBlueprint("article", args) }

// Aside creates an aside element blueprint.
func Aside(args ...any) *Blueprint { return newBlueprint("aside", args) }

// Headings

// H1 creates an h1 element blueprint.
func H1(args ...any) *Blueprint { return newBlueprint("h1", args) }

// H2 creates an h2 element blueprint.
func H2(args ...any) *Blueprint { return newBlueprint("h2", args) }

// H3 creates an h3 element blueprint.
func H3(args ...any) *Blueprint { return newBlueprint("h3", args) }

// H4 creates an h4 element blueprint.
func H4(args ...any) *Blueprint { return newBlueprint("h4", args) }

// H5 creates an h5 element blueprint.
func H5(args ...any) *Blueprint { return newBlueprint("h5", args) }

// H6 creates an h6 element blueprint.
func H6(args ...any) *Blueprint { return newBlueprint("h6", args) }

// Grouping elements

// Div creates a div element blueprint.
func Div(args ...any) *Blueprint { return newBlueprint("div", args) }

// P creates a p element blueprint.
func P(args ...any) *Blueprint { return newBlueprint("p", args) }

// Span creates a span element blueprint.
func Span(args ...any) *Blueprint { return newBlueprint("span", args) }

// Pre creates a pre element blueprint.
func Pre(args ...any) *Blueprint { return newBlueprint("pre", args) }

// Code creates a code element blueprint.
func Code(args ...any) *Blueprint { return newBlueprint("code", args) }

// Blockquote creates a blockquote element blueprint.
func Blockquote(args ...any) *Blueprint { return newBlueprint("blockquote", args) }

// Figure creates a figure element blueprint.
func Figure(args ...any) *Blueprint { return newBlueprint("figure", args) }

// Figcaption creates a figcaption element blueprint.
func Figcaption(args ...any) *Blueprint { return newBlueprint("figcaption", args) }

// Hr creates an hr element blueprint.
func Hr(args ...any) *Blueprint { return newBlueprint("hr", args) }

// Br creates a br element blueprint.
func Br(args ...any) *Blueprint { return newBlueprint("br", args) }

// Lists

// Ul creates a ul element blueprint.
func Ul(args ...any) *Blueprint { return newBlueprint("ul", args) }

// Ol creates an ol element blueprint.
func Ol(args ...any) *Blueprint { return newBlueprint("ol", args) }

// Li creates an li element blueprint.
func Li(args ...any) *Blueprint { return newBlueprint("li", args) }

// Dl creates a dl element blueprint.
func Dl(args ...any) *Blueprint { return newBlueprint("dl", args) }

// Dt creates a dt element blueprint.
func Dt(args ...any) *Blueprint { return newBlueprint("dt", args) }

// Dd creates a dd element blueprint.
func Dd(args ...any) *Blueprint { return newBlueprint("dd", args) }

// Inline elements

// A creates an anchor element blueprint.
func A(args ...any) *Blueprint { return newBlueprint("a", args) }

// Strong creates a strong element blueprint.
func Strong(args ...any) *Blueprint { return newBlueprint("strong", args) }

// Em creates an em element blueprint.
func Em(args ...any) *Blueprint { return newBlueprint("em", args) }

// Small creates a small element blueprint.
func Small(args ...any) *Blueprint { return newBlueprint("small", args) }

// Mark creates a mark element blueprint.
func Mark(args ...any) *Blueprint { return newBlueprint("mark", args) }

// Media elements

// Img creates an img element blueprint.
func Img(args ...any) *Blueprint { return newBlueprint("img", args) }

// Video creates a video element blueprint.
func Video(args ...any) *Blueprint { return newBlueprint("video", args) }

// Audio creates an audio element blueprint.
func Audio(args ...any) *Blueprint { return newBlueprint("audio", args) }

// Canvas creates a canvas element blueprint.
func Canvas(args ...any) *Blueprint { return newBlueprint("canvas", args) }

// Form elements

// Form creates a form element blueprint.
func Form(args ...any) *Blueprint { return newBlueprint("form", args) }

// Input creates an input element blueprint.
func Input(args ...any) *Blueprint { return newBlueprint("input", args) }

// Button creates a button element blueprint.
func Button(args ...any) *Blueprint { return newBlueprint("button", args) }

// Label creates a label element blueprint.
func Label(args ...any) *Blueprint { return newBlueprint("label", args) }

// Select creates a select element blueprint.
func Select(args ...any) *Blueprint { return newBlueprint("select", args) }

// Option creates an option element blueprint.
func Option(args ...any) *Blueprint { return newBlueprint("option", args) }

// Textarea creates a textarea element blueprint.
func Textarea(args ...any) *Blueprint { return newBlueprint("textarea", args) }

// Fieldset creates a fieldset element blueprint.
func Fieldset(args ...any) *Blueprint { return newBlueprint("fieldset", args) }

// Legend creates a legend element blueprint.
func Legend(args ...any) *Blueprint { return newBlueprint("legend", args) }

// Tables

// Table creates a table element blueprint.
func Table(args ...any) *Blueprint { return newBlueprint("table", args) }

// Thead creates a thead element blueprint.
func Thead(args ...any) *Blueprint { return newBlueprint("thead", args) }

// Tbody creates a tbody element blueprint.
func Tbody(args ...any) *Blueprint { return newBlueprint("tbody", args) }

// Tr creates a tr element blueprint.
func Tr(args ...any) *Blueprint { return newBlueprint("tr", args) }

// Td creates a td element blueprint.
func Td(args ...any) *Blueprint { return newBlueprint("td", args) }

// Th creates a th element blueprint.
func Th(args ...any) *Blueprint { return newBlueprint("th", args) }

// Template creates a template element blueprint.
func Template(args ...any) *Blueprint { return newBlueprint("template", args) }

// Custom creates a blueprint for an arbitrary tag.
func Custom(tag string, args ...any) *Blueprint { return newBlueprint(tag, args) }
