package el

import (
	"strings"

	"github.com/bruntbrus/minidom/pkg/dom"
)

func attr(key string, value any) dom.Attr {
	return dom.Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) dom.Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple names with spaces.
func Class(classes ...string) dom.Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) dom.Attr { return attr("style", style) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) dom.Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) dom.Attr { return attr("lang", lang) }

// Role sets the role attribute.
func Role(role string) dom.Attr { return attr("role", role) }

// TabIndex sets the tabindex attribute.
func TabIndex(i int) dom.Attr { return attr("tabindex", i) }

// Hidden sets the hidden attribute.
func Hidden() dom.Attr { return attr("hidden", "") }

// Data sets a data-* attribute using the camelCase dataset key.
func Data(key string, value any) dom.Attr {
	return attr(dom.DataAttrName(key), value)
}

// Attribute sets an arbitrary attribute.
func Attribute(key string, value any) dom.Attr { return attr(key, value) }

// Href sets the href attribute.
func Href(href string) dom.Attr { return attr("href", href) }

// Target sets the target attribute.
func Target(target string) dom.Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) dom.Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(src string) dom.Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) dom.Attr { return attr("alt", alt) }

// Width sets the width attribute.
func Width(w int) dom.Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) dom.Attr { return attr("height", h) }

// Type sets the type attribute.
func Type(t string) dom.Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) dom.Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) dom.Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) dom.Attr { return attr("placeholder", p) }

// Required sets the required attribute.
func Required() dom.Attr { return attr("required", "") }

// Disabled sets the disabled attribute.
func Disabled() dom.Attr { return attr("disabled", "") }

// Checked sets the checked attribute.
func Checked() dom.Attr { return attr("checked", "") }

// For sets the for attribute.
func For(id string) dom.Attr { return attr("for", id) }

// Action sets the action attribute.
func Action(action string) dom.Attr { return attr("action", action) }

// Method sets the method attribute.
func Method(method string) dom.Attr { return attr("method", method) }

// InnerText sets the element's text content after attributes apply.
func InnerText(text string) dom.Attr { return attr(dom.TextKey, text) }

// InnerHTML sets the element's markup content after attributes apply.
func InnerHTML(markup string) dom.Attr { return attr(dom.HTMLKey, markup) }
