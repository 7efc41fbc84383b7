package errors

import (
	"fmt"
	"os"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

// color wraps text in ANSI color codes if colors are enabled.
func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string    { return color(colorRed, text) }
func green(text string) string  { return color(colorGreen, text) }
func yellow(text string) string { return color(colorYellow, text) }
func cyan(text string) string   { return color(colorCyan, text) }
func white(text string) string  { return color(colorWhite, text) }
func gray(text string) string   { return color(colorGray, text) }
func bold(text string) string   { return color(colorBold, text) }

// Format returns a formatted error message for terminal display.
func (e *DOMError) Format() string {
	var b strings.Builder

	// Header line
	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(e.Code + ": ")))
	} else {
		b.WriteString(red(bold("ERROR: ")))
	}
	b.WriteString(white(bold(e.Message)))
	b.WriteString("\n")

	if e.Category != "" {
		b.WriteString(gray("  (" + string(e.Category) + ")"))
		b.WriteString("\n")
	}

	// Detail paragraph
	if e.Detail != "" {
		b.WriteString("\n")
		for _, line := range wrapText(e.Detail, 76) {
			b.WriteString("  " + line + "\n")
		}
	}

	// Wrapped error
	if e.Wrapped != nil {
		b.WriteString("\n")
		b.WriteString(gray("  caused by: " + e.Wrapped.Error()))
		b.WriteString("\n")
	}

	// Suggestion
	if e.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString(yellow("  Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n")
	}

	// Example code
	if e.Example != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(e.Example, "\n") {
			b.WriteString(green("    " + line))
			b.WriteString("\n")
		}
	}

	// Documentation link
	if e.DocURL != "" {
		b.WriteString("\n")
		b.WriteString(cyan("  Learn more: " + e.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// Print writes the formatted error to stderr.
func (e *DOMError) Print() {
	fmt.Fprint(os.Stderr, e.Format())
}

// wrapText breaks text into lines no longer than width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return lines
}
