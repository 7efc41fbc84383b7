package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryCapability Category = "capability"
	CategorySelector   Category = "selector"
	CategoryMarkup     Category = "markup"
	CategoryEvent      Category = "event"
	CategoryUsage      Category = "usage"
	CategoryCLI        Category = "cli"
)

// DOMError is a structured error with a code, suggestions, and documentation.
type DOMError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (capability, selector, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DOMError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DOMError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DOMError) WithSuggestion(s string) *DOMError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *DOMError) WithExample(ex string) *DOMError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *DOMError) WithDetail(d string) *DOMError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *DOMError) Wrap(err error) *DOMError {
	e.Wrapped = err
	return e
}

// New creates a DOMError from a registered error code.
func New(code string) *DOMError {
	template, ok := registry[code]
	if !ok {
		return &DOMError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DOMError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new DOMError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *DOMError {
	return &DOMError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a DOMError.
func FromError(err error, code string) *DOMError {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DOMError); ok {
		return de
	}
	return New(code).Wrap(err)
}

// Is reports whether err carries the given registered error code.
func Is(err error, code string) bool {
	for err != nil {
		if de, ok := err.(*DOMError); ok && de.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
