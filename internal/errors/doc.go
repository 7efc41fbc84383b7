// Package errors provides structured, actionable error messages for minidom.
//
// Each error has a unique code (e.g., "E001") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors are
// organized into categories:
//   - capability: a substrate is missing a probed capability
//   - selector: selector parsing or matching failed
//   - markup: HTML parsing failed
//   - event: event construction or initialization failed
//   - usage: the API was called with malformed input
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New(errors.CodeMatchesUnsupported).
//	    WithSuggestion("Use a substrate whose elements implement dom.Matcher")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Selector matching not supported
//	//
//	//   Hint: Use a substrate whose elements implement dom.Matcher
//	//
//	//   Learn more: https://github.com/bruntbrus/minidom#selector-matching
package errors
