package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "matches unsupported",
			code:    CodeMatchesUnsupported,
			wantMsg: "Selector matching not supported",
			wantCat: CategoryCapability,
		},
		{
			name:    "bad selector",
			code:    CodeBadSelector,
			wantMsg: "Invalid selector",
			wantCat: CategorySelector,
		},
		{
			name:    "cli input",
			code:    CodeCLIInput,
			wantMsg: "Cannot read input document",
			wantCat: CategoryCLI,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryUsage, "node %q is not an element", "#text")
	if err.Message != `node "#text" is not an element` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryUsage {
		t.Errorf("Category = %q, want %q", err.Category, CategoryUsage)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *DOMError
		want string
	}{
		{
			name: "with code",
			err:  &DOMError{Code: "E001", Message: "Selector matching not supported"},
			want: "E001: Selector matching not supported",
		},
		{
			name: "without code",
			err:  &DOMError{Message: "boom"},
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("engine exploded")
	err := New(CodeBadSelector).Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is failed to find wrapped error")
	}
	var de *DOMError
	if !stderrors.As(err, &de) {
		t.Error("errors.As failed to find *DOMError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeCLIInput) != nil {
		t.Error("FromError(nil) should return nil")
	}

	plain := stderrors.New("no such file")
	err := FromError(plain, CodeCLIInput)
	if err.Code != CodeCLIInput {
		t.Errorf("Code = %q, want %q", err.Code, CodeCLIInput)
	}
	if err.Wrapped != plain {
		t.Error("Wrapped should hold the original error")
	}

	// An existing DOMError passes through untouched.
	if got := FromError(err, CodeBadMarkup); got != err {
		t.Error("FromError should not re-wrap a DOMError")
	}
}

func TestIsCode(t *testing.T) {
	err := New(CodeMatchesUnsupported)
	wrapped := New(CodeCLIInput).Wrap(err)

	if !Is(err, CodeMatchesUnsupported) {
		t.Error("Is should match a direct code")
	}
	if !Is(wrapped, CodeMatchesUnsupported) {
		t.Error("Is should match a wrapped code")
	}
	if Is(wrapped, CodeBadSelector) {
		t.Error("Is matched a code that is not in the chain")
	}
	if Is(nil, CodeCLIInput) {
		t.Error("Is(nil) should be false")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeMatchesUnsupported).
		WithSuggestion("switch to a substrate with selector support").
		WithExample(`ok, err := d.Matches(el, ".card")`)

	out := err.Format()
	for _, want := range []string{
		"ERROR E001",
		"Selector matching not supported",
		"Hint: switch to a substrate",
		`ok, err := d.Matches(el, ".card")`,
		"Learn more:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	for _, line := range lines {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(lines, " ") != "one two three four five" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText of empty string should be nil")
	}
}
