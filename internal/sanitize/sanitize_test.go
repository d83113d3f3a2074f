package sanitize

import (
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "hello", want: "hello"},
		{name: "surrounding whitespace trimmed", input: "  hello  ", want: "hello"},
		{name: "bold tag stripped", input: "<b>Hi</b>", want: "Hi"},
		{name: "nested tags stripped", input: "<div><span>nested</span></div>", want: "nested"},
		{name: "script dropped entirely", input: "<script>alert(1)</script>", want: ""},
		{name: "only markup becomes empty", input: "<p></p>", want: ""},
		{name: "attributes removed with tag", input: `<a href="https://evil.example">link</a>`, want: "link"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
