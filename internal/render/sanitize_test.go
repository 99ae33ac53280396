package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Hello world", "Hello world"},
		{"strips code fence", "```go\nfunc main() {}\n```", "go\nfunc main() {}\n"},
		{"strips markdown token", "Here is some markdown for you", "Here is some  for you"},
		{"strips fence language tag", "```markdown\n# Title\n```", "\n# Title\n"},
		{"fence split across text", "Hello ```wor```ld", "Hello world"},
		{"empty input", "", ""},
		{"single backticks survive", "use `go run`", "use `go run`"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello world",
		"```python\nprint('hi')\n```",
		"some markdown text with ``` fences",
		"",
		"``` ``` ```markdown",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
