package render

import "strings"

// Sanitize strips every code-fence marker and every literal "markdown"
// token from text. This is a plain substring removal over the whole
// buffer: a legitimate in-content occurrence of either token is stripped
// too. Callers re-apply it to the full accumulated response on each
// fragment, which is safe because the removal is idempotent.
func Sanitize(text string) string {
	text = strings.ReplaceAll(text, "```", "")
	text = strings.ReplaceAll(text, "markdown", "")
	return text
}
