package render

import (
	"io"
	"strings"
)

// Target is a live-updatable display region. Update replaces the whole
// displayed content with text-so-far; it never appends a diff. Close
// finalizes the region and must be called exactly once, on every exit
// path.
type Target interface {
	Update(content string)
	Close() error
}

// WriterTarget renders to a plain writer (non-TTY output, piped shells).
// A writer cannot take back bytes it already emitted, so it prints the new
// suffix when an update extends the previous content and falls back to
// reprinting on the rare update that rewrites earlier text (sanitization
// collapsing a fence that spanned two fragments).
type WriterTarget struct {
	w     io.Writer
	shown string
}

func NewWriterTarget(w io.Writer) *WriterTarget {
	return &WriterTarget{w: w}
}

func (t *WriterTarget) Update(content string) {
	if content == t.shown {
		return
	}
	if strings.HasPrefix(content, t.shown) {
		io.WriteString(t.w, content[len(t.shown):])
	} else {
		io.WriteString(t.w, "\n"+content)
	}
	t.shown = content
}

func (t *WriterTarget) Close() error {
	if t.shown != "" && !strings.HasSuffix(t.shown, "\n") {
		io.WriteString(t.w, "\n")
	}
	return nil
}
