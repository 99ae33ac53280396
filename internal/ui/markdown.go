package ui

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
)

// markdownRenderer returns a shared renderer with margins stripped so the
// answer hugs the left edge like plain output would.
func markdownRenderer() *glamour.TermRenderer {
	rendererOnce.Do(func() {
		style := styles.DraculaStyleConfig
		style.Document.Margin = uintPtr(0)
		style.Document.BlockPrefix = ""
		style.Document.BlockSuffix = ""
		style.CodeBlock.Margin = uintPtr(0)

		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(style),
			glamour.WithWordWrap(0),
		)
		if err != nil {
			return
		}
		renderer = r
	})
	return renderer
}

func uintPtr(v uint) *uint {
	return &v
}
