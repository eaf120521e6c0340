package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdownWrap is the column at which rendered markdown is wrapped.
const markdownWrap = 80

//nolint:gochecknoglobals // cached renderer
var (
	markdownRenderer     *glamour.TermRenderer
	markdownRendererOnce sync.Once
)

// getMarkdownRenderer returns a cached glamour renderer, or nil when one
// could not be built.
func getMarkdownRenderer() *glamour.TermRenderer {
	markdownRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(markdownWrap),
		)
		if err == nil {
			markdownRenderer = r
		}
	})
	return markdownRenderer
}

// RenderMarkdown writes markdown to w, styled for the terminal when possible.
func RenderMarkdown(w io.Writer, markdown string) {
	if HasColorSupport() {
		if r := getMarkdownRenderer(); r != nil {
			if rendered, err := r.Render(markdown); err == nil {
				_, _ = io.WriteString(w, rendered)
				return
			}
		}
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(markdown, "\n"))
}
