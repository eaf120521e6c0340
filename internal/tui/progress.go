package tui

import (
	"fmt"
	"io"
	"sync"
)

// clearLine returns the cursor to column zero and erases the line.
const clearLine = "\r\x1b[K"

// ProgressLine displays a stream of progress lines. On a terminal each line
// overwrites the previous one; otherwise every line is printed on its own.
type ProgressLine struct {
	mu      sync.Mutex
	w       io.Writer
	inPlace bool
	dirty   bool
	styles  *OutputStyles
}

// NewProgressLine creates a ProgressLine writing to w. inPlace should be true
// only when w is a terminal.
func NewProgressLine(w io.Writer, inPlace bool) *ProgressLine {
	return &ProgressLine{
		w:       w,
		inPlace: inPlace,
		styles:  NewOutputStyles(),
	}
}

// Update shows line. It is safe to call from the goroutine draining a
// child's stderr while another goroutine calls Done.
func (p *ProgressLine) Update(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.inPlace {
		_, _ = fmt.Fprintln(p.w, line)
		return
	}
	_, _ = fmt.Fprint(p.w, clearLine+p.styles.Dim.Render(line))
	p.dirty = true
}

// Done terminates an in-place line so that later output starts on a fresh line.
func (p *ProgressLine) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dirty {
		_, _ = fmt.Fprintln(p.w)
		p.dirty = false
	}
}
