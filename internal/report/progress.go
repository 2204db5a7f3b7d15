package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

// Progress draws a single-line progress bar, redrawn in place. It is safe
// for concurrent use.
type Progress struct {
	mu   sync.Mutex
	w    io.Writer
	bar  progress.Model
	last int // last drawn percentage, -1 before the first draw
}

// NewProgress creates a progress bar writing to w.
func NewProgress(w io.Writer, width int) *Progress {
	return &Progress{
		w:    w,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage()),
		last: -1,
	}
}

// Update redraws the bar when the whole-percent value changes.
func (p *Progress) Update(done, total int) {
	if total <= 0 {
		return
	}
	pct := done * 100 / total

	p.mu.Lock()
	defer p.mu.Unlock()
	if pct <= p.last {
		return
	}
	p.last = pct
	fmt.Fprintf(p.w, "\r%s %3d%% %d/%d", p.bar.ViewAs(float64(done)/float64(total)), pct, done, total)
}

// Done ends the progress line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last >= 0 {
		fmt.Fprintln(p.w)
	}
}
