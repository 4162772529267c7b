// Package linear provides a line-oriented renderer for non-interactive terminals.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/orchay/internal/ui/output"
	"go.trai.ch/orchay/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with one line per event.
// Notifications go to stdout; session and batch lines go to stderr.
type Renderer struct {
	stdout  io.Writer
	stderr  io.Writer
	output  *termenv.Output
	verbose bool

	mu       sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

// NewRenderer creates a Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		done:   make(chan struct{}),
	}
}

// WithVerbose makes the renderer print a line for every processed batch.
func (r *Renderer) WithVerbose(verbose bool) *Renderer {
	r.verbose = verbose
	return r
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop releases Wait.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// Emit implements ports.EventSink.
func (r *Renderer) Emit(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := fmt.Sprintf("[%s]", n.EntityID)
	_, _ = fmt.Fprintf(r.stdout, "%s %s %s %s\n", stamp(n), prefix, domain.WBSChangedEvent, n.Path)
	return nil
}

// OnSessionStatus prints a line when the session goes up or down.
func (r *Renderer) OnSessionStatus(root string, alive bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if alive {
		symbol := r.output.String(style.Dot).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s watching %s\n", symbol, root)
		return
	}
	symbol := r.output.String(style.Circle).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s stopped watching %s\n", symbol, root)
}

// OnBatch prints failed batches, and every batch in verbose mode.
func (r *Renderer) OnBatch(summary domain.BatchSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if summary.Err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s batch of %d event(s) failed after %v: %v\n",
			symbol, summary.Size, summary.Duration.Round(time.Microsecond), summary.Err)
		return
	}
	if !r.verbose {
		return
	}
	line := fmt.Sprintf("batch of %d event(s), %d notification(s) in %v",
		summary.Size, summary.Emitted, summary.Duration.Round(time.Microsecond))
	_, _ = fmt.Fprintln(r.stderr, r.output.String(line).Faint().String())
}

func stamp(n domain.Notification) string {
	if t, err := n.Time(); err == nil {
		return t.Local().Format(time.TimeOnly)
	}
	return n.Timestamp
}
