// Package cli implements the framechart command-line interface.
//
// The commands turn TOML figure documents into rendered charts, preview
// them in the terminal, run the HTTP render service and manage the local
// cache. The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF or JSON output from a figure document
//   - layout: Print the fitted layout as JSON
//   - show: Preview a figure in the terminal
//   - new: Write a sample figure document
//   - serve: Run the HTTP render service
//   - cache: Manage the layout and artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports pipeline, cache and HTTP events. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger that stamps entries with a short wall-clock
// time such as "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

// progress reports how long a command took, e.g. "Wrote 2 file(s) (14ms)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress { return &progress{l, time.Now()} }

func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(fmt.Sprintf("%s (%s)", msg, elapsed))
}

type loggerKey struct{}

// withLogger attaches l to ctx. A nil ctx is treated as Background.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, falling back
// to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
