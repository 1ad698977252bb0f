package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status message on stderr while a render runs. It ends
// on Stop or when its context is cancelled, whichever comes first.
type Spinner struct {
	w      io.Writer
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	message string
	running bool

	startOnce sync.Once
	stopOnce  sync.Once
	exited    chan struct{}
}

func newSpinner(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       os.Stderr,
		ctx:     ctx,
		cancel:  cancel,
		message: message,
		exited:  make(chan struct{}),
	}
}

// Start begins the animation. Later calls, and calls after Stop, do nothing
// visible.
func (s *Spinner) Start() {
	s.startOnce.Do(func() {
		s.mu.Lock()
		s.running = true
		s.mu.Unlock()
		go s.spin()
	})
}

func (s *Spinner) spin() {
	defer close(s.exited)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			s.mu.Lock()
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(s.message))
			s.mu.Unlock()
		}
	}
}

// Update swaps the message shown next to the spinner.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(message) < len(s.message) {
		s.blank()
	}
	s.message = message
}

// Stop ends the animation and clears its line. It may be called any number
// of times, with or without a prior Start.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.mu.Lock()
		running := s.running
		s.mu.Unlock()
		if running {
			<-s.exited
		}
		s.clearLine()
	})
}

// StopWithSuccess stops the spinner and prints message as a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints message as an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner has ended, by Stop or by its
// context.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blank()
	fmt.Fprint(s.w, "\r")
}

// blank overwrites the current line; callers hold mu.
func (s *Spinner) blank() {
	fmt.Fprintf(s.w, "\r%s", strings.Repeat(" ", len(s.message)+4))
}
