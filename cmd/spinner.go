package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

//nolint:gochecknoglobals // static lookup table
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a progress line on stderr with the elapsed seconds, for
// calls that can take a while.
type spinner struct {
	message string
	out     io.Writer
	started time.Time
	quit    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// startSpinner shows message with a spinner. With verbose logging on, or
// when stderr is not a terminal, the message is printed once and nil is
// returned.
func startSpinner(message string) (s *spinner) {
	if getVerbose() || !term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr, message)
		return s
	}

	s = &spinner{
		message: message,
		out:     os.Stderr,
		started: time.Now(),
		quit:    make(chan struct{}),
	}

	s.wg.Add(1)
	go s.run()
	return s
}

func (s *spinner) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		elapsed := time.Since(s.started).Truncate(time.Second)
		fmt.Fprintf(s.out, "\r\033[K%s %s %s", styleSuccess.Render(spinnerFrames[frame%len(spinnerFrames)]), s.message, styleSubtle.Render(elapsed.String()))

		select {
		case <-s.quit:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// stopSpinner clears the line. It is safe on a nil spinner and safe to call
// more than once.
func (s *spinner) stopSpinner() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
