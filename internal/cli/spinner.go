package cli

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner shows progress on stdout while the model call is in flight.
// It is silent when stdout is not a terminal.
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	active  bool
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *spinner) Start() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	s.active = true

	go func() {
		defer close(s.done)
		i := 0
		for {
			select {
			case <-s.stop:
				fmt.Print("\r\033[K")
				return
			default:
				fmt.Printf("\r  %s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
				i++
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

func (s *spinner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	close(s.stop)
	<-s.done
}
