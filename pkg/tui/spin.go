package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
)

// ErrInterrupted is returned by Spin when the spinner stops before the action finished
var ErrInterrupted = errors.New("interrupted")

// stdoutIsTerminal reports whether a spinner can be drawn
var stdoutIsTerminal = func() bool { return isTerminal(os.Stdout) }

// Spin runs action behind a terminal spinner. Without a terminal on stdout the action runs directly.
// If the spinner is cancelled or fails before the action returns, Spin reports an error
// and the action's results must not be used.
func Spin(title string, action func()) error {
	if !stdoutIsTerminal() {
		action()
		return nil
	}

	done := make(chan struct{})
	err := spinner.New().
		Title(title).
		Action(func() {
			defer close(done)
			action()
		}).
		Run()

	return spinResult(err, done)
}

func spinResult(runErr error, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	default:
	}
	if runErr != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, runErr)
	}
	return ErrInterrupted
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
