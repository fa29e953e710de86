package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// withSpinner shows a spinner on w while fn runs. Nothing is drawn when
// stdout is not a terminal.
func withSpinner(w io.Writer, msg string, fn func() error) error {
	if !isTerminal(int(os.Stdout.Fd())) {
		return fn()
	}

	s := spinner.New(spinner.CharSets[33], 100*time.Millisecond, spinner.WithWriter(w))
	s.Prefix = msg + " "
	s.Start()
	defer s.Stop()

	return fn()
}
