// Package clipboard copies text to the system clipboard, falling back to
// the terminal's OSC 52 sequence when no system clipboard is reachable.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when neither the system clipboard nor the
// terminal accepted the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier tries Primary first and Fallback second.
type Copier struct {
	Primary  func(text string) error
	Fallback func(text string) error
}

// New returns a Copier using the platform clipboard and an OSC 52 sequence
// written to out.
func New(out io.Writer) *Copier {
	return &Copier{
		Primary:  systemWrite,
		Fallback: terminalWriter(out, os.Getenv),
	}
}

// Copy writes text to the clipboard. Both mechanisms are attempted before
// failure is reported; there is no retry.
func (c *Copier) Copy(text string) error {
	var errs []error
	for _, write := range []func(string) error{c.Primary, c.Fallback} {
		if write == nil {
			continue
		}
		err := write(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}

func systemWrite(text string) error {
	if clipboard.Unsupported {
		return errors.New("no system clipboard utility")
	}
	return clipboard.WriteAll(text)
}

// terminalWriter wraps the OSC 52 sequence for tmux or screen when the
// environment says we are inside one.
func terminalWriter(out io.Writer, getenv func(string) string) func(string) error {
	return func(text string) error {
		if out == nil {
			return errors.New("no terminal to write to")
		}
		seq := osc52.New(text)
		switch {
		case getenv("TMUX") != "":
			seq = seq.Tmux()
		case strings.HasPrefix(getenv("TERM"), "screen"):
			seq = seq.Screen()
		}
		_, err := seq.WriteTo(out)
		return err
	}
}
