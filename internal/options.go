package internal

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Settings holds the fixed values a run works with.
type Settings struct {
	From    string // formatted sender address; empty uses the mailer default
	Subject string // broadcast subject; empty defers to front matter, then config

	TestEmail   string
	TestName    string
	TestSubject string

	FragmentPath string
	ImageRef     string
	DocLink      string
	PreviewFile  string
	PreviewName  string

	Throttle time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithSettings sets the run settings.
func WithSettings(s Settings) Option {
	return func(c *Controller) {
		c.settings = s
	}
}

// WithInput sets where operator answers are read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *Controller) {
		if r != nil {
			c.in = newLineReader(r)
		}
	}
}

// WithOutput sets where operator messages are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Controller) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSleep replaces the pause between broadcast sends.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// WithRunID fixes the run identifier attached to log records.
func WithRunID(id string) Option {
	return func(c *Controller) {
		c.runID = id
	}
}
