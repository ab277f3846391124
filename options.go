package dispatch

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dispatch/internal"
)

type options struct {
	logger   *slog.Logger
	subject  string
	dryRun   bool
	internal []internal.Option
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger for the controller and the mailer.
// If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSubject overrides the broadcast subject. Without it the fragment's
// front matter Subject is used, then NEWSLETTER_SUBJECT.
func WithSubject(subject string) Option {
	return func(o *options) {
		o.subject = subject
	}
}

// WithDryRun builds every message but hands it to a transport that discards it.
func WithDryRun(enabled bool) Option {
	return func(o *options) {
		o.dryRun = enabled
	}
}

// WithInput sets where operator answers are read from.
// Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.internal = append(o.internal, internal.WithInput(r))
	}
}

// WithOutput sets where operator messages are written.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.internal = append(o.internal, internal.WithOutput(w))
	}
}

// WithSleep replaces the pause between broadcast sends.
// Useful for testing.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(o *options) {
		o.internal = append(o.internal, internal.WithSleep(fn))
	}
}
