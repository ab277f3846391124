package mailer

import "context"

// Sender defines the minimal interface that email transports must implement.
// It accepts a fully built Email and delivers it synchronously.
type Sender interface {
	// Send delivers an email message.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}

// NopSender accepts every message without delivering it. Used for dry runs.
type NopSender struct{}

func (NopSender) Send(context.Context, *Email) error {
	return nil
}
