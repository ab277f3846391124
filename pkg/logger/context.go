package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	runIDKey ctxKey = iota
	recipientKey
)

// WithRunID stores the identifier of the current dispatch run.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// WithRecipient stores the address currently being processed.
func WithRecipient(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, recipientKey, email)
}

// RunIDExtractor adds run_id to records logged with a context from WithRunID.
func RunIDExtractor() ContextExtractor {
	return stringExtractor(runIDKey, "run_id")
}

// RecipientExtractor adds recipient to records logged with a context from WithRecipient.
func RecipientExtractor() ContextExtractor {
	return stringExtractor(recipientKey, "recipient")
}

func stringExtractor(key ctxKey, attr string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			return slog.String(attr, v), true
		}
		return slog.Attr{}, false
	}
}
