// Package logger provides structured logging with context extraction and Sentry integration.
//
// It builds a log/slog logger for a command-line tool: human-readable text by
// default, JSON on request, written to stderr so it never interleaves with the
// operator-facing narration on stdout.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: slog.LevelInfo, Format: logger.FormatConsole},
//		logger.RunIDExtractor(), logger.RecipientExtractor())
//
//	ctx := logger.WithRunID(context.Background(), "01J...")
//	ctx = logger.WithRecipient(ctx, "amy@example.com")
//	log.InfoContext(ctx, "message delivered")
//	// time=... level=INFO msg="message delivered" run_id=01J... recipient=amy@example.com
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// RunIDExtractor and RecipientExtractor read the values stored by WithRunID and
// WithRecipient. Custom extractors can be passed alongside them.
//
// # Sentry Integration
//
// NewWithSentry fans records out to stderr and Sentry. Errors create Sentry
// issues; warnings are stored as logs. With an empty DSN it behaves exactly
// like New, so the same wiring works on a laptop without Sentry.
//
// Call Flush before the process exits so queued events are delivered.
package logger
