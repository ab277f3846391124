package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/dispatch/internal"
	"github.com/dmitrymomot/dispatch/pkg/config"
	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/mailer/resend"
	"github.com/dmitrymomot/dispatch/pkg/mailer/smtp"
	"github.com/dmitrymomot/dispatch/pkg/recipients"
	"github.com/dmitrymomot/dispatch/pkg/storage"
)

// Type aliases - public API
type (
	// Controller runs one of the three modes for the operator.
	Controller = internal.Controller

	// Mode is what a run does.
	Mode = internal.Mode

	// Report aggregates the outcome of a broadcast.
	Report = internal.Report

	// Settings holds the fixed values a run works with.
	Settings = internal.Settings

	// Recipient is one addressee taken from the spreadsheet.
	Recipient = recipients.Recipient

	// SendResult describes one delivery attempt.
	SendResult = mailer.SendResult

	// Config is the complete runtime configuration.
	Config = config.Config
)

// Modes.
const (
	ModePreview   = internal.ModePreview
	ModeTestSend  = internal.ModeTestSend
	ModeBroadcast = internal.ModeBroadcast
)

// Errors
var (
	ErrInvalidChoice = internal.ErrInvalidChoice
	ErrNoTestEmail   = internal.ErrNoTestEmail
	ErrNoSender      = internal.ErrNoSender
	ErrFileRead      = recipients.ErrFileRead
	ErrFragmentRead  = mailer.ErrFragmentRead
	ErrSendFailed    = mailer.ErrSendFailed
)

// Helpers
var (
	// ParseMode converts "1".."3" or a mode name into a Mode.
	ParseMode = internal.ParseMode

	// Confirm reports whether an answer authorises a broadcast.
	Confirm = internal.Confirm

	// IsFileReadError reports whether err comes from reading the spreadsheet
	// or the message fragment.
	IsFileReadError = internal.IsFileReadError

	// LoadConfig reads .env and the process environment.
	LoadConfig = config.Load
)

// New wires a Controller from configuration: the asset loader, the transport
// selected by cfg.Transport, the renderer, the mailer and the spreadsheet reader.
func New(cfg *Config, opts ...Option) (*Controller, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	assets, err := newAssetLoader(cfg.Storage)
	if err != nil {
		return nil, err
	}

	sender, err := newSender(cfg, o.dryRun)
	if err != nil {
		return nil, err
	}

	renderer := mailer.NewRenderer(mailer.WithNameEscaping(cfg.Message.EscapeNames))
	m := mailer.New(sender, renderer, assets, cfg.Message, mailer.WithLogger(o.logger))

	settings := internal.Settings{
		From:         cfg.Message.Sender(),
		Subject:      o.subject,
		TestEmail:    cfg.Newsletter.TestEmail,
		TestName:     cfg.Newsletter.TestName,
		TestSubject:  cfg.Newsletter.TestSubject,
		FragmentPath: cfg.Message.FragmentPath,
		ImageRef:     cfg.Message.ImageRef,
		DocLink:      cfg.Message.DocLink,
		PreviewFile:  cfg.Newsletter.PreviewFile,
		PreviewName:  cfg.Newsletter.PreviewName,
		Throttle:     cfg.Newsletter.Throttle,
	}

	internalOpts := append([]internal.Option{
		internal.WithSettings(settings),
		internal.WithLogger(o.logger),
	}, o.internal...)

	return internal.New(m, renderer, recipients.NewReader(cfg.Newsletter.Recipients), internalOpts...), nil
}

func newAssetLoader(cfg storage.Config) (*storage.Loader, error) {
	if !cfg.Enabled() {
		return storage.NewLoader(), nil
	}

	s3, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("dispatch: %w", err)
	}
	return storage.NewLoader(storage.WithS3(s3), storage.WithMaxSize(cfg.MaxFileSize)), nil
}

func newSender(cfg *Config, dryRun bool) (mailer.Sender, error) {
	if dryRun {
		return mailer.NopSender{}, nil
	}

	switch cfg.Transport {
	case config.TransportResend:
		s, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.TransportSMTP, "":
		s, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", config.ErrInvalid, cfg.Transport)
	}
}
