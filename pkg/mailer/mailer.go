package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/pkg/recipients"
	"github.com/dmitrymomot/dispatch/pkg/sanitizer"
	"github.com/dmitrymomot/dispatch/pkg/storage"
)

// FallbackText is the plain-text part used when nothing readable can be
// derived from the HTML body.
const FallbackText = "Please view this email in an HTML compatible client."

// AssetLoader resolves the image and document references. *storage.Loader
// implements it.
type AssetLoader interface {
	Load(ctx context.Context, ref string) (*storage.Asset, error)
}

// Mailer builds one personalized message per recipient and hands it to a Sender.
type Mailer struct {
	sender       Sender
	renderer     *Renderer
	assets       AssetLoader
	config       Config
	logger       *slog.Logger
	newContentID func() string
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger for delivery records. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithContentIDGenerator replaces the random content-id source.
func WithContentIDGenerator(fn func() string) Option {
	return func(m *Mailer) {
		if fn != nil {
			m.newContentID = fn
		}
	}
}

// New creates a new Mailer with the given transport, renderer and asset loader.
func New(sender Sender, renderer *Renderer, assets AssetLoader, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender:       sender,
		renderer:     renderer,
		assets:       assets,
		config:       cfg,
		logger:       slog.Default(),
		newContentID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the content settings the mailer was built with.
func (m *Mailer) Config() Config {
	return m.config
}

// Renderer returns the renderer used for HTML bodies.
func (m *Mailer) Renderer() *Renderer {
	return m.renderer
}

// Build assembles the message for one recipient without sending it.
// Subject resolution: subject argument > fragment front matter > config.
// An empty from falls back to the configured sender.
func (m *Mailer) Build(ctx context.Context, r recipients.Recipient, subject, from string) (*Email, error) {
	if r.Email == "" {
		return nil, ErrNoRecipient
	}

	image, err := m.assets.Load(ctx, m.config.ImageRef)
	if err != nil {
		return nil, fmt.Errorf("%w: image: %w", ErrAssetLoad, err)
	}

	// The HTML refers to the image by content id, so the id exists first.
	cid := m.newContentID()
	attachments := []Attachment{{
		Filename:    image.Name,
		ContentType: image.ContentType,
		ContentID:   cid,
		Content:     image.Data,
		Inline:      true,
	}}

	page, err := m.renderer.RenderPage(r.FirstName, m.config.FragmentPath, "cid:"+cid, m.config.DocLink)
	if err != nil {
		return nil, err
	}
	if page.HTML == "" {
		return nil, ErrNoContent
	}

	if m.config.DocumentRef != "" {
		doc, err := m.assets.Load(ctx, m.config.DocumentRef)
		if err != nil {
			return nil, fmt.Errorf("%w: document: %w", ErrAssetLoad, err)
		}
		attachments = append(attachments, Attachment{
			Filename:    doc.Name,
			ContentType: doc.ContentType,
			Content:     doc.Data,
		})
	}

	subject = firstNonEmpty(subject, page.Subject, m.config.Subject)
	if subject == "" {
		return nil, ErrNoSubject
	}

	text := sanitizer.PlainText(page.HTML)
	if text == "" {
		text = FallbackText
	}

	return &Email{
		To:          []string{r.Email},
		From:        firstNonEmpty(from, m.config.Sender()),
		Subject:     subject,
		HTML:        page.HTML,
		Text:        text,
		Attachments: attachments,
	}, nil
}

// Send builds and delivers the message for one recipient. It never returns an
// error: build and transport failures are reported through the SendResult so
// one bad recipient cannot stop a broadcast.
func (m *Mailer) Send(ctx context.Context, r recipients.Recipient, subject, from string) SendResult {
	email, err := m.Build(ctx, r, subject, from)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to build email",
			slog.String("email", r.Email),
			slog.Any("error", err),
		)
		return failed(r, err)
	}

	if err := m.sender.Send(ctx, email); err != nil {
		err = fmt.Errorf("%w: %w", ErrSendFailed, err)
		m.logger.ErrorContext(ctx, "failed to send email",
			slog.String("email", r.Email),
			slog.Any("error", err),
		)
		return failed(r, err)
	}

	m.logger.InfoContext(ctx, "email sent",
		slog.String("email", r.Email),
		slog.String("subject", email.Subject),
	)
	return succeeded(r)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
