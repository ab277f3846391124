package internal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/pkg/logger"
	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/recipients"
)

// Sender delivers one message and reports the outcome. *mailer.Mailer implements it.
type Sender interface {
	Send(ctx context.Context, r recipients.Recipient, subject, from string) mailer.SendResult
}

// Renderer produces the HTML document. *mailer.Renderer implements it.
type Renderer interface {
	Render(firstName, fragmentPath, imageRef, docLink string) (string, error)
}

// RecipientSource loads the broadcast list. *recipients.Reader implements it.
type RecipientSource interface {
	Read() ([]recipients.Recipient, error)
}

// Controller runs one of the three modes for the operator.
type Controller struct {
	sender   Sender
	renderer Renderer
	source   RecipientSource
	settings Settings

	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
	runID  string
}

// New creates a Controller.
func New(sender Sender, renderer Renderer, source RecipientSource, opts ...Option) *Controller {
	c := &Controller{
		sender:   sender,
		renderer: renderer,
		source:   source,
		in:       newLineReader(os.Stdin),
		out:      os.Stdout,
		logger:   logger.NewNope(),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.runID == "" {
		c.runID = uuid.NewString()
	}
	return c
}

// Settings returns the run settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Menu prints the mode menu, reads one answer and runs the chosen mode.
// An unknown answer prints "Invalid option." and returns nil.
func (c *Controller) Menu(ctx context.Context) error {
	c.println("--- Newsletter Manager ---")
	c.println("1. Generate local HTML file for review")
	if c.settings.TestEmail != "" {
		c.printf("2. Send test email to %s\n", c.settings.TestEmail)
	} else {
		c.println("2. Send test email")
	}
	c.println("3. Send to WHOLE list")
	c.printf("Choose an option (1-3): ")

	answer, _ := c.readLine()
	mode, err := ParseMode(answer)
	if err != nil {
		c.println("Invalid option.")
		return nil
	}
	return c.Run(ctx, mode)
}

// Run executes a single mode.
func (c *Controller) Run(ctx context.Context, mode Mode) error {
	ctx = logger.WithRunID(ctx, c.runID)
	c.logger.InfoContext(ctx, "run started", slog.String("mode", mode.String()))

	var err error
	switch mode {
	case ModePreview:
		_, err = c.Preview(ctx)
	case ModeTestSend:
		_, err = c.TestSend(ctx)
	case ModeBroadcast:
		_, err = c.Broadcast(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidChoice, mode)
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "run failed", slog.String("mode", mode.String()), slog.Any("error", err))
	}
	return err
}

// Preview renders the message for a placeholder name with the image loaded
// from its local path and writes it to the preview file. It returns the path
// written.
func (c *Controller) Preview(ctx context.Context) (string, error) {
	s := c.settings
	doc, err := c.renderer.Render(s.PreviewName, s.FragmentPath, s.ImageRef, s.DocLink)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(s.PreviewFile, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPreviewWrite, s.PreviewFile, err)
	}

	c.logger.InfoContext(ctx, "preview written", slog.String("path", s.PreviewFile))
	c.printf("Done! Open '%s' in your browser.\n", s.PreviewFile)
	return s.PreviewFile, nil
}

// TestSend sends one message to the configured test address.
func (c *Controller) TestSend(ctx context.Context) (mailer.SendResult, error) {
	s := c.settings
	if s.TestEmail == "" {
		return mailer.SendResult{}, ErrNoTestEmail
	}
	if s.From == "" {
		return mailer.SendResult{}, ErrNoSender
	}
	if err := c.checkFragment(); err != nil {
		return mailer.SendResult{}, err
	}

	c.printf("Sending test to %s...\n", s.TestEmail)

	r := recipients.Recipient{Email: s.TestEmail, FirstName: s.TestName}
	res := c.sender.Send(logger.WithRecipient(ctx, r.Email), r, s.TestSubject, s.From)
	c.reportResult(res)
	if errors.Is(res.Err, mailer.ErrFragmentRead) {
		return res, res.Err
	}
	return res, nil
}

// Broadcast asks for confirmation and sends to every recipient with an email
// address, pausing between sends. A failed recipient does not stop the loop,
// but an unreadable fragment does, before or during the run.
// Cancelling ctx stops the loop before the next recipient.
func (c *Controller) Broadcast(ctx context.Context) (Report, error) {
	if c.settings.From == "" {
		return Report{}, ErrNoSender
	}

	list, err := c.source.Read()
	if err != nil {
		return Report{}, err
	}
	if err := c.checkFragment(); err != nil {
		return Report{}, err
	}

	report := Report{Total: len(list)}

	c.printf("\nWARNING: You are about to send to %s people.\n", formatCount(len(list)))
	c.printf("Are you absolutely sure? (type '%s' to broadcast): ", ConfirmToken)

	answer, _ := c.readLine()
	if !Confirm(answer) {
		report.Cancelled = true
		c.println("Broadcast cancelled.")
		c.logger.InfoContext(ctx, "broadcast cancelled", slog.Int("recipients", len(list)))
		return report, nil
	}

	for _, r := range list {
		if err := ctx.Err(); err != nil {
			return report, c.interrupted(ctx, report, err)
		}

		if !r.Sendable() {
			report.Skipped++
			c.logger.WarnContext(ctx, "recipient skipped: no email address", slog.String("name", r.FullName()))
			continue
		}

		if report.Attempted > 0 {
			if err := c.sleep(ctx, c.settings.Throttle); err != nil {
				return report, c.interrupted(ctx, report, err)
			}
		}

		c.printf("Broadcasting to %s...\n", displayName(r))
		res := c.sender.Send(logger.WithRecipient(ctx, r.Email), r, c.settings.Subject, c.settings.From)
		report.record(res)
		c.reportResult(res)

		if errors.Is(res.Err, mailer.ErrFragmentRead) {
			c.println("Broadcast stopped.")
			c.println(report.Summary())
			c.logger.ErrorContext(ctx, "broadcast stopped: fragment unreadable",
				slog.Int("attempted", report.Attempted),
				slog.Int("total", report.Total),
			)
			return report, res.Err
		}
	}

	c.println("Broadcast complete.")
	c.println(report.Summary())
	c.logger.InfoContext(ctx, "broadcast complete",
		slog.Int("total", report.Total),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
	)
	return report, nil
}

// checkFragment renders once for the preview name so a missing fragment ends
// the run before anything is sent.
func (c *Controller) checkFragment() error {
	s := c.settings
	_, err := c.renderer.Render(s.PreviewName, s.FragmentPath, s.ImageRef, s.DocLink)
	if errors.Is(err, mailer.ErrFragmentRead) {
		return err
	}
	return nil
}

func (c *Controller) interrupted(ctx context.Context, report Report, err error) error {
	c.println("Broadcast interrupted.")
	c.println(report.Summary())
	c.logger.WarnContext(context.WithoutCancel(ctx), "broadcast interrupted",
		slog.Int("attempted", report.Attempted),
		slog.Int("total", report.Total),
	)
	return fmt.Errorf("broadcast interrupted: %w", err)
}

func (c *Controller) reportResult(res mailer.SendResult) {
	if res.OK() {
		c.printf("Email sent to %s.\n", displayName(res.Recipient))
		return
	}
	c.printf("Failed to send email to %s: %s\n", res.Recipient.Email, res.Reason)
}

func (c *Controller) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

func (c *Controller) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func displayName(r recipients.Recipient) string {
	if name := r.FullName(); name != "" {
		return name
	}
	return r.Email
}

func newLineReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
