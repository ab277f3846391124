package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

// Sender implements mailer.Sender over an SMTP relay. Each Send dials,
// delivers one message and disconnects.
type Sender struct {
	config Config
	opts   []mail.Option
}

// New creates a new SMTP sender.
func New(cfg Config) (*Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	auth, _ := cfg.authType()
	policy, _ := cfg.tlsPolicy()

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         cfg.Host,
			InsecureSkipVerify: cfg.TLSSkipVerify,
			MinVersion:         tls.VersionTLS12,
		}),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	// Without a username there is nothing to authenticate with.
	if username, password := cfg.Credentials(); username != "" && auth != mail.SMTPAuthNoAuth {
		opts = append(opts,
			mail.WithSMTPAuth(auth),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	return &Sender{config: cfg, opts: opts}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := BuildMessage(email)
	if err != nil {
		return err
	}

	if s.config.RawDumpPath != "" {
		if err := msg.WriteToFile(s.config.RawDumpPath); err != nil {
			return fmt.Errorf("smtp: failed to write raw message to %s: %w", s.config.RawDumpPath, err)
		}
	}

	client, err := mail.NewClient(s.config.Host, s.opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		if isConnectionError(err) {
			return fmt.Errorf("%w: %w (is the relay running and reachable at %s?)", ErrUnreachable, err, s.config.Addr())
		}
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	return nil
}

func isConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
