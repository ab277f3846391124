// Package config loads the dispatch configuration from the environment.
//
// A .env file in the working directory is read first when present; variables
// already set in the process environment win.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/dispatch/pkg/logger"
	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/mailer/resend"
	"github.com/dmitrymomot/dispatch/pkg/mailer/smtp"
	"github.com/dmitrymomot/dispatch/pkg/storage"
)

// Transports.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Transport string `env:"TRANSPORT" envDefault:"smtp"`

	Message    mailer.Config
	Newsletter Newsletter
	SMTP       smtp.Config
	Resend     resend.Config
	Storage    storage.Config
	Log        logger.Config
	Sentry     logger.SentryConfig
}

// Newsletter holds run settings for the three modes.
type Newsletter struct {
	Recipients  string        `env:"NEWSLETTER_RECIPIENTS" envDefault:"recipients.xlsx"`
	TestEmail   string        `env:"NEWSLETTER_TEST_EMAIL"`
	TestName    string        `env:"NEWSLETTER_TEST_NAME" envDefault:"Friend"`
	TestSubject string        `env:"NEWSLETTER_TEST_SUBJECT" envDefault:"TEST: Newsletter"`
	PreviewFile string        `env:"NEWSLETTER_PREVIEW_FILE" envDefault:"preview_full.html"`
	PreviewName string        `env:"NEWSLETTER_PREVIEW_NAME" envDefault:"TestName"`
	Throttle    time.Duration `env:"NEWSLETTER_THROTTLE" envDefault:"2s"`
}

// Load reads the optional .env files (default ".env") and parses the process
// environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse builds a Config from an explicit variable set instead of the process
// environment.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportSMTP:
		if err := c.SMTP.Validate(); err != nil {
			return err
		}
	case TransportResend:
		if c.Resend.APIKey == "" {
			return fmt.Errorf("%w: RESEND_API_KEY is required for the resend transport", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalid, c.Transport)
	}

	if c.Newsletter.Throttle < 0 {
		return fmt.Errorf("%w: NEWSLETTER_THROTTLE must not be negative", ErrInvalid)
	}
	if c.Log.Format != logger.FormatConsole && c.Log.Format != logger.FormatJSON {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
