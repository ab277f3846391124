package smtp

import (
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string `env:"SMTP_HOST" envDefault:"127.0.0.1"`
	Port     int    `env:"SMTP_PORT" envDefault:"1025"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`

	// Accepted when SMTP_USERNAME/SMTP_PASSWORD are unset.
	BridgeUsername string `env:"PROTON_BRIDGE_USER"`
	BridgePassword string `env:"PROTON_BRIDGE_PASS"`

	Auth          string        `env:"SMTP_AUTH" envDefault:"plain"`
	TLS           string        `env:"SMTP_TLS" envDefault:"opportunistic"`
	TLSSkipVerify bool          `env:"SMTP_TLS_SKIP_VERIFY" envDefault:"true"`
	Timeout       time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`

	// RawDumpPath, when set, receives a copy of every message before delivery.
	RawDumpPath string `env:"NEWSLETTER_RAW_DUMP"`
}

// Addr returns host:port.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Credentials returns the username and password, falling back to the
// bridge variables.
func (c Config) Credentials() (string, string) {
	username, password := c.Username, c.Password
	if username == "" {
		username = c.BridgeUsername
	}
	if password == "" {
		password = c.BridgePassword
	}
	return username, password
}

// Validate checks the relay address and parses the auth and TLS modes.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if _, err := c.authType(); err != nil {
		return err
	}
	if _, err := c.tlsPolicy(); err != nil {
		return err
	}
	return nil
}

func (c Config) authType() (mail.SMTPAuthType, error) {
	if c.Auth == "" {
		return mail.SMTPAuthPlain, nil
	}
	var auth mail.SMTPAuthType
	if err := auth.UnmarshalString(c.Auth); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch auth {
	case mail.SMTPAuthPlain, mail.SMTPAuthLogin, mail.SMTPAuthCramMD5, mail.SMTPAuthNoAuth:
		return auth, nil
	default:
		return "", fmt.Errorf("%w: unsupported SMTP auth: %s", ErrInvalidConfig, c.Auth)
	}
}

func (c Config) tlsPolicy() (mail.TLSPolicy, error) {
	switch strings.ToLower(c.TLS) {
	case "", "opportunistic", "starttls":
		return mail.TLSOpportunistic, nil
	case "mandatory", "required":
		return mail.TLSMandatory, nil
	case "none", "notls", "off":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("%w: unsupported TLS mode: %s", ErrInvalidConfig, c.TLS)
	}
}
