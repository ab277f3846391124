package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/pkg/config"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{"NEWSLETTER_FROM": "news@example.com"})
	require.NoError(t, err)

	assert.Equal(t, config.TransportSMTP, cfg.Transport)
	assert.Equal(t, "news@example.com", cfg.Message.From)
	assert.Equal(t, "Newsletter", cfg.Message.Subject)
	assert.Equal(t, "message_fragment.html", cfg.Message.FragmentPath)
	assert.Equal(t, "header_photo.jpg", cfg.Message.ImageRef)
	assert.Equal(t, "letter.pdf", cfg.Message.DocumentRef)
	assert.False(t, cfg.Message.EscapeNames)

	assert.Equal(t, "recipients.xlsx", cfg.Newsletter.Recipients)
	assert.Equal(t, "TEST: Newsletter", cfg.Newsletter.TestSubject)
	assert.Equal(t, "Friend", cfg.Newsletter.TestName)
	assert.Equal(t, "preview_full.html", cfg.Newsletter.PreviewFile)
	assert.Equal(t, "TestName", cfg.Newsletter.PreviewName)
	assert.Equal(t, 2*time.Second, cfg.Newsletter.Throttle)

	assert.Equal(t, "127.0.0.1", cfg.SMTP.Host)
	assert.Equal(t, 1025, cfg.SMTP.Port)
	assert.Equal(t, "plain", cfg.SMTP.Auth)
	assert.Equal(t, "opportunistic", cfg.SMTP.TLS)
	assert.True(t, cfg.SMTP.TLSSkipVerify)
	assert.Equal(t, 15*time.Second, cfg.SMTP.Timeout)

	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Storage.Enabled())
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{
		"NEWSLETTER_FROM":         "news@example.com",
		"NEWSLETTER_THROTTLE":     "500ms",
		"NEWSLETTER_ESCAPE_NAMES": "true",
		"PROTON_BRIDGE_USER":      "bridge-user",
		"PROTON_BRIDGE_PASS":      "bridge-pass",
		"SMTP_PORT":               "587",
		"LOG_LEVEL":               "debug",
		"LOG_FORMAT":              "json",
	})
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Newsletter.Throttle)
	assert.True(t, cfg.Message.EscapeNames)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)

	user, pass := cfg.SMTP.Credentials()
	assert.Equal(t, "bridge-user", user)
	assert.Equal(t, "bridge-pass", pass)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"unknown transport", map[string]string{"NEWSLETTER_FROM": "a@example.com", "TRANSPORT": "pigeon"}},
		{"resend without key", map[string]string{"NEWSLETTER_FROM": "a@example.com", "TRANSPORT": "resend"}},
		{"bad smtp auth", map[string]string{"NEWSLETTER_FROM": "a@example.com", "SMTP_AUTH": "magic"}},
		{"negative throttle", map[string]string{"NEWSLETTER_FROM": "a@example.com", "NEWSLETTER_THROTTLE": "-1s"}},
		{"bad log format", map[string]string{"NEWSLETTER_FROM": "a@example.com", "LOG_FORMAT": "xml"}},
		{"bad port", map[string]string{"NEWSLETTER_FROM": "a@example.com", "SMTP_PORT": "smtp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse(tt.environ)
			require.Error(t, err)
		})
	}
}

func TestParse_WithoutSender(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, cfg.Message.From)
	assert.Empty(t, cfg.Message.Sender())
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NEWSLETTER_FROM=dotenv@example.com\nNEWSLETTER_TEST_EMAIL=me@example.com\n"), 0o600))

	t.Setenv("NEWSLETTER_FROM", "")
	require.NoError(t, os.Unsetenv("NEWSLETTER_FROM"))
	t.Setenv("NEWSLETTER_TEST_EMAIL", "")
	require.NoError(t, os.Unsetenv("NEWSLETTER_TEST_EMAIL"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dotenv@example.com", cfg.Message.From)
	assert.Equal(t, "me@example.com", cfg.Newsletter.TestEmail)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	t.Setenv("NEWSLETTER_FROM", "env@example.com")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", cfg.Message.From)
}
