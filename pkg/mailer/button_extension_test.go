package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func convertMarkdown(t *testing.T, source string) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(NewButtonExtension()))

	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(source), &buf))
	return buf.String()
}

func TestButtonExtension_RendersButton(t *testing.T) {
	t.Parallel()

	out := convertMarkdown(t, `[!button|Read the letter](https://example.com/letter)`)

	require.Contains(t, out, `<a href="https://example.com/letter" style="`+buttonStyle+`">Read the letter</a>`)
}

func TestButtonExtension_EscapesHTML(t *testing.T) {
	t.Parallel()

	out := convertMarkdown(t, `[!button|<script>alert("xss")</script>](https://example.com)`)

	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestButtonExtension_WithMarkdownSurrounding(t *testing.T) {
	t.Parallel()

	out := convertMarkdown(t, "# News\n\nThe full letter is online:\n\n[!button|Open](https://example.com/doc)\n\nLove, us")

	require.Contains(t, out, "<h1>News</h1>")
	require.Contains(t, out, `<a href="https://example.com/doc"`)
	require.Contains(t, out, "<p>Love, us</p>")
}

func TestButtonExtension_RegularLinksUnaffected(t *testing.T) {
	t.Parallel()

	out := convertMarkdown(t, `[plain link](https://example.com)`)

	require.Contains(t, out, `<a href="https://example.com">plain link</a>`)
	require.NotContains(t, out, buttonStyle)
}

func TestButtonExtension_IncompleteSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"missing url", `[!button|Label]`},
		{"unclosed url", `[!button|Label](https://example.com`},
		{"unclosed label", `[!button|Label`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.NotContains(t, convertMarkdown(t, tt.source), buttonStyle)
		})
	}
}
