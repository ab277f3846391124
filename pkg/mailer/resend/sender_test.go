package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/mailer/resend"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := resend.New(resend.Config{})
	require.ErrorIs(t, err, resend.ErrMissingAPIKey)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	t.Cleanup(srv.Close)

	sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL + "/"}, resend.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = sender.Send(context.Background(), &mailer.Email{
		From:    "news@example.com",
		To:      []string{"amy@example.com"},
		Subject: "Winter letter",
		HTML:    `<img src="cid:123">`,
		Text:    "Hi Amy,",
		Attachments: []mailer.Attachment{
			{Filename: "header_photo.jpg", ContentType: "image/jpeg", ContentID: "123", Content: []byte("jpeg"), Inline: true},
			{Filename: "letter.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "news@example.com", got["from"])
	require.Equal(t, "Winter letter", got["subject"])
	require.Equal(t, []any{"amy@example.com"}, got["to"])

	attachments, ok := got["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 2)
	assert.Equal(t, "header_photo.jpg", attachments[0].(map[string]any)["filename"])
	assert.Equal(t, "letter.pdf", attachments[1].(map[string]any)["filename"])
}

func TestSender_Send_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	}))
	t.Cleanup(srv.Close)

	sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	err = sender.Send(context.Background(), &mailer.Email{
		From:    "bad",
		To:      []string{"amy@example.com"},
		Subject: "x",
		HTML:    "<p>x</p>",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "resend: failed to send email")
}
