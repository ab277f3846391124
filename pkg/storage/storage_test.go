package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseS3Ref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{ref: "s3://news/2025/photo.jpg", wantBucket: "news", wantKey: "2025/photo.jpg"},
		{ref: "s3:///photo.jpg", wantBucket: "", wantKey: "photo.jpg"},
		{ref: "s3://news", wantErr: true},
		{ref: "s3://news/", wantErr: true},
		{ref: "photo.jpg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			bucket, key, err := ParseS3Ref(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRef)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantBucket, bucket)
			require.Equal(t, tt.wantKey, key)
		})
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "photo.jpg", Name("s3://news/2025/photo.jpg"))
	require.Equal(t, "letter.pdf", Name("/srv/letters/letter.pdf"))
	require.Equal(t, "Contacts.xlsx", Name(`C:\Users\Mike\Contacts.xlsx`))
	require.Equal(t, "header.jpg", Name("header.jpg"))
}

func TestNew_RequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := New(Config{SecretKey: "s"})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{AccessKey: "a"})
	require.ErrorIs(t, err, ErrInvalidConfig)

	s, err := New(Config{AccessKey: "a", SecretKey: "s", Endpoint: "http://localhost:9000", PathStyle: true})
	require.NoError(t, err)
	require.Equal(t, DefaultRegion, s.cfg.Region)
	require.EqualValues(t, DefaultMaxFileSize, s.cfg.MaxFileSize)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	require.False(t, Config{}.Enabled())
	require.False(t, Config{AccessKey: "a"}.Enabled())
	require.True(t, Config{AccessKey: "a", SecretKey: "s"}.Enabled())
}

func TestS3Storage_Fetch(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4 letter")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/news/letter.pdf":
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write(pdf)
		case "/news/huge.pdf":
			_, _ = w.Write(make([]byte, 64))
		default:
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`))
		}
	}))
	t.Cleanup(srv.Close)

	s, err := New(Config{AccessKey: "a", SecretKey: "s", Endpoint: srv.URL, PathStyle: true, MaxFileSize: 32})
	require.NoError(t, err)

	asset, err := s.Fetch(context.Background(), "s3://news/letter.pdf")
	require.NoError(t, err)
	require.Equal(t, "letter.pdf", asset.Name)
	require.Equal(t, pdf, asset.Data)
	require.Equal(t, "application/pdf", asset.ContentType)

	_, err = s.Fetch(context.Background(), "s3://news/huge.pdf")
	require.ErrorIs(t, err, ErrFileTooLarge)

	_, err = s.Fetch(context.Background(), "s3://news/missing.pdf")
	require.ErrorIs(t, err, ErrNotFound)
}
