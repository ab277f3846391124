package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	refs  []string
	asset *Asset
	err   error
}

func (f *fakeFetcher) Fetch(_ context.Context, ref string) (*Asset, error) {
	f.refs = append(f.refs, ref)
	return f.asset, f.err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoader_LocalFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "Christmas Letter.pdf", []byte("%PDF-1.7 fake"))

	asset, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "Christmas Letter.pdf", asset.Name)
	require.Equal(t, "application/pdf", asset.ContentType)
	require.Equal(t, []byte("%PDF-1.7 fake"), asset.Data)
}

func TestLoader_RereadsOnEveryCall(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "note.txt", []byte("first"))
	loader := NewLoader()

	a, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "first", string(a.Data))

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))

	b, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "second", string(b.Data))
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.jpg")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	big := filepath.Join(dir, "big.jpg")
	require.NoError(t, os.WriteFile(big, []byte("0123456789"), 0o600))

	tests := []struct {
		name   string
		loader *Loader
		ref    string
		want   error
	}{
		{"empty ref", NewLoader(), "", ErrInvalidRef},
		{"missing file", NewLoader(), filepath.Join(dir, "missing.jpg"), ErrNotFound},
		{"empty file", NewLoader(), empty, ErrEmptyFile},
		{"too large", NewLoader(WithMaxSize(4)), big, ErrFileTooLarge},
		{"s3 without client", NewLoader(), "s3://bucket/photo.jpg", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.loader.Load(context.Background(), tt.ref)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_S3RefDelegates(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{asset: &Asset{Name: "photo.jpg", ContentType: "image/jpeg", Data: []byte{0xff}}}
	loader := NewLoader(WithS3(fetcher))

	asset, err := loader.Load(context.Background(), "s3://news/2025/photo.jpg")
	require.NoError(t, err)
	require.Equal(t, "photo.jpg", asset.Name)
	require.Equal(t, []string{"s3://news/2025/photo.jpg"}, fetcher.refs)
}
