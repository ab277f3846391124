package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Fetcher retrieves an object-storage asset. S3Storage implements it.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (*Asset, error)
}

// Loader resolves asset references against the local filesystem or S3.
type Loader struct {
	s3      Fetcher
	maxSize int64
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithS3 enables s3:// references.
func WithS3(f Fetcher) LoaderOption {
	return func(l *Loader) {
		l.s3 = f
	}
}

// WithMaxSize caps the size of local files (default 25MB).
func WithMaxSize(n int64) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.maxSize = n
		}
	}
}

// NewLoader creates a Loader. Without WithS3 only local paths resolve.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{maxSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the asset at ref. Every call hits the filesystem or bucket again,
// so edits between sends are picked up.
func (l *Loader) Load(ctx context.Context, ref string) (*Asset, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidRef)
	}

	if IsS3Ref(ref) {
		if l.s3 == nil {
			return nil, fmt.Errorf("%w: %s requires S3 credentials", ErrInvalidConfig, ref)
		}
		return l.s3.Fetch(ctx, ref)
	}

	return l.loadFile(ref)
}

func (l *Loader) loadFile(path string) (*Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	if info.Size() > l.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	name := Name(path)
	return &Asset{
		Name:        name,
		ContentType: DetectContentType(name, data),
		Data:        data,
	}, nil
}

func fileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrAccessDenied, path)
	default:
		return fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
	}
}
