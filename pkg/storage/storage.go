package storage

import (
	"fmt"
	"path"
	"strings"
)

// Defaults.
const (
	DefaultRegion      = "us-east-1"
	DefaultMaxFileSize = 25 << 20 // 25MB, the common mail provider attachment cap

	s3Scheme = "s3://"
)

// Asset is a loaded file ready to be attached to a message.
type Asset struct {
	// Name is the base file name shown to the recipient.
	Name string

	// ContentType is the detected MIME type.
	ContentType string

	// Data is the raw file content.
	Data []byte
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is used for s3:// references that omit the bucket ("s3:///key").
	Bucket string `env:"S3_BUCKET"`

	// AccessKey is the access key ID (required).
	AccessKey string `env:"S3_ACCESS_KEY"`

	// SecretKey is the secret access key (required).
	SecretKey string `env:"S3_SECRET_KEY"`

	// Endpoint is a custom endpoint URL for MinIO and other S3-compatible services.
	Endpoint string `env:"S3_ENDPOINT"`

	// Region defaults to us-east-1.
	Region string `env:"S3_REGION"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"S3_PATH_STYLE"`

	// MaxFileSize caps downloaded objects (default 25MB).
	MaxFileSize int64 `env:"S3_MAX_FILE_SIZE"`
}

// Enabled reports whether credentials are present.
func (c Config) Enabled() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxFileSize == 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
}

func (c *Config) validate() error {
	if c.AccessKey == "" {
		return fmt.Errorf("%w: access key is required", ErrInvalidConfig)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret key is required", ErrInvalidConfig)
	}
	return nil
}

// IsS3Ref reports whether ref points at object storage.
func IsS3Ref(ref string) bool {
	return strings.HasPrefix(ref, s3Scheme)
}

// ParseS3Ref splits "s3://bucket/key" into its bucket and key.
// An empty bucket ("s3:///key") is allowed and resolved against Config.Bucket.
func ParseS3Ref(ref string) (bucket, key string, err error) {
	if !IsS3Ref(ref) {
		return "", "", fmt.Errorf("%w: %q is not an s3 uri", ErrInvalidRef, ref)
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(ref, s3Scheme), "/")
	key = strings.TrimLeft(key, "/")
	if !ok || key == "" {
		return "", "", fmt.Errorf("%w: %q has no object key", ErrInvalidRef, ref)
	}

	return bucket, key, nil
}

// Name returns the display file name for a reference.
func Name(ref string) string {
	if IsS3Ref(ref) {
		if _, key, err := ParseS3Ref(ref); err == nil {
			return path.Base(key)
		}
	}
	return path.Base(strings.ReplaceAll(ref, "\\", "/"))
}
