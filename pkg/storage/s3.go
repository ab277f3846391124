package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage reads objects from S3-compatible storage.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// New creates a new S3Storage with the given configuration.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Storage{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Fetch downloads the object at ref ("s3://bucket/key") and returns it as an Asset.
// Objects larger than Config.MaxFileSize are rejected.
func (s *S3Storage) Fetch(ctx context.Context, ref string) (*Asset, error) {
	bucket, key, err := ParseS3Ref(ref)
	if err != nil {
		return nil, err
	}
	if bucket == "" {
		bucket = s.cfg.Bucket
	}
	if bucket == "" {
		return nil, fmt.Errorf("%w: %q has no bucket and S3_BUCKET is unset", ErrInvalidRef, ref)
	}

	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	defer func() { _ = output.Body.Close() }()

	if output.ContentLength != nil && *output.ContentLength > s.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, ref, *output.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(output.Body, s.cfg.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, ref, err)
	}
	if int64(len(data)) > s.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, ref)
	}

	contentType := ""
	if output.ContentType != nil {
		contentType = *output.ContentType
	}
	name := Name(ref)
	if contentType == "" || normalizeMIME(contentType) == MIMEOctetStream {
		contentType = DetectContentType(name, data)
	}

	return &Asset{Name: name, ContentType: contentType, Data: data}, nil
}
