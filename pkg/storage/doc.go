// Package storage loads newsletter assets (the inline image and the attached
// document) from the local filesystem or from S3-compatible object storage.
//
// An asset reference is either a filesystem path or an S3 URI:
//
//	header_photo.jpg
//	/srv/letters/2025.pdf
//	s3://family-news/2025/header_photo.jpg
//
// # Basic Usage
//
//	loader := storage.NewLoader()
//	img, err := loader.Load(ctx, "header_photo.jpg")
//	if err != nil {
//		return err
//	}
//	fmt.Println(img.Name, img.ContentType, len(img.Data))
//
// S3 references need a configured client:
//
//	s3store, err := storage.New(storage.Config{
//		Region:    "eu-central-1",
//		AccessKey: os.Getenv("S3_ACCESS_KEY"),
//		SecretKey: os.Getenv("S3_SECRET_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//	loader := storage.NewLoader(storage.WithS3(s3store))
//
// # Content Types
//
// The content type is taken from the file extension when it is known and
// falls back to magic-byte sniffing. Use IsImage to check that an asset meant
// for inline display really is an image.
//
// # Errors
//
//   - ErrInvalidRef: the reference is empty or a malformed s3:// URI
//   - ErrInvalidConfig: S3 credentials missing, or an s3:// ref without a client
//   - ErrNotFound / ErrAccessDenied: the object or file is unavailable
//   - ErrEmptyFile / ErrFileTooLarge: size checks failed
package storage
