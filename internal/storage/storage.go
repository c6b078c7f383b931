package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// Uploader puts admin-uploaded images and PDFs into an S3-compatible bucket
// and hands back the public URL stored on the entity.
type Uploader struct {
	uploader  *s3manager.Uploader
	bucket    string
	region    string
	publicURL string
}

// NewUploader opens an AWS session for the configured bucket
func NewUploader(region, bucket, publicURL string) (*Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("open aws session: %w", err)
	}

	return &Uploader{
		uploader:  s3manager.NewUploader(sess),
		bucket:    bucket,
		region:    region,
		publicURL: publicURL,
	}, nil
}

// Upload stores body under a fresh uuid key, keeping the original file
// extension, and returns the public URL
func (u *Uploader) Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), strings.ToLower(path.Ext(filename)))

	_, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		ACL:         aws.String("public-read"),
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return u.URLForKey(key), nil
}

// URLForKey resolves a stored object key to its public URL
func (u *Uploader) URLForKey(key string) string {
	if u.publicURL != "" {
		return strings.TrimRight(u.publicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
