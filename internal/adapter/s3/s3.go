// Package s3 archives finished exports to an S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectPutter is the subset of *minio.Client the archiver uses.
type objectPutter interface {
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Archiver uploads exports under exports/<filename>. It implements export.Archiver.
type Archiver struct {
	client objectPutter
	bucket string
	logger *slog.Logger
}

// New connects to an S3-compatible endpoint.
func New(endpoint, accessKey, secretKey string, useSSL bool, bucket string, logger *slog.Logger) (*Archiver, error) {
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	return &Archiver{client: mc, bucket: bucket, logger: logger}, nil
}

// Archive stores data as exports/<name>. Each upload carries a unique
// archive id so repeated same-day exports can be told apart.
func (a *Archiver) Archive(ctx context.Context, name, contentType string, data []byte) error {
	key := ObjectKey(name)
	archiveID := uuid.NewString()
	info, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"archive-id": archiveID},
	})
	if err != nil {
		return fmt.Errorf("upload %s to %s: %w", key, a.bucket, err)
	}
	a.logger.Info("export archived", "bucket", a.bucket, "key", key, "archive_id", archiveID, "etag", info.ETag)
	return nil
}

// ObjectKey returns the object key for an export filename.
func ObjectKey(name string) string {
	return "exports/" + name
}
