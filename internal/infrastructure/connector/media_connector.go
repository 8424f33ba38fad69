package connector

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/config"
	"github.com/ravipangali7/My-Restro-Server/internal/pkg/logger"
)

// MediaConnector stores uploaded images in an object store and hands back
// the object key. Keys are persisted on entities; URLs are derived on read.
type MediaConnector interface {
	// Upload stores the object under a generated key within prefix and
	// returns the key.
	Upload(ctx context.Context, prefix, fileName string, reader io.Reader, size int64, contentType string) (string, error)
	// Delete removes an object by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the browsable URL for a stored key.
	PublicURL(key string) string
}

type minioMediaConnector struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    logger.Logger
}

// NewMinioMediaConnector connects to the object store and ensures the
// bucket exists.
func NewMinioMediaConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (MediaConnector, error) {
	client, err := minio.New(settings.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(settings.AccessKey, settings.SecretKey, ""),
		Secure: settings.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, settings.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, settings.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	logger.Info("Connected to object store bucket ", settings.Bucket)
	return &minioMediaConnector{
		client:    client,
		bucket:    settings.Bucket,
		publicURL: strings.TrimRight(settings.PublicURL, "/"),
		logger:    logger,
	}, nil
}

func (c *minioMediaConnector) Upload(ctx context.Context, prefix, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	key := path.Join(prefix, uuid.NewString()+path.Ext(fileName))

	_, err := c.client.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	c.logger.Info("Uploaded object ", key)
	return key, nil
}

func (c *minioMediaConnector) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	c.logger.Info("Deleted object ", key)
	return nil
}

func (c *minioMediaConnector) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return c.publicURL + "/" + path.Join(c.bucket, key)
}
