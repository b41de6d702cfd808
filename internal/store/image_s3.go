package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/azimovr/go-user-admin/internal/config"
	"github.com/azimovr/go-user-admin/internal/logger"
	"github.com/azimovr/go-user-admin/models"
	"github.com/google/uuid"
)

// imageStorage is the S3-backed implementation of [ImageStorage].
//
// It treats the provider as an opaque upload/delete API: upload returns a
// durable public URL plus the object key needed for deletion, and nothing
// else about the provider leaks to callers. Any S3-compatible endpoint
// works (set Endpoint in the configuration for MinIO-style deployments).
type imageStorage struct {
	client        *s3.Client
	bucket        string
	folder        string
	publicBaseURL string
	region        string
	logger        *logger.Logger
}

// NewImageStorage constructs an [ImageStorage] from the given object-storage
// configuration.
func NewImageStorage(cfg config.Images, logger *logger.Logger) (ImageStorage, error) {
	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating image storage")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("error loading object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &imageStorage{
		client:        client,
		bucket:        cfg.Bucket,
		folder:        cfg.UploadFolder,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		region:        cfg.Region,
		logger:        logger,
	}, nil
}

// UploadImage puts the payload under a fresh date-scoped key inside the
// configured folder and returns the public URL together with the key.
func (s *imageStorage) UploadImage(ctx context.Context, data []byte, contentType string) (models.StoredImage, error) {
	log := logger.FromContext(ctx)

	key := s.randomObjectKey(contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("key", key).Msg("error uploading image object")
		return models.StoredImage{}, fmt.Errorf("%w: %w", ErrImageStoreUnavailable, err)
	}

	return models.StoredImage{URL: s.publicURL(key), Key: key}, nil
}

// DeleteImage removes the object with the given key. S3 deletes are
// idempotent: deleting a missing object succeeds, which keeps repeated
// best-effort cleanup attempts harmless.
func (s *imageStorage) DeleteImage(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("key", key).Msg("error deleting image object")
		return fmt.Errorf("%w: %w", ErrImageStoreUnavailable, err)
	}

	return nil
}

// randomObjectKey builds a collision-free key of the form
// <folder>/<year>/<month>/<day>/<uuid><ext>.
func (s *imageStorage) randomObjectKey(contentType string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%d/%v%s",
		s.folder, d.Year(), int(d.Month()), d.Day(), uuid.New(), extensionFor(contentType))
}

func (s *imageStorage) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/tiff":
		return ".tiff"
	default:
		return ""
	}
}
