package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const (
	posterPrefix = "posters"
	uploadExpiry = 15 * time.Minute
)

var ErrUnsupportedContentType = errors.New("only image uploads are supported")

// PosterUpload is a presigned PUT target for a movie poster image.
type PosterUpload struct {
	PresignedURL string    `json:"presigned_url"`
	PublicURL    string    `json:"public_url"`
	ObjectName   string    `json:"object_name"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UploadService interface {
	PresignPosterUpload(ctx context.Context, filename, contentType string) (*PosterUpload, error)
}

// MinIOService hands out presigned upload URLs for poster images stored in
// an S3 compatible bucket.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(ctx context.Context, cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.BucketName)
	}

	service := &MinIOService{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    logger,
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	// posters are served straight from the bucket
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s/*"]
			}
		]
	}`, s.bucket, posterPrefix)
	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Poster bucket created")
	return nil
}

func (s *MinIOService) PresignPosterUpload(ctx context.Context, filename, contentType string) (*PosterUpload, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedContentType
	}

	objectName := posterObjectName(filename, uuid.NewString())

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, uploadExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     uploadExpiry,
	}).Info("Generated presigned poster upload URL")

	return &PosterUpload{
		PresignedURL: presignedURL.String(),
		PublicURL:    s.publicURL + "/" + objectName,
		ObjectName:   objectName,
		ExpiresAt:    time.Now().UTC().Add(uploadExpiry),
	}, nil
}

// posterObjectName keeps the caller's base name readable and appends a short
// unique suffix so that uploads never overwrite each other.
func posterObjectName(filename, unique string) string {
	base := filepath.Base(filepath.ToSlash(filename))
	if base == "." || base == "/" {
		base = "poster"
	}
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = url.PathEscape(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if name == "" {
		name = "poster"
	}
	if len(unique) > 8 {
		unique = unique[:8]
	}
	return path.Join(posterPrefix, fmt.Sprintf("%s_%s%s", name, unique, ext))
}
