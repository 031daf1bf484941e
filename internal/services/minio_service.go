package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// MinIOService stores uploaded trailer files in a public-read bucket.
type MinIOService struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &MinIOService{
		client:  minioClient,
		bucket:  cfg.BucketName,
		baseURL: publicBaseURL(cfg.PublicURL, cfg.BucketName),
		logger:  logger,
	}, nil
}

// publicBaseURL turns "https://cdn.example.com/anything" into
// "https://cdn.example.com/<bucket>/".
func publicBaseURL(publicURL, bucket string) string {
	protocol := "http://"
	if strings.HasPrefix(publicURL, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(publicURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	return fmt.Sprintf("%s%s/%s/", protocol, host, bucket)
}

// EnsureBucket creates the bucket when missing and makes its objects publicly readable.
func (s *MinIOService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL returns an upload URL for a new trailer object and the
// public URL the object will be readable at once uploaded.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	objectPath := objectName(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), s.baseURL + objectPath, nil
}

func objectName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s%s", nameWithoutExt, uuid.New().String()[:8], ext)
}

// Owns reports whether trailerURL points into this service's bucket.
func (s *MinIOService) Owns(trailerURL string) bool {
	return s.objectPath(trailerURL) != ""
}

func (s *MinIOService) objectPath(trailerURL string) string {
	if !strings.HasPrefix(trailerURL, s.baseURL) {
		return ""
	}
	objectPath := strings.TrimPrefix(trailerURL, s.baseURL)
	if idx := strings.Index(objectPath, "?"); idx != -1 {
		objectPath = objectPath[:idx]
	}
	return objectPath
}

func (s *MinIOService) DeleteObject(ctx context.Context, trailerURL string) error {
	objectPath := s.objectPath(trailerURL)
	if objectPath == "" {
		return fmt.Errorf("trailer %q is not stored in bucket %s", trailerURL, s.bucket)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}
