package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"blog-api/internal/storage"
)

const defaultPresignTTL = 15 * time.Minute

// UploadService hands out presigned URLs for direct client uploads.
type UploadService interface {
	CreatePresignedURL(ctx context.Context, filename string) (string, error)
}

type uploadService struct {
	store  storage.Service
	bucket string
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUploadService(store storage.Service, bucket string, ttl time.Duration, logger *logrus.Logger) UploadService {
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &uploadService{
		store:  store,
		bucket: bucket,
		ttl:    ttl,
		logger: logger,
	}
}

// CreatePresignedURL signs a PUT for the filename as given by the client.
func (s *uploadService) CreatePresignedURL(ctx context.Context, filename string) (string, error) {
	if s.store == nil {
		s.logger.Error("presign requested but storage is not configured")
		return "", ErrPresignFailed
	}

	url, err := s.store.PresignPutURL(ctx, s.bucket, filename, s.ttl)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"bucket": s.bucket,
			"key":    filename,
		}).WithError(err).Error("presign upload url")
		return "", ErrPresignFailed
	}
	return url, nil
}
