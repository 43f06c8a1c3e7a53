package storage

import (
	"context"
	"time"
)

// Service signs short-lived requests against remote object storage.
type Service interface {
	// PresignPutURL returns a URL that lets the holder PUT bucket/key until it expires.
	PresignPutURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
}
