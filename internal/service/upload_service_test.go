package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type recordingStore struct {
	err     error
	bucket  string
	key     string
	expires time.Duration
}

func (s *recordingStore) PresignPutURL(_ context.Context, bucket, key string, expires time.Duration) (string, error) {
	s.bucket, s.key, s.expires = bucket, key, expires
	if s.err != nil {
		return "", s.err
	}
	return "https://signed.example/" + bucket + "/" + key, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCreatePresignedURL(t *testing.T) {
	store := &recordingStore{}
	svc := NewUploadService(store, "media", 0, quietLogger())

	url, err := svc.CreatePresignedURL(context.Background(), "photos/cat.png")
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if url != "https://signed.example/media/photos/cat.png" {
		t.Fatalf("unexpected url %s", url)
	}
	if store.bucket != "media" || store.key != "photos/cat.png" || store.expires != 15*time.Minute {
		t.Fatalf("unexpected presign call %+v", store)
	}
}

func TestCreatePresignedURLFailure(t *testing.T) {
	store := &recordingStore{err: errors.New("no credentials")}
	svc := NewUploadService(store, "media", time.Minute, quietLogger())

	_, err := svc.CreatePresignedURL(context.Background(), "a.png")
	if !errors.Is(err, ErrPresignFailed) {
		t.Fatalf("expected ErrPresignFailed, got %v", err)
	}
	if store.expires != time.Minute {
		t.Fatalf("expected configured ttl, got %s", store.expires)
	}

	unconfigured := NewUploadService(nil, "media", 0, quietLogger())
	if _, err := unconfigured.CreatePresignedURL(context.Background(), "a.png"); !errors.Is(err, ErrPresignFailed) {
		t.Fatalf("expected ErrPresignFailed without storage, got %v", err)
	}
}
