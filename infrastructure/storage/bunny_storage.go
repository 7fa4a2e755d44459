package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"desa-profil-backend/pkg/config"
)

// Bucket names are fixed; each content type uploads to its own folder under
// the storage zone.
const (
	BucketHeroImages        = "hero-images"
	BucketProfileImages     = "profile-images"
	BucketOfficialPhotos    = "official-photos"
	BucketDestinationImages = "destination-images"
	BucketNewsImages        = "news-images"
)

func IsAllowedBucket(bucket string) bool {
	switch bucket {
	case BucketHeroImages, BucketProfileImages, BucketOfficialPhotos,
		BucketDestinationImages, BucketNewsImages:
		return true
	}
	return false
}

// BlobStorage abstracts the object store so services stay testable.
type BlobStorage interface {
	Upload(ctx context.Context, bucket, path string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

type BunnyStorage struct {
	storageZone string
	accessKey   string
	baseURL     string
	cdnURL      string
	httpClient  *http.Client
}

func NewBunnyStorage(cfg config.BunnyConfig) *BunnyStorage {
	return &BunnyStorage{
		storageZone: cfg.StorageZone,
		accessKey:   cfg.AccessKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		cdnURL:      strings.TrimSuffix(cfg.CDNUrl, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores the blob at bucket/path inside the storage zone and returns
// the public CDN URL.
func (s *BunnyStorage) Upload(ctx context.Context, bucket, path string, reader io.Reader, contentType string) (string, error) {
	if !IsAllowedBucket(bucket) {
		return "", fmt.Errorf("bucket %s is not allowed", bucket)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read upload body: %v", err)
	}

	storagePath := fmt.Sprintf("%s/%s/%s/%s", s.baseURL, s.storageZone, bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, storagePath, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %v", err)
	}
	req.Header.Set("AccessKey", s.accessKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage returned status %d: %s", resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/%s/%s", s.cdnURL, bucket, path), nil
}

// Delete removes the object that publicURL points to. Unknown URLs (not under
// our CDN) are rejected rather than guessed at.
func (s *BunnyStorage) Delete(ctx context.Context, publicURL string) error {
	prefix := s.cdnURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return fmt.Errorf("url %s is not managed by this storage", publicURL)
	}
	objectPath := strings.TrimPrefix(publicURL, prefix)

	storagePath := fmt.Sprintf("%s/%s/%s", s.baseURL, s.storageZone, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, storagePath, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %v", err)
	}
	req.Header.Set("AccessKey", s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("storage returned status %d", resp.StatusCode)
	}

	return nil
}
