package serviceimpl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/infrastructure/storage"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/config"
	"desa-profil-backend/pkg/logger"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadServiceImpl struct {
	blobStorage storage.BlobStorage
	maxSizeMB   int
}

func NewUploadService(blobStorage storage.BlobStorage, uploadCfg config.UploadConfig) services.UploadService {
	return &UploadServiceImpl{
		blobStorage: blobStorage,
		maxSizeMB:   uploadCfg.MaxSizeMB,
	}
}

// UploadBatch validates and uploads each file independently. One bad file
// lands in Failed; its siblings still upload.
func (s *UploadServiceImpl) UploadBatch(ctx context.Context, bucket, folder string, files []*multipart.FileHeader) (*dto.UploadBatchResponse, error) {
	if !storage.IsAllowedBucket(bucket) {
		return nil, apperr.NewValidation("bucket", fmt.Sprintf("unknown bucket %q", bucket))
	}
	if len(files) == 0 {
		return nil, apperr.NewValidation("files", "at least one file is required")
	}

	resp := &dto.UploadBatchResponse{
		Uploaded: []dto.UploadResult{},
		Failed:   []dto.UploadResult{},
	}

	for _, fh := range files {
		url, err := s.uploadOne(ctx, bucket, folder, fh)
		if err != nil {
			logger.StorageError("upload", "file rejected", err, map[string]interface{}{
				"file":   fh.Filename,
				"bucket": bucket,
			})
			resp.Failed = append(resp.Failed, dto.UploadResult{
				FileName: fh.Filename,
				Error:    err.Error(),
			})
			continue
		}

		logger.Storage("upload", "file uploaded", map[string]interface{}{
			"file":   fh.Filename,
			"bucket": bucket,
			"url":    url,
		})
		resp.Uploaded = append(resp.Uploaded, dto.UploadResult{
			FileName: fh.Filename,
			URL:      url,
		})
	}

	return resp, nil
}

func (s *UploadServiceImpl) uploadOne(ctx context.Context, bucket, folder string, fh *multipart.FileHeader) (string, error) {
	maxBytes := int64(s.maxSizeMB) * 1024 * 1024
	if fh.Size > maxBytes {
		return "", apperr.NewUpload(fh.Filename, fmt.Sprintf("exceeds the %dMB size limit", s.maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "", apperr.NewUpload(fh.Filename, "only jpg, jpeg, png and webp files are allowed")
	}

	contentType := fh.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "", apperr.NewUpload(fh.Filename, fmt.Sprintf("unsupported content type %q", contentType))
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperr.NewUpload(fh.Filename, "could not read file")
	}
	defer file.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomHex(4), ext)
	path := name
	if folder != "" {
		path = strings.Trim(folder, "/") + "/" + name
	}

	url, err := s.blobStorage.Upload(ctx, bucket, path, file, contentType)
	if err != nil {
		return "", apperr.NewUpload(fh.Filename, "storage upload failed")
	}
	return url, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, publicURL string) error {
	if err := s.blobStorage.Delete(ctx, publicURL); err != nil {
		logger.StorageError("delete", "failed to delete object", err, map[string]interface{}{"url": publicURL})
		return apperr.NewPersistence("upload.delete", err)
	}
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
