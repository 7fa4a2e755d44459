package services

import (
	"context"
	"mime/multipart"

	"desa-profil-backend/domain/dto"
)

// UploadService validates and uploads a batch of files to a named bucket,
// returning public URLs. Invalid files fail individually while valid
// siblings in the same batch still go through.
type UploadService interface {
	UploadBatch(ctx context.Context, bucket, folder string, files []*multipart.FileHeader) (*dto.UploadBatchResponse, error)
	Delete(ctx context.Context, publicURL string) error
}
