package serviceimpl

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desa-profil-backend/infrastructure/storage"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/config"
)

// fakeBlobStorage records uploads and serves deterministic URLs.
type fakeBlobStorage struct {
	uploads []string
}

func (f *fakeBlobStorage) Upload(_ context.Context, bucket, path string, reader io.Reader, contentType string) (string, error) {
	f.uploads = append(f.uploads, bucket+"/"+path)
	return "https://cdn.example.com/" + bucket + "/" + path, nil
}

func (f *fakeBlobStorage) Delete(_ context.Context, publicURL string) error {
	return nil
}

// makeFileHeaders builds real multipart file headers so Open works.
func makeFileHeaders(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		switch {
		case bytes.HasSuffix([]byte(name), []byte(".png")):
			h.Set("Content-Type", "image/png")
		case bytes.HasSuffix([]byte(name), []byte(".webp")):
			h.Set("Content-Type", "image/webp")
		default:
			h.Set("Content-Type", "image/jpeg")
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

func TestUploadBatch(t *testing.T) {
	ctx := context.Background()
	cfg := config.UploadConfig{MaxSizeMB: 5}

	t.Run("unknown bucket rejects the whole batch", func(t *testing.T) {
		blob := &fakeBlobStorage{}
		svc := NewUploadService(blob, cfg)

		headers := makeFileHeaders(t, map[string][]byte{"a.jpg": []byte("data")})
		_, err := svc.UploadBatch(ctx, "secret-bucket", "", headers)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, blob.uploads)
	})

	t.Run("valid files upload with generated names", func(t *testing.T) {
		blob := &fakeBlobStorage{}
		svc := NewUploadService(blob, cfg)

		headers := makeFileHeaders(t, map[string][]byte{
			"photo.jpg": bytes.Repeat([]byte("x"), 2048),
			"logo.png":  []byte("png-bytes"),
		})

		result, err := svc.UploadBatch(ctx, storage.BucketNewsImages, "", headers)
		require.NoError(t, err)
		assert.Len(t, result.Uploaded, 2)
		assert.Empty(t, result.Failed)
		for _, up := range result.Uploaded {
			assert.NotEmpty(t, up.URL)
			// Stored name is generated, never the original file name.
			assert.NotContains(t, up.URL, "photo.jpg")
			assert.NotContains(t, up.URL, "logo.png")
		}
	})

	t.Run("oversized file fails alone, sibling still uploads", func(t *testing.T) {
		blob := &fakeBlobStorage{}
		svc := NewUploadService(blob, cfg)

		headers := makeFileHeaders(t, map[string][]byte{"small.jpg": []byte("ok")})

		// 6MB file against a 5MB limit. Rejected before Open, so a bare
		// header is enough.
		big := &multipart.FileHeader{
			Filename: "big.jpg",
			Size:     6 * 1024 * 1024,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
		}
		headers = append(headers, big)

		result, err := svc.UploadBatch(ctx, storage.BucketDestinationImages, "", headers)
		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "big.jpg", result.Failed[0].FileName)
		assert.Contains(t, result.Failed[0].Error, "5MB")
		require.Len(t, result.Uploaded, 1)
		assert.Equal(t, "small.jpg", result.Uploaded[0].FileName)
	})

	t.Run("disallowed extension is rejected", func(t *testing.T) {
		blob := &fakeBlobStorage{}
		svc := NewUploadService(blob, cfg)

		gif := &multipart.FileHeader{
			Filename: "anim.gif",
			Size:     100,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/gif"}},
		}

		result, err := svc.UploadBatch(ctx, storage.BucketHeroImages, "", []*multipart.FileHeader{gif})
		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Empty(t, result.Uploaded)
		assert.Empty(t, blob.uploads)
	})

	t.Run("mismatched content type is rejected", func(t *testing.T) {
		blob := &fakeBlobStorage{}
		svc := NewUploadService(blob, cfg)

		fake := &multipart.FileHeader{
			Filename: "script.jpg",
			Size:     100,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"text/html"}},
		}

		result, err := svc.UploadBatch(ctx, storage.BucketHeroImages, "", []*multipart.FileHeader{fake})
		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		blob := &fakeBlobStorage{}
		svc := NewUploadService(blob, cfg)

		_, err := svc.UploadBatch(ctx, storage.BucketHeroImages, "", nil)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}
