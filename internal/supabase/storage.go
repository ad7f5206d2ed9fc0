package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type objectUploader interface {
	UploadFile(bucketId string, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error)
}

type StorageClient struct {
	client  objectUploader
	bucket  string
	baseURL string
}

// UploadPNG stores a processed garment image under a fresh random name and
// returns its public URL.
func (s *StorageClient) UploadPNG(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	storagePath := uuid.NewString() + ".png"
	contentType := "image/png"
	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}
