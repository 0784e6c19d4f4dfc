// Package storage implements receipt file storage on Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"io"

	gcsstorage "cloud.google.com/go/storage"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// gcsStorage implements adapter.FileStorage on a GCS bucket.
type gcsStorage struct {
	bucket        *gcsstorage.BucketHandle
	bucketName    string
	publicBaseURL string
}

// NewGCSStorage creates a GCS-backed file storage. publicBaseURL overrides
// the default https://storage.googleapis.com/<bucket> prefix when set.
func NewGCSStorage(client *gcsstorage.Client, bucketName, publicBaseURL string) adapter.FileStorage {
	if publicBaseURL == "" {
		publicBaseURL = "https://storage.googleapis.com/" + bucketName
	}
	return &gcsStorage{
		bucket:        client.Bucket(bucketName),
		bucketName:    bucketName,
		publicBaseURL: publicBaseURL,
	}
}

// IsAvailable reports whether the storage is usable.
func (s *gcsStorage) IsAvailable() bool {
	return s.bucket != nil
}

// Upload writes the object and returns its public URL.
func (s *gcsStorage) Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error) {
	writer := s.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()
		return "", domainerror.NewStorageError(
			domainerror.ErrCodeUploadFailed,
			fmt.Sprintf("failed to write object %s", objectName),
			err,
		)
	}
	if err := writer.Close(); err != nil {
		return "", domainerror.NewStorageError(
			domainerror.ErrCodeUploadFailed,
			fmt.Sprintf("failed to finalize object %s", objectName),
			err,
		)
	}

	return s.publicBaseURL + "/" + objectName, nil
}

// unavailableStorage is used when no bucket is configured. Uploads fail
// with a configuration error instead of panicking.
type unavailableStorage struct{}

// NewUnavailableStorage creates a file storage that rejects every upload.
func NewUnavailableStorage() adapter.FileStorage {
	return unavailableStorage{}
}

func (unavailableStorage) IsAvailable() bool { return false }

func (unavailableStorage) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", domainerror.NewStorageError(
		domainerror.ErrCodeStorageNotConfigured,
		"file storage is not configured",
		domainerror.ErrStorageNotConfigured,
	)
}
