package mediaservice

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("image not found")

// BlobStore is the storage backend for uploaded images. Download also returns
// the content type the blob was stored with.
type BlobStore interface {
	Upload(ctx context.Context, name string, r io.Reader, contentType string) error
	Download(ctx context.Context, name string) (io.ReadCloser, string, error)
	Exists(ctx context.Context, name string) (bool, error)
}

type ImageService struct {
	blobs BlobStore
}

func NewImageService(blobs BlobStore) *ImageService {
	return &ImageService{blobs: blobs}
}
