package mediaservice

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/okuznetsov/blogware/internal/common"
)

// Upload validates that the content is a supported image, derives its
// content-addressed name, and stores it. Re-uploading the same bytes is a
// no-op returning the existing name. The declared content type is kept unless
// it does not look like an image, in which case the detected one wins.
func (s *ImageService) Upload(ctx context.Context, content []byte, originalName, contentType string) (string, error) {
	format, err := DetectFormat(content)
	if err != nil {
		return "", common.NewValidationError("file", "The file is not an image or this format is not supported.", err)
	}

	if !strings.HasPrefix(contentType, "image/") {
		contentType = format.MIME
	}

	name := DeriveFileName(content, originalName)

	exists, err := s.blobs.Exists(ctx, name)
	if err != nil {
		return "", err
	}
	if exists {
		return name, nil
	}

	err = s.blobs.Upload(ctx, name, bytes.NewReader(content), contentType)
	if err != nil {
		return "", err
	}

	return name, nil
}

func (s *ImageService) Download(ctx context.Context, name string) (io.ReadCloser, string, error) {
	return s.blobs.Download(ctx, name)
}

// Exists reports whether an image with the given name has been uploaded. It
// backs the avatar checks in the account and blog services.
func (s *ImageService) Exists(ctx context.Context, name string) (bool, error) {
	return s.blobs.Exists(ctx, name)
}
