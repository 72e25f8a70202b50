package mediaservice

import (
	"bytes"
	"errors"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var (
	ErrUnknownFormat = errors.New("unknown image format")
	ErrInvalidImage  = errors.New("invalid image content")
)

type Format struct {
	Name string
	MIME string
}

var formatMIME = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

// DetectFormat inspects the content's magic bytes and header. It fails with
// ErrUnknownFormat when the content is not one of the registered image
// formats and ErrInvalidImage when the header is recognized but corrupt.
func DetectFormat(content []byte) (Format, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Format{}, ErrUnknownFormat
		}
		return Format{}, ErrInvalidImage
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Format{}, ErrInvalidImage
	}

	return Format{Name: name, MIME: formatMIME[name]}, nil
}
