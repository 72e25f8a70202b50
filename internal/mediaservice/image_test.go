package mediaservice

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	format, err := DetectFormat(encodePNG(t))
	require.NoError(t, err)
	assert.Equal(t, "png", format.Name)
	assert.Equal(t, "image/png", format.MIME)

	format, err = DetectFormat(encodeJPEG(t))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format.Name)
	assert.Equal(t, "image/jpeg", format.MIME)
}

func TestDetectFormatUnknown(t *testing.T) {
	_, err := DetectFormat([]byte("this is just text, not an image"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetectFormatCorrupt(t *testing.T) {
	content := encodePNG(t)

	// a valid PNG signature followed by garbage
	corrupt := append([]byte{}, content[:8]...)
	corrupt = append(corrupt, []byte("garbage")...)

	_, err := DetectFormat(corrupt)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
