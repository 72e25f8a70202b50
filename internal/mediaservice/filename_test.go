package mediaservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFileName(t *testing.T) {
	content := []byte("some image bytes")

	a := DeriveFileName(content, "photo.png")
	b := DeriveFileName(content, "copy of photo.png")

	// the name depends on content only, apart from the extension
	assert.Equal(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotContains(t, a, "/")

	c := DeriveFileName([]byte("different bytes"), "photo.png")
	assert.NotEqual(t, a, c)
}

func TestDeriveFileNameKeepsExtension(t *testing.T) {
	testCases := []struct {
		name     string
		original string
		wantExt  string
	}{
		{name: "png", original: "avatar.png", wantExt: ".png"},
		{name: "jpeg", original: "holiday.photo.jpeg", wantExt: ".jpeg"},
		{name: "no extension", original: "raw", wantExt: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveFileName([]byte("x"), tc.original)
			if tc.wantExt == "" {
				assert.NotContains(t, got, ".")
			} else {
				assert.True(t, strings.HasSuffix(got, tc.wantExt))
			}
		})
	}
}
