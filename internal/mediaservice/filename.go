package mediaservice

import (
	"crypto/sha256"
	"encoding/base64"
	"path"
	"strings"
)

// DeriveFileName builds a content-addressed name for an uploaded image: the
// base64 SHA-256 of the content, with '/' swapped for '-' to keep the name
// usable as a flat storage key, plus the original extension. The same bytes
// always produce the same name, which is what makes uploads deduplicate.
func DeriveFileName(content []byte, originalName string) string {
	sum := sha256.Sum256(content)
	name := base64.StdEncoding.EncodeToString(sum[:])
	name = strings.ReplaceAll(name, "/", "-")

	return name + path.Ext(originalName)
}
