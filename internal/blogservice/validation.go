package blogservice

import (
	"regexp"
	"strings"

	"github.com/okuznetsov/blogware/internal/common"
)

var TagRX = regexp.MustCompile("^[a-zA-Z0-9]+$")

// NormalizeTag trims and lower-cases a blog tag. Idempotent: normalizing a
// normalized tag is a no-op.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func validateTag(v *common.Validator, tag string) {
	v.Check(tag != "", "tag", "must be provided")
	v.Check(v.CheckStringLength(tag, 1, 50), "tag", "must not be longer than 50 characters")
	v.Check(tag == "" || TagRX.MatchString(tag), "tag", "must only contain letters and numbers")
}

func validateName(v *common.Validator, name string) {
	v.Check(name != "", "name", "must be provided")
}

func validateDescription(v *common.Validator, description string) {
	v.Check(len(description) <= 1000, "description", "must not be longer than 1000 characters")
}
