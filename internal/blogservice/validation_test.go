package blogservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okuznetsov/blogware/internal/common"
)

func TestNormalizeTag(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "mytag", want: "mytag"},
		{name: "uppercase", input: "MyTag", want: "mytag"},
		{name: "surrounding whitespace", input: "  MyTag  ", want: "mytag"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTag(tc.input)
			assert.Equal(t, tc.want, got)

			// normalizing twice changes nothing
			assert.Equal(t, got, NormalizeTag(got))
		})
	}
}

func TestValidateTag(t *testing.T) {
	testCases := []struct {
		name  string
		tag   string
		valid bool
	}{
		{name: "valid", tag: "mytag123", valid: true},
		{name: "empty", tag: "", valid: false},
		{name: "too long", tag: strings.Repeat("a", 51), valid: false},
		{name: "spaces", tag: "my tag", valid: false},
		{name: "punctuation", tag: "my-tag", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateTag(v, tc.tag)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}
