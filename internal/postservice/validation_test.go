package postservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okuznetsov/blogware/internal/common"
)

func TestValidateItems(t *testing.T) {
	testCases := []struct {
		name      string
		items     []ItemInput
		wantField string
	}{
		{
			name:  "valid text item",
			items: []ItemInput{{Kind: ItemKindText, Text: "hello", Style: TextStyleParagraph}},
		},
		{
			name:  "valid image item",
			items: []ItemInput{{Kind: ItemKindImage, FileName: "pic.png", Alt: "a picture"}},
		},
		{
			name:      "unknown kind",
			items:     []ItemInput{{Kind: "video"}},
			wantField: "items[0].kind",
		},
		{
			name:      "text item without text",
			items:     []ItemInput{{Kind: ItemKindText, Style: TextStyleHeading}},
			wantField: "items[0].text",
		},
		{
			name:      "text item with bad style",
			items:     []ItemInput{{Kind: ItemKindText, Text: "x", Style: "shouting"}},
			wantField: "items[0].style",
		},
		{
			name:      "image item without file name",
			items:     []ItemInput{{Kind: ItemKindImage}},
			wantField: "items[0].file_name",
		},
		{
			name: "second item reported with its own index",
			items: []ItemInput{
				{Kind: ItemKindText, Text: "ok", Style: TextStyleParagraph},
				{Kind: ItemKindImage},
			},
			wantField: "items[1].file_name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateItems(v, tc.items)

			if tc.wantField == "" {
				assert.True(t, v.Valid())
				return
			}

			assert.Contains(t, v.Errors, tc.wantField)
		})
	}
}

func TestValidateHeader(t *testing.T) {
	v := common.NewValidator()
	validateHeader(v, "")
	assert.Contains(t, v.Errors, "header")

	v = common.NewValidator()
	validateHeader(v, strings.Repeat("a", maxHeaderLength+1))
	assert.Contains(t, v.Errors, "header")

	v = common.NewValidator()
	validateHeader(v, "a perfectly fine header")
	assert.True(t, v.Valid())
}
