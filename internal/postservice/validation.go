package postservice

import (
	"fmt"

	"github.com/okuznetsov/blogware/internal/common"
)

const (
	maxHeaderLength      = 250
	maxSubheaderLength   = 500
	maxTextLength        = 10000
	maxAltLength         = 250
	maxDescriptionLength = 1000
)

func validateHeader(v *common.Validator, header string) {
	v.Check(header != "", "header", "must be provided")
	v.Check(v.CheckStringLength(header, 0, maxHeaderLength), "header", fmt.Sprintf("must not be more than %d characters long", maxHeaderLength))
}

func validateSubheader(v *common.Validator, subheader string) {
	v.Check(v.CheckStringLength(subheader, 0, maxSubheaderLength), "subheader", fmt.Sprintf("must not be more than %d characters long", maxSubheaderLength))
}

func validateItems(v *common.Validator, items []ItemInput) {
	for i, item := range items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

		switch item.Kind {
		case ItemKindText:
			v.Check(item.Text != "", field("text"), "must be provided")
			v.Check(v.CheckStringLength(item.Text, 0, maxTextLength), field("text"), fmt.Sprintf("must not be more than %d characters long", maxTextLength))
			v.Check(item.Style == TextStyleHeading || item.Style == TextStyleParagraph, field("style"), "must be heading or paragraph")
		case ItemKindImage:
			v.Check(item.FileName != "", field("file_name"), "must be provided")
			v.Check(v.CheckStringLength(item.Alt, 0, maxAltLength), field("alt"), fmt.Sprintf("must not be more than %d characters long", maxAltLength))
			v.Check(v.CheckStringLength(item.Description, 0, maxDescriptionLength), field("description"), fmt.Sprintf("must not be more than %d characters long", maxDescriptionLength))
		default:
			v.AddError(field("kind"), "must be text or image")
		}
	}
}
