package commentservice

import (
	"fmt"

	"github.com/okuznetsov/blogware/internal/common"
)

const maxTextLength = 2000

func validateText(v *common.Validator, text string) {
	v.Check(text != "", "text", "must be provided")
	v.Check(v.CheckStringLength(text, 0, maxTextLength), "text", fmt.Sprintf("must not be more than %d characters long", maxTextLength))
}
