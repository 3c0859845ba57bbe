package validator

import (
	"fmt"
	"unicode/utf8"
)

// Length validates that a string has between min and max characters,
// inclusive. Characters are Unicode code points, not bytes.
func Length(value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: Violation{
			Code:           "length",
			Params:         Params{{"min", min}, {"max", max}, {"value", value}},
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.length",
		},
	}
}
