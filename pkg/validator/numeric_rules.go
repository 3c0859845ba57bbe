package validator

import "fmt"

// Range validates that a numeric value is at least min and, when max is
// given, at most max. Only the first max value is used.
func Range[T Numeric](value T, min T, max ...T) Rule {
	if len(max) == 0 {
		return Rule{
			Check: func() bool {
				return value >= min
			},
			Error: Violation{
				Code:           "range",
				Params:         Params{{"min", min}, {"value", value}},
				Message:        fmt.Sprintf("must be at least %v", min),
				TranslationKey: "validation.min",
			},
		}
	}

	upper := max[0]
	return Rule{
		Check: func() bool {
			return value >= min && value <= upper
		},
		Error: Violation{
			Code:           "range",
			Params:         Params{{"min", min}, {"max", upper}, {"value", value}},
			Message:        fmt.Sprintf("must be between %v and %v", min, upper),
			TranslationKey: "validation.range",
		},
	}
}
