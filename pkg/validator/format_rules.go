package validator

import (
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	formatValidator     *playground.Validate
	formatValidatorOnce sync.Once
)

// formats returns the shared go-playground instance used for format checks.
// It is safe for concurrent use.
func formats() *playground.Validate {
	formatValidatorOnce.Do(func() {
		formatValidator = playground.New(playground.WithRequiredStructEnabled())
	})
	return formatValidator
}

// Email validates that a string is a single-@ address with a non-empty local
// part and domain, in the RFC 5322 shape.
func Email(value string) Rule {
	return Rule{
		Check: func() bool {
			local, domain, ok := strings.Cut(value, "@")
			if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
				return false
			}
			return formats().Var(value, "email") == nil
		},
		Error: Violation{
			Code:           "email",
			Params:         Params{{"value", value}},
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}
}
