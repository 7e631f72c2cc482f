package validator

import (
	"fmt"
	"unicode/utf8"
)

// Required validates that a string value is present. Whitespace counts as a
// value, matching how form controls treat it.
func Required(field, value string) Rule {
	return newRule(
		func() bool { return value != "" },
		ValidationError{
			Field:          field,
			Kind:           KindRequired,
			Code:           CodeRequired,
			Message:        fmt.Sprintf("%s is required", label(field)),
			TranslationKey: "validation.required",
		},
	)
}

// MinLen validates the minimum length in characters. Empty values pass; combine
// with Required when the field is mandatory.
func MinLen(field, value string, min int) Rule {
	actual := utf8.RuneCountInString(value)
	return newRule(
		func() bool { return value == "" || actual >= min },
		ValidationError{
			Field:          field,
			Kind:           KindTooShort,
			Code:           CodeMinLength,
			Message:        fmt.Sprintf("%s must be at least %d characters", label(field), min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"requiredLength": min,
				"actualLength":   actual,
			},
		},
	)
}

// MaxLen validates the maximum length in characters.
func MaxLen(field, value string, max int) Rule {
	actual := utf8.RuneCountInString(value)
	return newRule(
		func() bool { return actual <= max },
		ValidationError{
			Field:          field,
			Kind:           KindTooLong,
			Code:           CodeMaxLength,
			Message:        fmt.Sprintf("%s must not exceed %d characters", label(field), max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"requiredLength": max,
				"actualLength":   actual,
			},
		},
	)
}
