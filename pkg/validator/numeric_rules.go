package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value T, min T) Rule {
	return newRule(
		func() bool { return value >= min },
		ValidationError{
			Field:          field,
			Kind:           KindBelowMinimum,
			Code:           CodeMin,
			Message:        fmt.Sprintf("%s must be at least %v", label(field), min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"min":    min,
				"actual": value,
			},
		},
	)
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value T, max T) Rule {
	return newRule(
		func() bool { return value <= max },
		ValidationError{
			Field:          field,
			Kind:           KindAboveMaximum,
			Code:           CodeMax,
			Message:        fmt.Sprintf("%s must not exceed %v", label(field), max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"max":    max,
				"actual": value,
			},
		},
	)
}
