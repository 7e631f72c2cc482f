package validator

import (
	"fmt"
	"reflect"
)

// Form is a snapshot of a form's field values keyed by field name.
type Form map[string]any

// Match validates that two sibling values are equal. The error is attached to
// fieldB, the confirming field.
func Match[T comparable](fieldA string, a T, fieldB string, b T) Rule {
	return newRule(func() bool { return a == b }, mismatch(fieldA, fieldB))
}

// MatchFields validates that two fields of form hold equal values. When either
// field is missing from the form the rule cannot be evaluated and passes.
func MatchFields(form Form, fieldA, fieldB string) Rule {
	return func() ValidationErrors {
		a, okA := form[fieldA]
		b, okB := form[fieldB]
		if !okA || !okB {
			return nil
		}
		if equal(a, b) {
			return nil
		}
		return ValidationErrors{mismatch(fieldA, fieldB)}
	}
}

// PasswordConfirmation validates a new password against its confirmation. It
// only fires once both values are filled in.
func PasswordConfirmation(newField, newValue, confirmField, confirmValue string) Rule {
	return newRule(
		func() bool { return newValue == "" || confirmValue == "" || newValue == confirmValue },
		ValidationError{
			Field:          confirmField,
			Kind:           KindMismatch,
			Code:           CodePasswordMismatch,
			Message:        "Passwords do not match",
			TranslationKey: "validation.password_mismatch",
			TranslationValues: map[string]any{
				"field": newField,
				"other": confirmField,
			},
		},
	)
}

func mismatch(fieldA, fieldB string) ValidationError {
	labelA, labelB := FormatFieldName(fieldA), FormatFieldName(fieldB)
	return ValidationError{
		Field:          fieldB,
		Kind:           KindMismatch,
		Code:           CodeMismatch,
		Message:        fmt.Sprintf("%s and %s do not match", labelA, labelB),
		TranslationKey: "validation.mismatch",
		TranslationValues: map[string]any{
			"field": labelA,
			"other": labelB,
		},
	}
}

// equal compares deeply, so operands holding slices or maps at any depth
// never panic. Values of different dynamic types are never equal.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
