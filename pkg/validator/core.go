package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ErrorKind is the closed category of a validation failure.
type ErrorKind string

const (
	KindRequired            ErrorKind = "required"
	KindInvalidFormat       ErrorKind = "invalid_format"
	KindBelowMinimum        ErrorKind = "below_minimum"
	KindAboveMaximum        ErrorKind = "above_maximum"
	KindTooManyDecimals     ErrorKind = "too_many_decimals"
	KindTooShort            ErrorKind = "too_short"
	KindTooLong             ErrorKind = "too_long"
	KindPatternMismatch     ErrorKind = "pattern_mismatch"
	KindMismatch            ErrorKind = "mismatch"
	KindFileTooLarge        ErrorKind = "file_too_large"
	KindUnsupportedFileType ErrorKind = "unsupported_file_type"
)

// Rule codes identify the rule that produced an error. Two rules may share a
// kind (email and price both report invalid_format), the code tells them apart.
const (
	CodeRequired            = "required"
	CodeEmail               = "email"
	CodeMinLength           = "minlength"
	CodeMaxLength           = "maxlength"
	CodeMin                 = "min"
	CodeMax                 = "max"
	CodePattern             = "pattern"
	CodeInvalidPrice        = "invalid_price"
	CodeMinPrice            = "min_price"
	CodeMaxPrice            = "max_price"
	CodeMaxDecimals         = "max_decimals"
	CodeMismatch            = "mismatch"
	CodePasswordMismatch    = "password_mismatch"
	CodeFileTooLarge        = "file_too_large"
	CodeUnsupportedFileType = "unsupported_file_type"
)

// ValidationError represents a single validation error with translation support.
// Message is precomputed so the error is self-describing without a resolver pass.
type ValidationError struct {
	Field             string         `json:"field"`
	Kind              ErrorKind      `json:"kind"`
	Code              string         `json:"code"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"translation_key,omitempty"`
	TranslationValues map[string]any `json:"params,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Param returns the named parameter of the error, nil when absent.
func (e ValidationError) Param(name string) any {
	if e.TranslationValues == nil {
		return nil
	}
	return e.TranslationValues[name]
}

// ValidationErrors represents a collection of validation errors.
// An empty collection means the value is valid.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed so callers can use errors.Is without knowing
// the concrete type.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any error was produced by the rule with the given code.
func (ve ValidationErrors) HasCode(code string) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// ForField returns the error set of a single field, preserving order.
func (ve ValidationErrors) ForField(field string) ValidationErrors {
	var errs ValidationErrors
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	return ve.ForField(field)
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule evaluates a candidate value and reports the errors it produces.
// Rules are pure: evaluating the same rule twice yields the same result.
type Rule func() ValidationErrors

// newRule adapts a boolean check into a Rule that reports err when check fails.
func newRule(check func() bool, err ValidationError) Rule {
	return func() ValidationErrors {
		if check() {
			return nil
		}
		return ValidationErrors{err}
	}
}

// Collect evaluates every rule in order and returns all reported errors.
func Collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		errs = append(errs, rule()...)
	}
	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Collect(rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// FormatFieldName turns a camelCase field identifier into a display label:
// a space goes before every ASCII uppercase letter and the first character is
// capitalized, so "confirmPassword" becomes "Confirm Password".
func FormatFieldName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	spaced := b.String()
	first, size := utf8.DecodeRuneInString(spaced)
	if size == 0 {
		return ""
	}
	return strings.TrimSpace(string(unicode.ToUpper(first)) + spaced[size:])
}

// label returns the display label used in default messages.
func label(field string) string {
	if field == "" {
		return "This field"
	}
	return FormatFieldName(field)
}
