package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
// Empty values pass; presence is the job of Required.
func ValidEmail(field, value string) Rule {
	return newRule(
		func() bool { return value == "" || isEmail(value) },
		ValidationError{
			Field:          field,
			Kind:           KindInvalidFormat,
			Code:           CodeEmail,
			Message:        "Please enter a valid email address",
			TranslationKey: "validation.email",
		},
	)
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// Reject display-name forms like "Bob <bob@example.com>"
	if addr.Address != value {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
