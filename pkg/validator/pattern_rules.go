package validator

import (
	"fmt"
	"regexp"
)

// Pattern validates that the whole value matches re. Empty values and a nil
// pattern pass.
func Pattern(field, value string, re *regexp.Regexp) Rule {
	var pattern string
	var anchored *regexp.Regexp
	if re != nil {
		pattern = re.String()
		anchored = anchor(re)
	}
	return newRule(
		func() bool {
			if value == "" || anchored == nil {
				return true
			}
			return anchored.MatchString(value)
		},
		ValidationError{
			Field:          field,
			Kind:           KindPatternMismatch,
			Code:           CodePattern,
			Message:        fmt.Sprintf("%s has an invalid format", label(field)),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"requiredPattern": pattern,
				"actualValue":     value,
			},
		},
	)
}

// anchor wraps re so it must match the entire input.
func anchor(re *regexp.Regexp) *regexp.Regexp {
	anchored, err := regexp.Compile(`^(?:` + re.String() + `)$`)
	if err != nil {
		return re
	}
	return anchored
}
