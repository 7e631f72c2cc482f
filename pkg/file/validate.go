package file

import (
	"fmt"
	"mime/multipart"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/oafilali/buy01/pkg/validator"
)

// Result is the outcome of checking a file against a profile.
type Result struct {
	Valid      bool                       `json:"valid"`
	Errors     []string                   `json:"errors"`
	Violations validator.ValidationErrors `json:"violations,omitempty"`
}

// First returns the message to show when only one slot is available, or ""
// for a valid file.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate checks d against p. Every violation is reported, size first, then
// MIME type.
//
// Example:
//
//	res := file.Validate(d, file.Avatar())
//	if !res.Valid {
//	    notify(res.First())
//	}
func Validate(d Descriptor, p Profile) Result {
	violations := Rule("file", d, p)()

	res := Result{Valid: violations.IsEmpty(), Errors: []string{}}
	for _, v := range violations {
		res.Errors = append(res.Errors, v.Message)
	}
	if !res.Valid {
		res.Violations = violations
	}
	return res
}

// ValidateHeader describes an uploaded file and validates it against p.
func ValidateHeader(fh *multipart.FileHeader, p Profile) (Result, error) {
	d, err := Describe(fh)
	if err != nil {
		return Result{}, err
	}
	return Validate(d, p), nil
}

// Rule adapts the profile checks to a validator.Rule reporting on field.
func Rule(field string, d Descriptor, p Profile) validator.Rule {
	return func() validator.ValidationErrors {
		var errs validator.ValidationErrors

		if d.Size > p.MaxSizeBytes {
			limit := humanize.IBytes(uint64(max(p.MaxSizeBytes, 0)))
			errs.Add(validator.ValidationError{
				Field:          field,
				Kind:           validator.KindFileTooLarge,
				Code:           validator.CodeFileTooLarge,
				Message:        fmt.Sprintf("File size must not exceed %s", limit),
				TranslationKey: "validation.file.too_large",
				TranslationValues: map[string]any{
					"maxSize":      limit,
					"maxSizeBytes": p.MaxSizeBytes,
					"actualSize":   d.Size,
				},
			})
		}

		if !p.Allows(d.MIMEType) {
			actual := normalizeMIMEType(d.MIMEType)
			if actual == "" {
				actual = "unknown"
			}
			errs.Add(validator.ValidationError{
				Field:          field,
				Kind:           validator.KindUnsupportedFileType,
				Code:           validator.CodeUnsupportedFileType,
				Message:        fmt.Sprintf("File type %s is not allowed. Allowed types: %s", actual, strings.Join(p.AllowedMIMETypes, ", ")),
				TranslationKey: "validation.file.unsupported_type",
				TranslationValues: map[string]any{
					"allowed": slices.Clone(p.AllowedMIMETypes),
					"actual":  actual,
				},
			})
		}

		return errs
	}
}
