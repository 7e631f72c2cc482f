package message

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/oafilali/buy01/pkg/validator"
)

// Translator is the lookup a Resolver localizes through. *i18n.Translator
// satisfies it.
type Translator interface {
	HasTranslation(lang, key string) bool
	T(lang, key string, args ...string) string
}

// Resolver turns validation errors and request failures into user-facing
// text. The zero value resolves to built-in English. With a Translator it
// prefers the translation for its language and falls back to English for
// missing keys.
type Resolver struct {
	tr   Translator
	lang string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTranslator localizes messages through tr in lang.
func WithTranslator(tr Translator, lang string) Option {
	return func(r *Resolver) {
		r.tr = tr
		r.lang = lang
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Language returns the language messages are resolved in, "" for built-in English.
func (r *Resolver) Language() string {
	return r.lang
}

// WithLanguage returns a copy of r resolving in lang.
func (r *Resolver) WithLanguage(lang string) *Resolver {
	c := *r
	c.lang = lang
	return &c
}

// text returns the translation of key when one exists, otherwise english.
func (r *Resolver) text(key, english string, args ...string) string {
	if r.tr != nil && key != "" && r.tr.HasTranslation(r.lang, key) {
		return r.tr.T(r.lang, key, args...)
	}
	return english
}

// fieldPriority is the order error codes are considered in. General purpose
// rules come before domain rules.
var fieldPriority = []string{
	validator.CodeRequired,
	validator.CodeEmail,
	validator.CodeMinLength,
	validator.CodeMaxLength,
	validator.CodeMin,
	validator.CodeMax,
	validator.CodePattern,
	validator.CodeInvalidPrice,
	validator.CodeMinPrice,
	validator.CodeMaxPrice,
	validator.CodeMaxDecimals,
	validator.CodeMismatch,
	validator.CodePasswordMismatch,
}

// Field resolves the error set of one field to a single message. errs is
// treated as belonging to field, which only provides the label ("This field"
// when empty). The first code present in priority order wins; an empty set
// yields "".
func (r *Resolver) Field(errs validator.ValidationErrors, field string) string {
	if len(errs) == 0 {
		return ""
	}

	label := "This field"
	if field != "" {
		label = validator.FormatFieldName(field)
	}

	for _, code := range fieldPriority {
		i := slices.IndexFunc(errs, func(e validator.ValidationError) bool { return e.Code == code })
		if i < 0 {
			continue
		}
		if msg, ok := r.fieldMessage(errs[i], label); ok {
			return msg
		}
	}

	return r.invalid(label)
}

// Message resolves a single error on its own terms: its translation or its
// message, and "{field} is invalid" when it carries neither. Use it for errors
// whose code is outside the field priority, such as file constraints.
func (r *Resolver) Message(e validator.ValidationError) string {
	label := "This field"
	if e.Field != "" {
		label = validator.FormatFieldName(e.Field)
	}
	if msg, ok := r.fieldMessage(e, label); ok {
		return msg
	}
	return r.invalid(label)
}

func (r *Resolver) invalid(label string) string {
	return r.text("validation.invalid", label+" is invalid", "field", label)
}

func (r *Resolver) fieldMessage(e validator.ValidationError, label string) (string, bool) {
	switch e.Code {
	case validator.CodeRequired:
		return r.text("validation.required", label+" is required", "field", label), true
	case validator.CodeEmail:
		return r.text("validation.email", "Please enter a valid email address", "field", label), true
	case validator.CodeMinLength:
		n := paramString(e.Param("requiredLength"))
		return r.text("validation.min_length",
			fmt.Sprintf("%s must be at least %s characters", label, n),
			"field", label, "requiredLength", n), true
	case validator.CodeMaxLength:
		n := paramString(e.Param("requiredLength"))
		return r.text("validation.max_length",
			fmt.Sprintf("%s must not exceed %s characters", label, n),
			"field", label, "requiredLength", n), true
	case validator.CodeMin:
		n := paramString(e.Param("min"))
		return r.text("validation.min", fmt.Sprintf("%s must be at least %s", label, n), "field", label, "min", n), true
	case validator.CodeMax:
		n := paramString(e.Param("max"))
		return r.text("validation.max", fmt.Sprintf("%s must not exceed %s", label, n), "field", label, "max", n), true
	case validator.CodePattern:
		return r.text("validation.pattern", label+" has an invalid format", "field", label), true
	}

	if e.Message == "" {
		return "", false
	}
	return r.custom(e, label), true
}

// custom localizes an error that carries its own message.
func (r *Resolver) custom(e validator.ValidationError, label string) string {
	args := []string{"field", label}
	for _, name := range slices.Sorted(maps.Keys(e.TranslationValues)) {
		args = append(args, name, paramString(e.TranslationValues[name]))
	}
	return r.text(e.TranslationKey, e.Message, args...)
}

// Fields resolves every failing field to its message.
func (r *Resolver) Fields(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, field := range errs.Fields() {
		out[field] = r.Field(errs.ForField(field), field)
	}
	return out
}

// HTTP resolves a request failure. For 400, 404, 409, 422 and other 4xx
// statuses a non-empty server message replaces the default text.
func (r *Resolver) HTTP(f Failure) string {
	override := func(key, english string) string {
		if f.ServerMessage != "" {
			return f.ServerMessage
		}
		return r.text(key, english)
	}

	switch f.Status {
	case 0:
		return r.text("http.network", "Unable to connect to the server. Please check your internet connection.")
	case 400:
		return override("http.bad_request", "Invalid request. Please check your input.")
	case 401:
		return r.text("http.unauthorized", "You are not authenticated. Please login to continue.")
	case 403:
		return r.text("http.forbidden", "You do not have permission to access this resource.")
	case 404:
		return override("http.not_found", "The requested resource was not found.")
	case 409:
		return override("http.conflict", "A conflict occurred. This resource may already exist.")
	case 422:
		return override("http.unprocessable", "Validation failed. Please check your input.")
	case 500:
		return r.text("http.internal", "Internal server error. Please try again later.")
	case 503:
		return r.text("http.unavailable", "Service temporarily unavailable. Please try again later.")
	}

	switch {
	case f.Status >= 500:
		return r.text("http.server", "Server error. Please try again later.")
	case f.Status >= 400:
		return override("http.client", "An error occurred while processing your request.")
	default:
		return r.text("http.unexpected", "An unexpected error occurred")
	}
}

// Client resolves a non-HTTP error message by case-sensitive substring
// match, first match wins.
func (r *Resolver) Client(raw string) string {
	switch {
	case strings.Contains(raw, "Network"):
		return r.text("client.network", "Network error. Please check your connection.")
	case strings.Contains(raw, "timeout"):
		return r.text("client.timeout", "Request timed out. Please try again.")
	case strings.Contains(raw, "quota"):
		return r.text("client.quota", "Storage quota exceeded. Please clear some space.")
	case strings.Contains(raw, "permission"):
		return r.text("client.permission", "Permission denied. Please check your settings.")
	default:
		return r.text("client.generic", "Something went wrong. Please try again.")
	}
}

// Error resolves any error: a wrapped *Failure goes through HTTP, validation
// errors through Field on their first field, anything else through Client.
// Nil yields "".
func (r *Resolver) Error(err error) string {
	if err == nil {
		return ""
	}

	var f *Failure
	if errors.As(err, &f) {
		return r.HTTP(*f)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0].Field
		return r.Field(ve.ForField(field), field)
	}

	return r.Client(err.Error())
}

// paramString renders a rule parameter for display.
func paramString(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(p), 'f', -1, 32)
	case []string:
		return strings.Join(p, ", ")
	default:
		return fmt.Sprint(p)
	}
}

var std = NewResolver()

// Field resolves a field's errors in built-in English.
func Field(errs validator.ValidationErrors, field string) string { return std.Field(errs, field) }

// Message resolves a single error in built-in English.
func Message(e validator.ValidationError) string { return std.Message(e) }

// Fields resolves every failing field in built-in English.
func Fields(errs validator.ValidationErrors) map[string]string { return std.Fields(errs) }

// HTTP resolves a request failure in built-in English.
func HTTP(f Failure) string { return std.HTTP(f) }

// Client resolves a client-side error message in built-in English.
func Client(raw string) string { return std.Client(raw) }

// Error resolves any error in built-in English.
func Error(err error) string { return std.Error(err) }
