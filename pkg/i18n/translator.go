package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/oafilali/buy01/pkg/logger"
)

// DefaultLanguage is used when no other language is configured or matched.
const DefaultLanguage = "en"

// Translator looks up dotted keys in per-language translation trees and
// substitutes %{name} placeholders. It is safe for concurrent use.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	languages     []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	adapter       TranslationAdapter
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	for lang, values := range translations {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if values == nil {
			return fmt.Errorf("%w: nil translations for %q", ErrInvalidStructure, lang)
		}
	}

	languages := make([]string, 0, len(translations))
	for lang := range translations {
		languages = append(languages, lang)
	}
	slices.Sort(languages)

	t.mu.Lock()
	t.translations = translations
	t.languages = languages
	t.matcher = newMatcher(t.defaultLang, languages)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", languages))
	return nil
}

// newMatcher puts the default language first so it wins when nothing matches.
func newMatcher(defaultLang string, languages []string) language.Matcher {
	tags := []language.Tag{language.Make(defaultLang)}
	for _, lang := range languages {
		if lang == defaultLang {
			continue
		}
		tags = append(tags, language.Make(lang))
	}
	return language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match maps a language tag or an Accept-Language header value onto the
// closest loaded language, so "sv-AX" resolves to "sv". Unknown or malformed
// input yields the default language.
func (t *Translator) Match(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return t.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No || idx == 0 {
		return t.defaultLang
	}

	// Index 0 is the default; the rest follow t.languages minus the default.
	i := 0
	for _, l := range t.languages {
		if l == t.defaultLang {
			continue
		}
		i++
		if i == idx {
			return l
		}
	}
	return t.defaultLang
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. Extra args are name/value pairs substituted
// into %{name} placeholders; an odd trailing arg is ignored.
//
//	// "validation.required": "%{field} is required"
//	tr.T("en", "validation.required", "field", "Email") // "Email is required"
//
// When the key is missing T returns the key itself, or "" when
// WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	tmpl, ok := t.lookup(lang, key)
	t.mu.RUnlock()

	if !ok {
		t.missing(lang, key)
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return interpolate(tmpl, args)
}

// Td is T with an explicit default template used when key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	tmpl, ok := t.lookup(lang, key)
	t.mu.RUnlock()

	if !ok {
		t.missing(lang, key)
		tmpl = defaultValue
	}
	return interpolate(tmpl, args)
}

func (t *Translator) missing(lang, key string) {
	if t.logMissing {
		t.logger.Warn("translation not found", logger.Lang(lang), slog.String("key", key))
	}
}

// lookup walks a dotted key through nested maps. Callers hold the read lock.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}

	switch v := current[parts[len(parts)-1]].(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} with the matching value from name/value
// pairs. Unknown placeholders are kept as is.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
