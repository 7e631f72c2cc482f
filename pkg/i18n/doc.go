// Package i18n translates dotted message keys into localized strings.
//
// A Translator loads its data once through a TranslationAdapter: MapAdapter
// for in-memory tables, FSAdapter for a directory inside any fs.FS (embed.FS
// for bundled locales, os.DirFS for files on disk). Files are parsed by
// extension with YAMLParser or JSONParser and must be keyed by language at
// the top level:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//
// Lookups walk the nested maps ("validation.required") and substitute
// %{name} placeholders from name/value argument pairs:
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"))
//	if err != nil {
//	    return err
//	}
//	lang := tr.Match("sv-AX,sv;q=0.9,en;q=0.5") // "sv"
//	msg := tr.T(lang, "validation.required", "field", "E-post")
//
// Match uses golang.org/x/text/language, so regional variants fall back to
// their base language and anything unsupported yields the default language.
// Missing keys return the key itself unless WithFallbackToKey(false) is set;
// Td takes an explicit default instead.
package i18n
