package message

import (
	"context"
	"embed"

	"github.com/oafilali/buy01/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewCatalog returns a translator over the bundled locales (en, sv). Keys
// mirror the ones Resolver looks up, so
//
//	tr, err := message.NewCatalog(ctx)
//	r := message.NewResolver(message.WithTranslator(tr, tr.Match("sv-SE")))
//
// resolves Swedish text and falls back to English for anything missing.
func NewCatalog(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"), opts...)
}
