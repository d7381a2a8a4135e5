// Package i18n owns the user-facing message catalog. Indonesian is the
// default locale, English the fallback translation; the per-request locale
// comes from Accept-Language via Middleware.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var bundle *goi18n.Bundle

type ctxKey struct{}

// Init builds the message bundle from the embedded locale files. Call once
// at startup before serving requests.
func Init() error {
	b := goi18n.NewBundle(language.Indonesian)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, f := range []string{"locales/active.id.json", "locales/active.en.json"} {
		if _, err := b.LoadMessageFileFS(localeFS, f); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

// Localizer returns a localizer preferring the given languages.
func Localizer(langs ...string) *goi18n.Localizer {
	return goi18n.NewLocalizer(bundle, langs...)
}

// Middleware resolves the request locale and stores a localizer in the
// request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := Localizer(r.Header.Get("Accept-Language"))
		ctx := context.WithValue(r.Context(), ctxKey{}, loc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// T translates a message id using the request's localizer. Outside a request
// (or before Init) it falls back to the default locale, and as a last resort
// to the message id itself so a missing translation never breaks a response.
func T(ctx context.Context, messageID string) string {
	loc, ok := ctx.Value(ctxKey{}).(*goi18n.Localizer)
	if !ok {
		if bundle == nil {
			return messageID
		}
		loc = Localizer()
	}
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
