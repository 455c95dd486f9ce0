package i18n

import (
	"net/http"
)

// Middleware determines the client's preferred language with extr and stores it
// in the request context, where GetLocale and Translator.Tc read it.
// A nil extractor uses DefaultLangExtractor; an empty result becomes DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
