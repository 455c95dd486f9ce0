package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// maxLangCodeLength is the maximum allowed length for a language code
const maxLangCodeLength = 35 // RFC 5646 recommends 35 characters max

// langValidator validates and normalizes language codes
type langValidator struct {
	supportedLangs []string
}

func newLangValidator(supportedLangs []string) *langValidator {
	normalized := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		normalized[i] = strings.ToLower(lang)
	}
	return &langValidator{supportedLangs: normalized}
}

// validate returns the normalized code, its supported base language, or "".
// Underscores are accepted as region separators ("ru_RU").
func (v *langValidator) validate(lang string) string {
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}

	normalizedLang := strings.ToLower(strings.ReplaceAll(lang, "_", "-"))

	if len(v.supportedLangs) == 0 {
		return normalizedLang
	}

	if slices.Contains(v.supportedLangs, normalizedLang) {
		return normalizedLang
	}
	if idx := strings.Index(normalizedLang, "-"); idx > 0 {
		baseLang := normalizedLang[:idx]
		if slices.Contains(v.supportedLangs, baseLang) {
			return baseLang
		}
	}
	return ""
}

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages sets the list of supported languages for validation
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor creates a language extractor that checks, in order:
//  1. Cookie (default name: "lang")
//  2. Query parameter (default name: "culture")
//  3. Language header
//  4. Accept-Language header
//
// The first valid value wins. With SupportedLangs set, values are narrowed to a
// supported language or its base; unsupported values are skipped.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "culture",
	}

	for _, opt := range opts {
		opt(config)
	}

	validator := newLangValidator(config.SupportedLangs)

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if validated := validator.validate(strings.TrimSpace(cookie.Value)); validated != "" {
					return validated
				}
			}
		}

		if config.QueryParamName != "" {
			if validated := validator.validate(strings.TrimSpace(r.URL.Query().Get(config.QueryParamName))); validated != "" {
				return validated
			}
		}

		if validated := validator.validate(strings.TrimSpace(r.Header.Get("Language"))); validated != "" {
			return validated
		}

		acceptLang := r.Header.Get("Accept-Language")
		if acceptLang == "" {
			return ""
		}
		if len(config.SupportedLangs) > 0 {
			return ParseAcceptLanguage(acceptLang, config.SupportedLangs, "")
		}
		if langs := parseAcceptLanguageHeader(acceptLang); len(langs) > 0 {
			return langs[0].lang
		}
		return ""
	}
}

// TranslatorLangExtractor is DefaultLangExtractor restricted to the languages
// currently loaded by t. The list is re-read per request so a Reload that adds
// a language is picked up without rebuilding the middleware.
func TranslatorLangExtractor(t *Translator, opts ...ExtractorOption) LangExtractor {
	return func(r *http.Request) string {
		langs := t.SupportedLanguages()
		return DefaultLangExtractor(append(opts, WithSupportedLanguages(langs...))...)(r)
	}
}
