package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header we are willing to parse.
const maxAcceptLanguageLength = 4096

// langWithQ represents a language tag with its quality value
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader parses Accept-Language headers according to RFC 7231,
// ordered by quality. Malformed entries are skipped.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, _ := strings.Cut(part, ";")
		lang := strings.ToLower(strings.TrimSpace(tag))
		q := 1.0

		if qPart, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if qVal, err := strconv.ParseFloat(qPart, 64); err == nil && qVal >= 0 && qVal <= 1 {
				q = qVal
			}
		}

		if lang != "" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// ParseAcceptLanguage picks a supported language from an Accept-Language header.
// Exact matches win over base-language matches (en-US to en) regardless of quality.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	normalizedSupported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		normalizedSupported[i] = strings.ToLower(lang)
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(normalizedSupported, lq.lang) {
			return lq.lang
		}
	}

	for _, lq := range languages {
		if idx := strings.Index(lq.lang, "-"); idx > 0 {
			baseLang := lq.lang[:idx]
			if slices.Contains(normalizedSupported, baseLang) {
				return baseLang
			}
		}
	}

	return defaultLang
}

// MatchLanguage negotiates a culture ("ru-RU", "pt_BR" or a full
// Accept-Language value) against supported using BCP 47 matching.
// It returns the supported entry as spelled by the caller, or defaultLang.
func MatchLanguage(culture string, supported []string, defaultLang string) string {
	culture = strings.ReplaceAll(strings.TrimSpace(culture), "_", "-")
	if culture == "" || len(supported) == 0 {
		return defaultLang
	}

	desired, _, err := language.ParseAcceptLanguage(culture)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return names[idx]
}
