package i18n

import (
	"context"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/validator"
)

// Translator serves resources loaded from a TranslationAdapter.
//
// Lookups fall back per key: the requested language first, then its base
// language ("ru-RU" to "ru"), then the default language. The whole resource
// set is swapped atomically by Reload, so readers never see a partial update.
type Translator struct {
	resources      Resources
	langIndex      map[string]string
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
// Resources are loaded once before returning.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches resources from the adapter and replaces the current set.
// On error the previous resources stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	res, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if res == nil {
		res = make(Resources)
	}

	if err := t.validateResources(ctx, res); err != nil {
		return err
	}

	index := make(map[string]string, len(res))
	for lang := range res {
		index[strings.ToLower(lang)] = lang
	}

	t.mu.Lock()
	t.resources = res
	t.langIndex = index
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "Resources loaded",
		slog.Any("languages", sortedKeys(res)),
		slog.Int("entries", res.Len()),
	)
	return nil
}

func (t *Translator) validateResources(ctx context.Context, res Resources) error {
	if len(res) == 0 {
		t.logger.WarnContext(ctx, "No resources provided")
		return nil
	}
	for lang := range res {
		if lang == "" {
			return ErrEmptyLang
		}
	}
	return nil
}

// DefaultLanguage returns the language used as the last fallback.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return sortedKeys(t.resources)
}

// chain returns the loaded languages consulted for lang, most specific first.
// Callers must hold the read lock.
func (t *Translator) chain(lang string) []string {
	out := make([]string, 0, 3)
	add := func(l string) {
		if stored, ok := t.langIndex[strings.ToLower(l)]; ok && !slices.Contains(out, stored) {
			out = append(out, stored)
		}
	}

	if lang != "" {
		add(lang)
		if idx := strings.IndexAny(lang, "-_"); idx > 0 {
			add(lang[:idx])
		}
	}
	add(t.defaultLang)
	return out
}

// ResolveLanguage returns the most specific loaded language serving lang,
// or the default language when none is loaded.
func (t *Translator) ResolveLanguage(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if chain := t.chain(lang); len(chain) > 0 {
		return chain[0]
	}
	return t.defaultLang
}

// MatchLanguage negotiates a culture string such as "ru-RU" or a full
// Accept-Language value against the loaded languages.
func (t *Translator) MatchLanguage(culture string) string {
	return MatchLanguage(culture, t.SupportedLanguages(), t.defaultLang)
}

// Lookup returns the value of key in section for lang.
func (t *Translator) Lookup(lang, section, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range t.chain(lang) {
		if v, ok := t.resources[l][section][key]; ok {
			return v, true
		}
	}
	return "", false
}

// HasTranslation checks if a value exists for the given language, section and key.
func (t *Translator) HasTranslation(lang, section, key string) bool {
	_, ok := t.Lookup(lang, section, key)
	return ok
}

// Section returns a live validator.Lookup over one section.
// Every Get consults the current resources, so a Reload is visible immediately.
func (t *Translator) Section(lang, section string) validator.Lookup {
	return validator.LookupFunc(func(key string) (string, bool) {
		return t.Lookup(lang, section, key)
	})
}

// Sections returns every section visible to lang with fallbacks applied,
// i.e. exactly what Lookup would answer for each key.
func (t *Translator) Sections(lang string) map[string]map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	chain := t.chain(lang)
	merged := make(Resources, 1)
	for i := len(chain) - 1; i >= 0; i-- {
		for section, keys := range t.resources[chain[i]] {
			for key, value := range keys {
				merged.Set(lang, section, key, value)
			}
		}
	}

	out := merged[lang]
	if out == nil {
		out = make(map[string]map[string]string)
	}
	return out
}

// splitKey splits "section.key" at the first dot.
func splitKey(key string) (string, string) {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return "", key
	}
	return section, name
}

// buildParams converts a slice of strings (expected as key, value, key, value, …)
// into a map. If the number of arguments is odd, the last one is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes "%{key}" placeholders; unknown ones are kept.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates "section.key" for the given language.
// Arguments are key-value pairs substituted into "%{name}" placeholders:
//
//	// account.RegisteredMessage: "%{name}, you have been registered"
//	msg := tr.T("en", "account.RegisteredMessage", "name", "John")
//
// A missing key yields the key itself, or "" when WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	section, name := splitKey(key)
	if val, ok := t.Lookup(lang, section, name); ok {
		return namedSprintf(val, args)
	}

	if t.missingLogMode {
		t.logger.Warn("Translation not found", logger.Lang(lang), logger.Section(section), slog.String("key", name))
	}
	if t.fallbackToKey {
		return namedSprintf(key, args)
	}
	return ""
}

// Tc translates a key using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
