// Package i18n is the keyed string store that validation rules, messages and
// display names are read from.
//
// Resources are organised as language, section and key. A section groups the
// entries of one form or resource file, e.g. "account", and is handed to the
// validator as a validator.Lookup:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewDirectoryAdapter("resources"))
//	if err != nil {
//		return err
//	}
//	v := validator.New(tr.Section("ru-RU", "account"))
//
// # Sources
//
// A TranslationAdapter produces the complete resource set. This package ships
// MapAdapter, FileAdapter (one document laid out lang => section => key) and
// FSAdapter (one file per section, laid out lang => key; works with os.DirFS
// and embed.FS). Database and object-store adapters live in pkg/redis, pkg/pg,
// pkg/mongo and pkg/s3store. JSON and YAML documents are supported; scalars are
// stored as strings, null becomes "" and lists are joined with ",".
//
// # Language fallback
//
// Every lookup walks the requested language, its base language and the default
// language, per key. Sections returns the merged view used for client dumps.
//
// # Reloading
//
// Reload re-reads the adapter and swaps the resource set under a write lock.
// Lookups obtained from Section are live and observe the new values at once.
//
// # HTTP
//
// Middleware stores the request language in the context using a LangExtractor
// (cookie, "culture" query parameter, Language header, Accept-Language).
// GetLocale reads it back and Translator.Tc translates with it.
package i18n
