package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/validator"
)

func testResources() i18n.Resources {
	return i18n.Resources{
		"en": {
			"account": {
				"NameRequired":        "",
				"NameRequiredMessage": "{0} is required",
				"NameDisplayName":     "Name",
				"AgeRange":            "18-150",
				"AgeRangeMessage":     "{0} must be within {1}",
				"RegisteredMessage":   "%{name}, you have been registered",
			},
			"common": {"Yes": "Yes"},
		},
		"ru": {
			"account": {
				"NameRequiredMessage": "Поле {0} обязательно",
				"NameDisplayName":     "Имя",
			},
		},
		"ru-UA": {
			"account": {"NameDisplayName": "Ім'я"},
		},
	}
}

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: testResources()}, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("adapter error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := i18n.NewTranslator(context.Background(), i18n.AdapterFunc(func(context.Context) (i18n.Resources, error) {
			return nil, boom
		}))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: i18n.Resources{"": {}}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLang)
	})

	t.Run("empty adapter is allowed", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})

	t.Run("logs load", func(t *testing.T) {
		buf := &bytes.Buffer{}
		newTestTranslator(t, i18n.WithLogger(logger.New(logger.WithOutput(buf))))
		assert.Contains(t, buf.String(), "Resources loaded")
		assert.Contains(t, buf.String(), `"entries":10`)
	})
}

func TestTranslator_SupportedLanguages(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)
	assert.Equal(t, []string{"en", "ru", "ru-UA"}, tr.SupportedLanguages())
	assert.Equal(t, "en", tr.DefaultLanguage())
}

func TestTranslator_Lookup(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tests := []struct {
		name    string
		lang    string
		section string
		key     string
		want    string
		found   bool
	}{
		{"exact", "ru", "account", "NameDisplayName", "Имя", true},
		{"region specific", "ru-UA", "account", "NameDisplayName", "Ім'я", true},
		{"region case insensitive", "RU-ua", "account", "NameDisplayName", "Ім'я", true},
		{"region falls back to base", "ru-UA", "account", "NameRequiredMessage", "Поле {0} обязательно", true},
		{"unknown region uses base", "ru-RU", "account", "NameDisplayName", "Имя", true},
		{"underscore region", "ru_RU", "account", "NameDisplayName", "Имя", true},
		{"base falls back to default", "ru", "account", "AgeRange", "18-150", true},
		{"unknown language uses default", "de", "account", "NameDisplayName", "Name", true},
		{"empty language uses default", "", "common", "Yes", "Yes", true},
		{"empty value is present", "ru", "account", "NameRequired", "", true},
		{"missing key", "en", "account", "Nope", "", false},
		{"missing section", "en", "billing", "NameDisplayName", "", false},
		{"keys are case sensitive", "en", "account", "namedisplayname", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Lookup(tt.lang, tt.section, tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, tr.HasTranslation(tt.lang, tt.section, tt.key))
		})
	}
}

func TestTranslator_ResolveLanguage(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "ru-UA", tr.ResolveLanguage("ru-ua"))
	assert.Equal(t, "ru", tr.ResolveLanguage("ru-RU"))
	assert.Equal(t, "en", tr.ResolveLanguage("fr"))

	empty, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{}, i18n.WithDefaultLanguage("de"))
	require.NoError(t, err)
	assert.Equal(t, "de", empty.ResolveLanguage("fr"))
}

func TestTranslator_MatchLanguage(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "ru", tr.MatchLanguage("ru-RU"))
	assert.Equal(t, "en", tr.MatchLanguage("ja"))
	assert.Equal(t, "en", tr.MatchLanguage(""))
}

func TestTranslator_Section(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	v := validator.New(tr.Section("ru-RU", "account"))
	ok, msg := v.IsValid("Name", "")
	assert.False(t, ok)
	assert.Equal(t, "Поле Имя обязательно", msg)

	ok, msg = v.IsValid("Age", "12")
	assert.False(t, ok)
	assert.Equal(t, "AgeDisplayName must be within 18-150", msg)

	ok, _ = validator.New(tr.Section("en", "common")).IsValid("Name", "")
	assert.True(t, ok)
}

func TestTranslator_Sections(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	sections := tr.Sections("ru-UA")
	require.Contains(t, sections, "account")
	require.Contains(t, sections, "common")
	assert.Equal(t, "Ім'я", sections["account"]["NameDisplayName"])
	assert.Equal(t, "Поле {0} обязательно", sections["account"]["NameRequiredMessage"])
	assert.Equal(t, "18-150", sections["account"]["AgeRange"])
	assert.Equal(t, "Yes", sections["common"]["Yes"])

	t.Run("result is a copy", func(t *testing.T) {
		sections["account"]["NameDisplayName"] = "changed"
		got, _ := tr.Lookup("ru-UA", "account", "NameDisplayName")
		assert.Equal(t, "Ім'я", got)
	})

	t.Run("empty store", func(t *testing.T) {
		empty, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.NotNil(t, empty.Sections("en"))
		assert.Empty(t, empty.Sections("en"))
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	assert.Equal(t, "John, you have been registered", tr.T("en", "account.RegisteredMessage", "name", "John"))
	assert.Equal(t, "John, you have been registered", tr.T("ru", "account.RegisteredMessage", "name", "John"))
	assert.Equal(t, "%{name}, you have been registered", tr.T("en", "account.RegisteredMessage"))
	assert.Equal(t, "%{name}, you have been registered", tr.T("en", "account.RegisteredMessage", "other", "x"))
	assert.Equal(t, "account.Unknown", tr.T("en", "account.Unknown"))
	assert.Equal(t, "nodot", tr.T("en", "nodot"))

	t.Run("without key fallback", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "account.Unknown"))
	})

	t.Run("logs missing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logged := newTestTranslator(t,
			i18n.WithLogger(logger.New(logger.WithOutput(buf))),
			i18n.WithMissingTranslationsLogging(true),
		)
		logged.T("ru", "account.Unknown")
		assert.Contains(t, buf.String(), "Translation not found")
		assert.Contains(t, buf.String(), `"section":"account"`)
	})

	t.Run("context language", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "ru")
		assert.Equal(t, "Имя", tr.Tc(ctx, "account.NameDisplayName"))
	})
}

func TestTranslator_Reload(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		data = testResources()
		fail error
	)
	adapter := i18n.AdapterFunc(func(context.Context) (i18n.Resources, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail != nil {
			return nil, fail
		}
		return data.Clone(), nil
	})

	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	section := tr.Section("en", "account")
	v := validator.New(section)
	ok, _ := v.IsValid("Email", "")
	assert.True(t, ok)

	mu.Lock()
	data.Set("en", "account", "EmailRequired", "")
	data.Set("en", "account", "EmailRequiredMessage", "Email please")
	mu.Unlock()

	require.NoError(t, tr.Reload(context.Background()))
	ok, msg := v.IsValid("Email", "")
	assert.False(t, ok)
	assert.Equal(t, "Email please", msg)

	t.Run("failed reload keeps previous resources", func(t *testing.T) {
		mu.Lock()
		fail = errors.New("source down")
		mu.Unlock()

		assert.Error(t, tr.Reload(context.Background()))
		got, ok := section.Get("EmailRequiredMessage")
		assert.True(t, ok)
		assert.Equal(t, "Email please", got)
	})
}

func TestTranslator_ConcurrentReload(t *testing.T) {
	t.Parallel()

	tr := newTestTranslator(t)
	lookup := tr.Section("ru", "account")

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				assert.NoError(t, tr.Reload(context.Background()))
				return
			}
			got, ok := lookup.Get("NameDisplayName")
			assert.True(t, ok)
			assert.Equal(t, "Имя", got)
		}(i)
	}
	wg.Wait()
}
