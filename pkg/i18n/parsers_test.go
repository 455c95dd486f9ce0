package i18n_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewJSONParser()

	t.Run("keeps number literals", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), `{"en": {"AgeMaxValue": 150, "Ratio": 1.5}}`)
		require.NoError(t, err)
		assert.Equal(t, json.Number("150"), doc["en"]["AgeMaxValue"])
		assert.Equal(t, json.Number("1.5"), doc["en"]["Ratio"])
	})

	t.Run("language must be an object", func(t *testing.T) {
		_, err := p.Parse(context.Background(), `{"en": "hello"}`)
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := p.Parse(context.Background(), `{"en": `)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, `{}`)
		assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("json"))
		assert.True(t, p.SupportsFileExtension(".JSON"))
		assert.False(t, p.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewYAMLParser()

	t.Run("nested maps", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), "en:\n  account:\n    NameRequired:\n")
		require.NoError(t, err)
		require.Contains(t, doc, "en")
		assert.Contains(t, doc["en"], "account")
	})

	t.Run("language must be a map", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: hello\n")
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: [unclosed\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "en: {}")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yml"))
		assert.True(t, p.SupportsFileExtension(".yaml"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("account.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("account.YML"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/account.yaml"))
	assert.Nil(t, i18n.NewParserForFile("account.resx"))
	assert.Nil(t, i18n.NewParserForFile("account"))
}
