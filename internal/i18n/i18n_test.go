// internal/i18n/i18n_test.go
package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogs(t *testing.T) {
	require.NoError(t, Initialize("en"))

	assert.Equal(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
	assert.Equal(t, "Product not found", T("en", KeyProductNotFound))
	assert.Equal(t, "找不到商品", T("zh_TW", KeyProductNotFound))
	assert.Equal(t, "name is required", T("en", KeyValidationRequired, "name"))
}

func TestFallbacks(t *testing.T) {
	catalog := New("en")
	fsys := fstest.MapFS{
		"locales/en.json":    {Data: []byte(`{"greeting": "hello", "only.en": "english"}`)},
		"locales/fr.json":    {Data: []byte(`{"greeting": "bonjour"}`)},
		"locales/README.txt": {Data: []byte("ignored")},
	}
	require.NoError(t, catalog.LoadTranslations(fsys, "locales"))

	assert.Equal(t, "bonjour", catalog.T("fr", "greeting"))
	assert.Equal(t, "english", catalog.T("fr", "only.en"))
	assert.Equal(t, "hello", catalog.T("de", "greeting"))
	assert.Equal(t, "missing.key", catalog.T("en", "missing.key"))
}

func TestLoadTranslationsRejectsBadJSON(t *testing.T) {
	catalog := New("en")
	fsys := fstest.MapFS{
		"locales/en.json": {Data: []byte(`{not json`)},
	}
	assert.Error(t, catalog.LoadTranslations(fsys, "locales"))
}
