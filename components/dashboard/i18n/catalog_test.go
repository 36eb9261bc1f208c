package i18n

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalogs(t *testing.T) {
	dict, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Produtos", dict.Translate(Portuguese, "products.title"))
	assert.Equal(t, "Products", dict.Translate(English, "products.title"))
	assert.Equal(t, []string{"analytics", "common", "customers", "orders", "overview", "products"}, dict.Namespaces(English))
}

func TestCatalogsHaveMatchingKeys(t *testing.T) {
	dict := MustLoad()
	missing := dict.MissingKeys()
	if len(missing) > 0 {
		t.Fatalf("locale catalogs out of sync: %v", missing)
	}
}

func TestFormatUsesCatalogMessages(t *testing.T) {
	dict := MustLoad()
	assert.Equal(t, "Page 2 of 3", dict.Format(English, "pagination.label", 2, 3))
	assert.Equal(t, "Página 2 de 3", dict.Format(Portuguese, "pagination.label", 2, 3))
	assert.Equal(t, "Page 1 of 1,200", dict.Format(English, "pagination.label", 1, 1200))
	assert.Equal(t, "Página 1 de 1.200", dict.Format(Portuguese, "pagination.label", 1, 1200))
}

func TestTranslateFallsBackToKey(t *testing.T) {
	dict := MustLoad()
	if got := dict.Translate(English, "does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	dict := MustLoad()
	table := dict.Table(English)
	table["products.title"] = "mutated"
	if dict.Translate(English, "products.title") != "Products" {
		t.Fatalf("expected dictionary to be unaffected by table mutation")
	}
}

func TestLoadFSRejectsMismatchedLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR/common.yaml": {Data: []byte("locale: en-US\nnamespace: common\nmessages:\n  a: b\n")},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match path locale")
}

func TestLoadFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR/common.yaml":   {Data: []byte("locale: pt-BR\nnamespace: common\nmessages:\n  app.title: a\n")},
		"locales/pt-BR/products.yaml": {Data: []byte("locale: pt-BR\nnamespace: products\nmessages:\n  app.title: b\n")},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestLoadFSRejectsUnsupportedLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/es-MX/common.yaml": {Data: []byte("locale: es-MX\nnamespace: common\nmessages:\n  a: b\n")},
	}
	_, err := LoadFS(fsys)
	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestLoadFSEmpty(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	if !errors.Is(err, ErrNoCatalogs) {
		t.Fatalf("expected ErrNoCatalogs, got %v", err)
	}
}
