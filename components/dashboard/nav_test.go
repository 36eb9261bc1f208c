package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

func TestNavigationMarksCurrentPage(t *testing.T) {
	items := Navigation(i18n.MustLoad(), i18n.Portuguese, "/admin/", PageOrders)
	require.Len(t, items, 5)
	assert.Equal(t, "/admin/", items[0].Href)
	assert.Equal(t, "/admin/orders", items[4].Href)
	assert.Equal(t, "Pedidos", items[4].Label)
	for _, item := range items {
		assert.Equal(t, item.Page == PageOrders, item.Active, "page %s", item.Page)
		assert.NotEmpty(t, item.Icon)
	}
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "/", PagePath("", PageOverview))
	assert.Equal(t, "/products", PagePath("", PageProducts))
	assert.Equal(t, "/shop/analytics", PagePath("/shop", PageAnalytics))
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "/products?page=2&q=lamp", WithQuery("/products?q=lamp", "page", "2"))
	assert.Equal(t, "/products?q=lamp", WithQuery("/products?page=3&q=lamp", "page", ""))
	assert.Equal(t, "/?theme=dark", WithQuery("/", ThemeParam, "dark"))
}

func TestThemeOptions(t *testing.T) {
	options := ThemeOptions(i18n.MustLoad(), i18n.English, ThemeDark, "/orders?status=pending")
	require.Len(t, options, 3)
	assert.Equal(t, "Dark", options[1].Label)
	assert.True(t, options[1].Active)
	assert.Equal(t, "/orders?status=pending&theme=light", options[0].URL)
}

func TestResolveTheme(t *testing.T) {
	system := ResolveTheme(ThemeSystem)
	light := ResolveTheme(ThemeLight)
	assert.Equal(t, light.Tokens, system.Tokens)
	assert.Empty(t, system.BodyClass)
	assert.Equal(t, "light", light.BodyClass)

	dark := ResolveTheme("neon")
	assert.Equal(t, ThemeSystem, dark.Mode, "unknown modes fall back to system")

	vars := ResolveTheme(ThemeDark).CSSVariables()
	require.NotEmpty(t, vars)
	assert.Contains(t, vars, "--border: #1e293b")
}
