package dashboard

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Page     Page
	LabelKey string
	Label    string
	Href     string
	Icon     string
	Active   bool
}

var navIcons = map[Page]string{
	PageOverview:  "layout-dashboard",
	PageAnalytics: "bar-chart-3",
	PageProducts:  "package",
	PageCustomers: "users",
	PageOrders:    "shopping-cart",
}

// PagePath returns the route of a page under basePath.
func PagePath(basePath string, page Page) string {
	base := strings.TrimRight(basePath, "/")
	if page == PageOverview {
		return base + "/"
	}
	return base + "/" + string(page)
}

// Navigation builds the localized sidebar, marking the current page active.
func Navigation(t Translator, lang i18n.Language, basePath string, current Page) []NavItem {
	tr := normalizeTranslator(t)
	pages := Pages()
	items := make([]NavItem, 0, len(pages))
	for _, page := range pages {
		key := "nav." + string(page)
		items = append(items, NavItem{
			Page:     page,
			LabelKey: key,
			Label:    tr.Translate(lang, key),
			Href:     PagePath(basePath, page),
			Icon:     navIcons[page],
			Active:   page == current,
		})
	}
	return items
}

// ThemeOption is one entry of the theme switcher.
type ThemeOption struct {
	Mode   ThemeMode
	Label  string
	URL    string
	Active bool
}

// ThemeOptions builds the theme switcher for the current URL.
func ThemeOptions(t Translator, lang i18n.Language, current ThemeMode, currentURL string) []ThemeOption {
	tr := normalizeTranslator(t)
	modes := ThemeModes()
	out := make([]ThemeOption, 0, len(modes))
	for _, mode := range modes {
		out = append(out, ThemeOption{
			Mode:   mode,
			Label:  tr.Translate(lang, "theme."+string(mode)),
			URL:    WithQuery(currentURL, ThemeParam, string(mode)),
			Active: mode == current,
		})
	}
	return out
}

// WithQuery rewrites one query parameter of a relative or absolute URL. An
// empty value removes the parameter.
func WithQuery(raw, key, value string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if value == "" {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
