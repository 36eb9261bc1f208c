package dashboard

import (
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/types"
)

// ThemeMode is the colour scheme requested by the viewer.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"

	// ThemeParam is the query parameter used to pick a theme.
	ThemeParam = "theme"
	// ThemeCookieName stores the viewer's theme preference.
	ThemeCookieName = "dashboard_theme"
)

// ThemeModes lists the selectable modes.
func ThemeModes() []ThemeMode {
	return []ThemeMode{ThemeLight, ThemeDark, ThemeSystem}
}

// ParseThemeMode returns the mode for raw input, or false when unknown.
func ParseThemeMode(raw string) (ThemeMode, bool) {
	mode := ThemeMode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
		return mode, true
	}
	return "", false
}

// ThemeSelection carries the resolved tokens for a mode.
type ThemeSelection struct {
	Mode       ThemeMode
	Tokens     map[string]string
	ChartTheme string
	// BodyClass is empty for the system mode so CSS media queries decide.
	BodyClass string
}

var themeTokens = map[ThemeMode]map[string]string{
	ThemeLight: {
		"background":       "#ffffff",
		"foreground":       "#0f172a",
		"muted":            "#f1f5f9",
		"muted-foreground": "#64748b",
		"border":           "#e2e8f0",
		"primary":          "#6366f1",
	},
	ThemeDark: {
		"background":       "#020617",
		"foreground":       "#f8fafc",
		"muted":            "#1e293b",
		"muted-foreground": "#94a3b8",
		"border":           "#1e293b",
		"primary":          "#818cf8",
	},
}

// ResolveTheme expands a mode into tokens and chart theme. System renders with
// light tokens and lets the stylesheet switch on prefers-color-scheme.
func ResolveTheme(mode ThemeMode) ThemeSelection {
	if _, ok := ParseThemeMode(string(mode)); !ok {
		mode = ThemeSystem
	}
	tokensMode := mode
	if mode == ThemeSystem {
		tokensMode = ThemeLight
	}
	sel := ThemeSelection{
		Mode:       mode,
		Tokens:     cloneStringMap(themeTokens[tokensMode]),
		ChartTheme: types.ThemeWesteros,
	}
	if mode == ThemeDark {
		sel.ChartTheme = types.ThemeChalk
	}
	if mode != ThemeSystem {
		sel.BodyClass = string(mode)
	}
	return sel
}

// CSSVariables renders tokens as a sorted list of "--name: value" declarations.
func (t ThemeSelection) CSSVariables() []string {
	keys := make([]string, 0, len(t.Tokens))
	for key := range t.Tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = "--" + key + ": " + t.Tokens[key]
	}
	return out
}
