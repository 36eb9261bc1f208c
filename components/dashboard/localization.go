package dashboard

import (
	"strings"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// Translator resolves dictionary keys for a language. *i18n.Dictionary satisfies it.
type Translator interface {
	Translate(lang i18n.Language, key string) string
}

// ResolveLocalizedValue selects the best translation for the provided locale and falls back to the supplied value.
// Keys are matched case-insensitively, and language-region pairs (`pt-br`) fall back to their
// base language (`pt`) when present.
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		for key, value := range values {
			if strings.EqualFold(key, candidate) && value != "" {
				return value
			}
		}
	}
	if value, ok := values["default"]; ok && value != "" {
		return value
	}
	return fallback
}

func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if idx := strings.Index(locale, "-"); idx > 0 {
		candidates = append(candidates, locale[:idx])
	}
	return append(candidates, "default")
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ToLower(locale))
	return strings.ReplaceAll(locale, "_", "-")
}

type keyTranslator struct{}

func (keyTranslator) Translate(_ i18n.Language, key string) string { return key }

func normalizeTranslator(t Translator) Translator {
	if t == nil {
		return keyTranslator{}
	}
	return t
}
