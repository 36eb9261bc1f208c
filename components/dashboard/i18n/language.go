package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is the closed set of display languages supported by the dashboard.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"

	// DefaultLanguage matches the locale the storefront operators work in.
	DefaultLanguage = Portuguese
)

var supportedTags = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supportedTags)

// Languages returns every supported language in display order.
func Languages() []Language {
	return []Language{Portuguese, English}
}

// ParseLanguage accepts short codes (`pt`, `en`) and BCP 47 tags (`pt-BR`, `en_US`).
func ParseLanguage(raw string) (Language, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", false
	}
	value = strings.ReplaceAll(value, "_", "-")
	if idx := strings.Index(value, "-"); idx > 0 {
		value = value[:idx]
	}
	switch Language(value) {
	case Portuguese:
		return Portuguese, true
	case English:
		return English, true
	default:
		return "", false
	}
}

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	_, ok := ParseLanguage(string(l))
	return ok
}

// Tag maps the language to the regional tag used for formatting.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.AmericanEnglish
	}
	return language.BrazilianPortuguese
}

// Locale returns the catalog directory name for the language.
func (l Language) Locale() string {
	return l.Tag().String()
}

// FromTag converts a matched language tag back into a Language.
func FromTag(tag language.Tag) Language {
	base, _ := tag.Base()
	if lang, ok := ParseLanguage(base.String()); ok {
		return lang
	}
	return DefaultLanguage
}

// Match picks the best supported language for the provided tags.
func Match(tags ...language.Tag) (Language, bool) {
	if len(tags) == 0 {
		return "", false
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return FromTag(supportedTags[idx]), true
}
