package i18n

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the viewer's language preference.
	LangCookieName = "dashboard_lang"
)

// Source records where a resolved language came from.
type Source string

const (
	SourceQuery    Source = "query"
	SourceCookie   Source = "cookie"
	SourceHeader   Source = "accept-language"
	SourceFallback Source = "fallback"
)

// LanguageOption describes one entry of the language switcher.
type LanguageOption struct {
	Language Language
	Label    string
	URL      string
	Active   bool
}

// Resolve picks the language from the query value, then the cookie, then the
// Accept-Language header, and finally the fallback.
func Resolve(query, cookie, acceptLanguage string, fallback Language) (Language, Source) {
	if lang, ok := ParseLanguage(query); ok {
		return lang, SourceQuery
	}
	if lang, ok := ParseLanguage(cookie); ok {
		return lang, SourceCookie
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if lang, ok := Match(tags...); ok {
				return lang, SourceHeader
			}
		}
	}
	if !fallback.Valid() {
		fallback = DefaultLanguage
	}
	return fallback, SourceFallback
}

// ResolveRequest applies Resolve to a net/http request.
func ResolveRequest(r *http.Request, fallback Language) (Language, Source) {
	if r == nil {
		return Resolve("", "", "", fallback)
	}
	cookieValue := ""
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		cookieValue = cookie.Value
	}
	return Resolve(r.URL.Query().Get(LangParam), cookieValue, r.Header.Get("Accept-Language"), fallback)
}

// LanguageURL rewrites the lang query parameter of a relative or absolute URL.
func LanguageURL(raw string, lang Language) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set(LangParam, string(lang))
	u.RawQuery = q.Encode()
	return u.String()
}

// BuildLanguageOptions returns switcher entries for every supported language.
func BuildLanguageOptions(d *Dictionary, current Language, currentURL string) []LanguageOption {
	langs := Languages()
	out := make([]LanguageOption, 0, len(langs))
	for _, lang := range langs {
		out = append(out, LanguageOption{
			Language: lang,
			Label:    d.Translate(current, "lang."+string(lang)),
			URL:      LanguageURL(currentURL, lang),
			Active:   lang == current,
		})
	}
	return out
}
