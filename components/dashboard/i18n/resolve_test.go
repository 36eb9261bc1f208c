package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		cookie   string
		accept   string
		want     Language
		wantFrom Source
	}{
		{"query wins", "en", "pt", "pt-BR", English, SourceQuery},
		{"cookie before header", "", "en", "pt-BR", English, SourceCookie},
		{"header match", "", "", "en-GB,en;q=0.8", English, SourceHeader},
		{"invalid query ignored", "fr", "", "", Portuguese, SourceFallback},
		{"unsupported header", "", "", "ja-JP", Portuguese, SourceFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, from := Resolve(tc.query, tc.cookie, tc.accept, Portuguese)
			if got != tc.want || from != tc.wantFrom {
				t.Fatalf("expected %s/%s, got %s/%s", tc.want, tc.wantFrom, got, from)
			}
		})
	}
}

func TestResolveRequestReadsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	lang, from := ResolveRequest(req, Portuguese)
	if lang != English || from != SourceCookie {
		t.Fatalf("expected cookie language, got %s/%s", lang, from)
	}
}

func TestParseLanguage(t *testing.T) {
	for _, raw := range []string{"pt", "PT", "pt-BR", "pt_br"} {
		if lang, ok := ParseLanguage(raw); !ok || lang != Portuguese {
			t.Fatalf("expected %q to parse as pt", raw)
		}
	}
	if _, ok := ParseLanguage("de"); ok {
		t.Fatalf("expected de to be rejected")
	}
}

func TestLanguageURLKeepsOtherParams(t *testing.T) {
	got := LanguageURL("/products?category=electronics&lang=pt", English)
	if got != "/products?category=electronics&lang=en" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	opts := BuildLanguageOptions(MustLoad(), English, "/orders")
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Label != "Português" || opts[0].Active {
		t.Fatalf("unexpected first option %+v", opts[0])
	}
	if !opts[1].Active || opts[1].URL != "/orders?lang=en" {
		t.Fatalf("unexpected second option %+v", opts[1])
	}
}
