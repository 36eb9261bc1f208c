package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

type stubRenderer struct {
	lastTemplate string
	lastPayload  map[string]any
	err          error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.lastTemplate = name
	if payload, ok := data.(map[string]any); ok {
		r.lastPayload = payload
	}
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html></html>"))
	}
	return "<html></html>", r.err
}

func newTestController(t *testing.T, renderer Renderer) *Controller {
	t.Helper()
	return NewController(ControllerOptions{
		Service:  newTestService(t, Options{}),
		Renderer: renderer,
		BasePath: "/admin/",
		Defaults: StateDefaults{Language: i18n.Portuguese, Theme: ThemeSystem},
	})
}

func TestControllerStateResolvesLanguage(t *testing.T) {
	controller := newTestController(t, nil)

	state, err := controller.State(PageProducts, Request{AcceptLanguage: "en-US,en;q=0.9"})
	require.NoError(t, err)
	assert.Equal(t, i18n.English, state.Language)
	assert.Equal(t, "/admin/products", state.Path)

	state, err = controller.State(PageProducts, Request{
		Query:          url.Values{"lang": {"pt"}, "category": {"clothing"}},
		LangCookie:     "en",
		AcceptLanguage: "en",
		ThemeCookie:    "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, i18n.Portuguese, state.Language)
	assert.Equal(t, ThemeDark, state.Theme)
	assert.Equal(t, "/admin/products?category=clothing&lang=pt", state.Path)

	state, err = controller.State(PageOverview, Request{LangCookie: "en", Query: url.Values{"theme": {"light"}}})
	require.NoError(t, err)
	assert.Equal(t, i18n.English, state.Language)
	assert.Equal(t, ThemeLight, state.Theme)

	_, err = controller.State(PageOrders, Request{Query: url.Values{"status": {"lost"}}})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestControllerRenderTemplate(t *testing.T) {
	renderer := &stubRenderer{}
	controller := newTestController(t, renderer)
	state, err := controller.State(PageOverview, Request{Query: url.Values{"lang": {"en"}}})
	require.NoError(t, err)

	var buf bytes.Buffer
	if err := controller.RenderTemplate(context.Background(), state, &buf); err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if renderer.lastTemplate != "overview.html" {
		t.Fatalf("expected overview template to render, got %s", renderer.lastTemplate)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected rendered output")
	}

	payload := renderer.lastPayload
	assert.Equal(t, "Overview", payload["title"])
	assert.Equal(t, "en-US", payload["html_lang"])
	kpis, ok := payload["kpis"].([]ResolvedWidget)
	require.True(t, ok)
	assert.Len(t, kpis, 4)
	table, ok := payload["t"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Products", table["nav_products"])
	products, ok := payload["products"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 8, products["total"])
}

func TestControllerPagePayloads(t *testing.T) {
	controller := newTestController(t, &stubRenderer{})
	ctx := context.Background()

	state, err := controller.State(PageAnalytics, Request{Query: url.Values{"compare": {"none"}}})
	require.NoError(t, err)
	payload, err := controller.PagePayload(ctx, state)
	require.NoError(t, err)
	assert.Len(t, payload["rankings"], 1)
	assert.Len(t, payload["charts"], 5)
	assert.Equal(t, "none", payload["compare"])

	state, err = controller.State(PageCustomers, Request{Query: url.Values{"q": {"zzz"}, "lang": {"en"}}})
	require.NoError(t, err)
	payload, err = controller.PagePayload(ctx, state)
	require.NoError(t, err)
	customers := payload["customers"].(map[string]any)
	assert.Equal(t, true, customers["empty"])

	state, err = controller.State(PageOrders, Request{Query: url.Values{"lang": {"en"}, "size": {"5"}}})
	require.NoError(t, err)
	payload, err = controller.PagePayload(ctx, state)
	require.NoError(t, err)
	orders := payload["orders"].(map[string]any)
	rows := orders["rows"].([]map[string]any)
	require.Len(t, rows, 5)
	assert.Equal(t, "$299.99", rows[0]["total"])
	assert.Equal(t, "/admin/orders/1?lang=en", rows[0]["detail_url"])
	pagination := orders["pagination"].(map[string]any)
	assert.Equal(t, "/admin/orders?lang=en&page=2&size=5", pagination["next_url"])
	assert.Equal(t, "Page 1 of 2", pagination["label"])
	assert.Equal(t, "/admin/orders/export.csv?lang=en", orders["export_csv"])

	_, err = controller.PagePayload(ctx, PageState{Page: "settings"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestControllerRenderDetail(t *testing.T) {
	renderer := &stubRenderer{}
	controller := newTestController(t, renderer)
	ctx := context.Background()

	state, err := controller.State(PageCustomers, Request{Query: url.Values{"lang": {"en"}}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, controller.RenderDetail(ctx, state, "3", &buf))
	assert.Equal(t, "partials/customer_detail.html", renderer.lastTemplate)
	customer := renderer.lastPayload["customer"].(map[string]any)
	assert.Equal(t, "Emma Martinez", customer["name"])
	assert.Len(t, customer["history"], 3)

	state, err = controller.State(PageOrders, Request{Query: url.Values{"lang": {"en"}}})
	require.NoError(t, err)
	require.NoError(t, controller.RenderDetail(ctx, state, "6", &buf))
	assert.Equal(t, "partials/order_detail.html", renderer.lastTemplate)
	order := renderer.lastPayload["order"].(map[string]any)
	assert.Equal(t, false, order["cancellable"])
	assert.Equal(t, "noah.garcia@example.com", order["email"])

	err = controller.RenderDetail(ctx, state, "missing", &buf)
	assert.ErrorIs(t, err, ErrNotFound)

	overview, err := controller.State(PageOverview, Request{})
	require.NoError(t, err)
	assert.ErrorIs(t, controller.RenderDetail(ctx, overview, "1", &buf), ErrNotFound)
}

func TestControllerRequiresRenderer(t *testing.T) {
	controller := newTestController(t, nil)
	state, err := controller.State(PageProducts, Request{})
	require.NoError(t, err)
	assert.Error(t, controller.RenderTemplate(context.Background(), state, io.Discard))
}

func TestControllerPropagatesRendererErrors(t *testing.T) {
	controller := newTestController(t, &stubRenderer{err: errors.New("template missing")})
	state, err := controller.State(PageProducts, Request{})
	require.NoError(t, err)
	assert.EqualError(t, controller.RenderTemplate(context.Background(), state, io.Discard), "template missing")
}

func TestControllerExport(t *testing.T) {
	controller := newTestController(t, nil)
	state, err := controller.State(PageProducts, Request{})
	require.NoError(t, err)

	var buf bytes.Buffer
	format, err := controller.Export(context.Background(), state, "csv", &buf)
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)
	assert.Contains(t, buf.String(), "SP-1001")

	_, err = controller.Export(context.Background(), state, "pdf", &buf)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestControllerPreferenceCookies(t *testing.T) {
	controller := newTestController(t, nil)

	cookies := controller.PreferenceCookies(Request{Query: url.Values{"lang": {"en"}, "theme": {"dark"}}})
	require.Len(t, cookies, 2)
	assert.Equal(t, i18n.LangCookieName, cookies[0].Name)
	assert.Equal(t, "en", cookies[0].Value)
	assert.Equal(t, "/admin", cookies[0].Path)
	assert.Equal(t, ThemeCookieName, cookies[1].Name)
	assert.Equal(t, "dark", cookies[1].Value)

	assert.Empty(t, controller.PreferenceCookies(Request{Query: url.Values{"lang": {"de"}, "theme": {"neon"}}}))
	assert.Empty(t, controller.PreferenceCookies(Request{}))
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("wrap: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("wrap: %w", ErrInvalidFilter), http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrUnsupportedFormat, http.StatusBadRequest},
		{ErrStockStatusMismatch, http.StatusBadRequest},
		{ErrDuplicate, http.StatusConflict},
		{fmt.Errorf("order 1: %w", ErrInvalidTransition), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
