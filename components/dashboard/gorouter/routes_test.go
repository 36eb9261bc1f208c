package gorouter

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/httpapi"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

type stubRenderer struct{}

func (stubRenderer) Render(name string, _ any, out ...io.Writer) (string, error) {
	if len(out) > 0 && out[0] != nil {
		_, _ = io.WriteString(out[0], name)
	}
	return name, nil
}

func newFiberApp(t *testing.T) *fiber.App {
	t.Helper()
	rt, err := dashboard.Bootstrap(dashboard.BootstrapOptions{Renderer: stubRenderer{}, BasePath: "/admin"})
	require.NoError(t, err)
	t.Cleanup(rt.Close)

	adapter := router.NewFiberAdapter()
	require.NoError(t, Register(Config[*fiber.App]{
		Router:     adapter.Router(),
		Controller: rt.Controller,
		API:        httpapi.NewHandlers(rt, nil),
		BasePath:   "/admin",
	}))
	return adapter.WrappedRouter()
}

func firstWidgetTitle(t *testing.T, app *fiber.App, req *http.Request) string {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var layout struct {
		Widgets []struct {
			Data map[string]any `json:"data"`
		} `json:"widgets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&layout))
	require.NotEmpty(t, layout.Widgets)
	title, _ := layout.Widgets[0].Data["title"].(string)
	return title
}

func TestRegisterValidatesConfig(t *testing.T) {
	err := Register(Config[struct{}]{})
	if err == nil {
		t.Fatalf("expected error when router is missing")
	}
	err = Register(Config[struct{}]{Controller: dashboard.NewController(dashboard.ControllerOptions{})})
	if err == nil {
		t.Fatalf("expected error when router is missing")
	}
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{})
	if routes.API != "/api" || routes.Events != "/events" || routes.WebSocket != "/ws" {
		t.Fatalf("unexpected defaults: %+v", routes)
	}
	custom := defaultRouteConfig(RouteConfig{API: "/v1", WebSocket: "/live"})
	if custom.API != "/v1" || custom.WebSocket != "/live" || custom.Events != "/events" {
		t.Fatalf("expected overrides to be kept: %+v", custom)
	}
}

func TestStateParamsCoverFilters(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range stateParams {
		seen[name] = true
	}
	for _, name := range []string{"lang", "theme", "category", "status", "payment", "q", "page", "size", "period", "compare"} {
		if !seen[name] {
			t.Fatalf("expected %s to be forwarded", name)
		}
	}
}

func TestPagesSetBothPreferenceCookies(t *testing.T) {
	app := newFiberApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/products?lang=en&theme=dark", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := map[string]*http.Cookie{}
	for _, cookie := range resp.Cookies() {
		cookies[cookie.Name] = cookie
	}
	require.Contains(t, cookies, i18n.LangCookieName)
	require.Contains(t, cookies, dashboard.ThemeCookieName)
	assert.Equal(t, "en", cookies[i18n.LangCookieName].Value)
	assert.Equal(t, "dark", cookies[dashboard.ThemeCookieName].Value)
	assert.Equal(t, "/admin", cookies[dashboard.ThemeCookieName].Path)
	assert.True(t, cookies[i18n.LangCookieName].HttpOnly)
}

func TestLanguageCookieIsRead(t *testing.T) {
	app := newFiberApp(t)
	const path = "/admin/api/widgets/overview"

	byQuery := firstWidgetTitle(t, app, httptest.NewRequest(http.MethodGet, path+"?lang=en", nil))
	fallback := firstWidgetTitle(t, app, httptest.NewRequest(http.MethodGet, path, nil))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: i18n.LangCookieName, Value: "en"})
	byCookie := firstWidgetTitle(t, app, req)

	assert.Equal(t, byQuery, byCookie)
	if byCookie == fallback {
		t.Fatalf("cookie language was ignored: %q", byCookie)
	}
}
