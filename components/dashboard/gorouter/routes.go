package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/commands"
	"github.com/goliatone/go-storefront-admin/components/dashboard/httpapi"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
	"github.com/goliatone/go-storefront-admin/components/dashboard/queries"
)

// Config wires go-router with the storefront controller, API handlers, and hooks.
type Config[T any] struct {
	Router     router.Router[T]
	Controller *dashboard.Controller
	API        *httpapi.Handlers
	Broadcast  *dashboard.BroadcastHook
	BasePath   string
	Routes     RouteConfig
}

// RouteConfig customizes the relative paths used for API and live endpoints.
type RouteConfig struct {
	API       string
	Events    string
	WebSocket string
}

// stateParams are the query values a page state is built from.
var stateParams = []string{
	i18n.LangParam, dashboard.ThemeParam,
	"category", "status", "payment", "q", "page", "size", "period", "compare",
}

// Register mounts the pages, detail fragments, exports, JSON API, and live
// update endpoints on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := strings.TrimRight(cfg.BasePath, "/")
	if base == "" {
		base = "/admin"
	}

	group := cfg.Router.Group(base)
	c := cfg.Controller

	group.Get("/", pageHandler(c, dashboard.PageOverview))
	for _, page := range []dashboard.Page{dashboard.PageAnalytics, dashboard.PageProducts, dashboard.PageCustomers, dashboard.PageOrders} {
		group.Get("/"+string(page), pageHandler(c, page))
	}
	for _, page := range []dashboard.Page{dashboard.PageProducts, dashboard.PageCustomers, dashboard.PageOrders} {
		group.Get("/"+string(page)+"/export.:format", exportHandler(c, page))
		group.Get("/"+string(page)+"/:id", detailHandler(c, page))
	}

	if cfg.API != nil {
		registerAPI(group.Group(routes.API), c, cfg.API)
	}
	if cfg.Broadcast != nil {
		registerEvents(group, cfg.Broadcast, routes.Events)
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}
	return nil
}

// RequestFrom extracts the transport-neutral request from a router context.
func RequestFrom(ctx router.Context) dashboard.Request {
	query := url.Values{}
	for _, name := range stateParams {
		if v := ctx.Query(name); v != "" {
			query.Set(name, v)
		}
	}
	return dashboard.Request{
		Query:          query,
		LangCookie:     ctx.Cookies(i18n.LangCookieName),
		ThemeCookie:    ctx.Cookies(dashboard.ThemeCookieName),
		AcceptLanguage: ctx.Header("Accept-Language"),
	}
}

func resolveState(ctx router.Context, c *dashboard.Controller, page dashboard.Page) (dashboard.PageState, error) {
	req := RequestFrom(ctx)
	state, err := c.State(page, req)
	if err != nil {
		return dashboard.PageState{}, err
	}
	for _, cookie := range c.PreferenceCookies(req) {
		ctx.Cookie(routerCookie(cookie))
	}
	return state, nil
}

func routerCookie(cookie *http.Cookie) *router.Cookie {
	sameSite := router.CookieSameSiteDisabled
	switch cookie.SameSite {
	case http.SameSiteLaxMode:
		sameSite = router.CookieSameSiteLaxMode
	case http.SameSiteStrictMode:
		sameSite = router.CookieSameSiteStrictMode
	case http.SameSiteNoneMode:
		sameSite = router.CookieSameSiteNoneMode
	}
	return &router.Cookie{
		Name:     cookie.Name,
		Value:    cookie.Value,
		Path:     cookie.Path,
		Domain:   cookie.Domain,
		MaxAge:   cookie.MaxAge,
		Expires:  cookie.Expires,
		Secure:   cookie.Secure,
		HTTPOnly: cookie.HttpOnly,
		SameSite: sameSite,
	}
}

func pageHandler(c *dashboard.Controller, page dashboard.Page) router.HandlerFunc {
	return router.WrapHandler(func(ctx router.Context) error {
		state, err := resolveState(ctx, c, page)
		if err != nil {
			return respondError(ctx, err)
		}
		var buf bytes.Buffer
		if err := c.RenderTemplate(ctx.Context(), state, &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	})
}

func detailHandler(c *dashboard.Controller, page dashboard.Page) router.HandlerFunc {
	return router.WrapHandler(func(ctx router.Context) error {
		state, err := resolveState(ctx, c, page)
		if err != nil {
			return respondError(ctx, err)
		}
		var buf bytes.Buffer
		if err := c.RenderDetail(ctx.Context(), state, ctx.Param("id"), &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	})
}

func exportHandler(c *dashboard.Controller, page dashboard.Page) router.HandlerFunc {
	return router.WrapHandler(func(ctx router.Context) error {
		state, err := resolveState(ctx, c, page)
		if err != nil {
			return respondError(ctx, err)
		}
		var buf bytes.Buffer
		format, err := c.Export(ctx.Context(), state, ctx.Param("format"), &buf)
		if err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", format.ContentType())
		ctx.SetHeader("Content-Disposition", `attachment; filename="`+format.Filename(page)+`"`)
		return ctx.Send(buf.Bytes())
	})
}

func registerAPI[T any](r router.Router[T], c *dashboard.Controller, api *httpapi.Handlers) {
	r.Get("/products", router.WrapHandler(func(ctx router.Context) error {
		state, err := resolveState(ctx, c, dashboard.PageProducts)
		if err != nil {
			return respondError(ctx, err)
		}
		list, err := api.Products.Query(ctx.Context(), state)
		return respond(ctx, http.StatusOK, list, err)
	}))
	r.Get("/products/:id", router.WrapHandler(func(ctx router.Context) error {
		product, err := api.Product.Query(ctx.Context(), queries.DetailInput{ID: ctx.Param("id")})
		return respond(ctx, http.StatusOK, product, err)
	}))
	r.Post("/products", router.WrapHandler(func(ctx router.Context) error {
		var payload dashboard.ProductInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var created dashboard.Product
		err := api.CreateProduct.Execute(ctx.Context(), commands.CreateProductInput{Product: payload, Result: &created})
		return respond(ctx, http.StatusCreated, created, err)
	}))
	r.Put("/products/:id", router.WrapHandler(func(ctx router.Context) error {
		var payload dashboard.ProductInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var updated dashboard.Product
		err := api.UpdateProduct.Execute(ctx.Context(), commands.UpdateProductInput{ID: ctx.Param("id"), Product: payload, Result: &updated})
		return respond(ctx, http.StatusOK, updated, err)
	}))
	r.Delete("/products/:id", router.WrapHandler(func(ctx router.Context) error {
		err := api.DeleteProduct.Execute(ctx.Context(), commands.DeleteProductInput{ID: ctx.Param("id")})
		return respond(ctx, http.StatusOK, map[string]string{"status": "deleted"}, err)
	}))

	r.Get("/customers", router.WrapHandler(func(ctx router.Context) error {
		state, err := resolveState(ctx, c, dashboard.PageCustomers)
		if err != nil {
			return respondError(ctx, err)
		}
		list, err := api.Customers.Query(ctx.Context(), state)
		return respond(ctx, http.StatusOK, list, err)
	}))
	r.Get("/customers/:id", router.WrapHandler(func(ctx router.Context) error {
		detail, err := api.CustomerDetail.Query(ctx.Context(), queries.DetailInput{ID: ctx.Param("id")})
		return respond(ctx, http.StatusOK, detail, err)
	}))
	r.Post("/customers", router.WrapHandler(func(ctx router.Context) error {
		var payload dashboard.CustomerInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var created dashboard.Customer
		err := api.CreateCustomer.Execute(ctx.Context(), commands.CreateCustomerInput{Customer: payload, Result: &created})
		return respond(ctx, http.StatusCreated, created, err)
	}))
	r.Put("/customers/:id", router.WrapHandler(func(ctx router.Context) error {
		var payload dashboard.CustomerInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var updated dashboard.Customer
		err := api.UpdateCustomer.Execute(ctx.Context(), commands.UpdateCustomerInput{ID: ctx.Param("id"), Customer: payload, Result: &updated})
		return respond(ctx, http.StatusOK, updated, err)
	}))
	r.Delete("/customers/:id", router.WrapHandler(func(ctx router.Context) error {
		err := api.DeleteCustomer.Execute(ctx.Context(), commands.DeleteCustomerInput{ID: ctx.Param("id")})
		return respond(ctx, http.StatusOK, map[string]string{"status": "deleted"}, err)
	}))

	r.Get("/orders", router.WrapHandler(func(ctx router.Context) error {
		state, err := resolveState(ctx, c, dashboard.PageOrders)
		if err != nil {
			return respondError(ctx, err)
		}
		list, err := api.Orders.Query(ctx.Context(), state)
		return respond(ctx, http.StatusOK, list, err)
	}))
	r.Get("/orders/:id", router.WrapHandler(func(ctx router.Context) error {
		detail, err := api.OrderDetail.Query(ctx.Context(), queries.DetailInput{ID: ctx.Param("id")})
		return respond(ctx, http.StatusOK, detail, err)
	}))
	r.Post("/orders/:id/cancel", router.WrapHandler(func(ctx router.Context) error {
		var order dashboard.Order
		err := api.CancelOrder.Execute(ctx.Context(), commands.CancelOrderInput{ID: ctx.Param("id"), Result: &order})
		return respond(ctx, http.StatusOK, order, err)
	}))

	for _, page := range []dashboard.Page{dashboard.PageOverview, dashboard.PageAnalytics} {
		r.Get("/widgets/"+string(page), router.WrapHandler(func(ctx router.Context) error {
			state, err := resolveState(ctx, c, page)
			if err != nil {
				return respondError(ctx, err)
			}
			layout, err := api.Widgets.Query(ctx.Context(), state)
			return respond(ctx, http.StatusOK, layout, err)
		}))
	}
}

// registerEvents answers each request with the next catalog event as a single
// Server-Sent Event. EventSource clients reconnect after every event.
func registerEvents[T any](r router.Router[T], hook *dashboard.BroadcastHook, path string) {
	r.Get(path, router.WrapHandler(func(ctx router.Context) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		ctx.SetHeader("Content-Type", "text/event-stream")
		ctx.SetHeader("Cache-Control", "no-cache")
		select {
		case event, ok := <-events:
			if !ok {
				return ctx.Send(nil)
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return respondError(ctx, err)
			}
			return ctx.Send([]byte("event: catalog\ndata: " + string(payload) + "\n\n"))
		case <-ctx.Context().Done():
			return nil
		}
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func respond(ctx router.Context, status int, body any, err error) error {
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(status, body)
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(dashboard.StatusFor(err), map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.API == "" {
		routes.API = "/api"
	}
	if routes.Events == "" {
		routes.Events = "/events"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
