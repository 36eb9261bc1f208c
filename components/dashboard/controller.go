package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// ControllerOptions wires the collaborators used to render pages.
type ControllerOptions struct {
	Service  *Service
	Renderer Renderer
	BasePath string
	Defaults StateDefaults
}

// Controller turns transport-neutral requests into rendered pages, fragments, and exports.
type Controller struct {
	service  *Service
	renderer Renderer
	basePath string
	defaults StateDefaults
}

// NewController wires the service into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Service == nil {
		opts.Service = NewService(Options{})
	}
	if !opts.Defaults.Language.Valid() {
		opts.Defaults.Language = i18n.DefaultLanguage
	}
	if _, ok := ParseThemeMode(string(opts.Defaults.Theme)); !ok {
		opts.Defaults.Theme = ThemeSystem
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		basePath: strings.TrimRight(opts.BasePath, "/"),
		defaults: opts.Defaults,
	}
}

// Request is the transport-neutral view of an incoming page request.
type Request struct {
	Query          url.Values
	LangCookie     string
	ThemeCookie    string
	AcceptLanguage string
}

// preferenceMaxAge keeps language and theme choices for a year.
const preferenceMaxAge = 365 * 24 * 60 * 60

// PreferenceCookies returns the cookies that persist a language or theme picked
// through the query string. Unknown values are not persisted.
func (c *Controller) PreferenceCookies(req Request) []*http.Cookie {
	var out []*http.Cookie
	if lang, ok := i18n.ParseLanguage(req.Query.Get(i18n.LangParam)); ok {
		out = append(out, c.preferenceCookie(i18n.LangCookieName, string(lang)))
	}
	if mode, ok := ParseThemeMode(req.Query.Get(ThemeParam)); ok {
		out = append(out, c.preferenceCookie(ThemeCookieName, string(mode)))
	}
	return out
}

func (c *Controller) preferenceCookie(name, value string) *http.Cookie {
	path := c.basePath
	if path == "" {
		path = "/"
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   preferenceMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Service returns the wrapped service.
func (c *Controller) Service() *Service {
	return c.service
}

// BasePath returns the mount prefix used to build links.
func (c *Controller) BasePath() string {
	return c.basePath
}

// State resolves language, theme, and filters for a page request. The language
// comes from the query, then the cookie, then Accept-Language.
func (c *Controller) State(page Page, req Request) (PageState, error) {
	q := req.Query
	if q == nil {
		q = url.Values{}
	}
	lang, _ := i18n.Resolve(q.Get(i18n.LangParam), req.LangCookie, req.AcceptLanguage, c.defaults.Language)
	theme := c.defaults.Theme
	if mode, ok := ParseThemeMode(req.ThemeCookie); ok {
		theme = mode
	}
	path := PagePath(c.basePath, page)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return ParseState(page, StateParams{
		Language: string(lang),
		Theme:    q.Get(ThemeParam),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Payment:  q.Get("payment"),
		Search:   q.Get("q"),
		Page:     q.Get("page"),
		Size:     q.Get("size"),
		Period:   q.Get("period"),
		Compare:  q.Get("compare"),
		Path:     path,
	}, StateDefaults{Language: lang, Theme: theme})
}

// RenderTemplate renders a full page into out.
func (c *Controller) RenderTemplate(ctx context.Context, state PageState, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("dashboard: renderer is required")
	}
	payload, err := c.PagePayload(ctx, state)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(TemplateFor(state.Page), payload, out)
	return err
}

// RenderDetail renders the detail fragment of a product, customer, or order.
func (c *Controller) RenderDetail(ctx context.Context, state PageState, id string, out io.Writer) error {
	if c.renderer == nil {
		return errors.New("dashboard: renderer is required")
	}
	payload, err := c.DetailPayload(ctx, state, id)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(DetailTemplateFor(state.Page), payload, out)
	return err
}

// Export writes the filtered list of the state's page in the requested format.
func (c *Controller) Export(ctx context.Context, state PageState, rawFormat string, out io.Writer) (ExportFormat, error) {
	format, err := ParseExportFormat(rawFormat)
	if err != nil {
		return "", err
	}
	return format, c.service.Export(ctx, state, format, out)
}

// PagePayload builds the template data of a page.
func (c *Controller) PagePayload(ctx context.Context, state PageState) (map[string]any, error) {
	v := c.newView(state)
	payload := v.base()
	switch state.Page {
	case PageOverview:
		layout, err := c.service.ResolvePage(ctx, state)
		if err != nil {
			return nil, err
		}
		products, err := c.service.Products(ctx, state)
		if err != nil {
			return nil, err
		}
		payload["kpis"] = layout.ByKind(WidgetKPI)
		payload["charts"] = layout.ByKind(WidgetChart)
		payload["periods"] = PeriodOptions(c.service.Translator(), state.Language, state.Page, state.Period)
		payload["products"] = v.productList(products)
	case PageAnalytics:
		layout, err := c.service.ResolvePage(ctx, state)
		if err != nil {
			return nil, err
		}
		payload["kpis"] = layout.ByKind(WidgetKPI)
		payload["charts"] = layout.ByKind(WidgetChart)
		payload["rankings"] = layout.ByKind(WidgetRanking)
		payload["periods"] = PeriodOptions(c.service.Translator(), state.Language, state.Page, state.Period)
		payload["comparisons"] = ComparisonOptions(c.service.Translator(), state.Language, state.Compare)
		payload["export_url"] = v.exportURL(PageProducts, FormatXLSX)
	case PageProducts:
		products, err := c.service.Products(ctx, state)
		if err != nil {
			return nil, err
		}
		payload["products"] = v.productList(products)
	case PageCustomers:
		customers, err := c.service.Customers(ctx, state)
		if err != nil {
			return nil, err
		}
		payload["customers"] = v.customerList(customers)
	case PageOrders:
		orders, err := c.service.Orders(ctx, state)
		if err != nil {
			return nil, err
		}
		payload["orders"] = v.orderList(orders)
	default:
		return nil, fmt.Errorf("%w: page %q", ErrNotFound, state.Page)
	}
	return payload, nil
}

// DetailPayload builds the template data of a detail dialog.
func (c *Controller) DetailPayload(ctx context.Context, state PageState, id string) (map[string]any, error) {
	v := c.newView(state)
	payload := v.base()
	switch state.Page {
	case PageProducts:
		p, err := c.service.Product(ctx, id)
		if err != nil {
			return nil, err
		}
		payload["product"] = v.productDetail(p)
	case PageCustomers:
		detail, err := c.service.CustomerDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		payload["customer"] = v.customerDetail(detail)
	case PageOrders:
		detail, err := c.service.OrderDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		payload["order"] = v.orderDetail(detail)
	default:
		return nil, fmt.Errorf("%w: page %q has no detail view", ErrNotFound, state.Page)
	}
	return payload, nil
}
