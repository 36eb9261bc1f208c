package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/commands"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
	"github.com/goliatone/go-storefront-admin/components/dashboard/queries"
)

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Controller *dashboard.Controller
	Broadcast  *dashboard.BroadcastHook

	CreateProduct  gocommand.Commander[commands.CreateProductInput]
	UpdateProduct  gocommand.Commander[commands.UpdateProductInput]
	DeleteProduct  gocommand.Commander[commands.DeleteProductInput]
	CreateCustomer gocommand.Commander[commands.CreateCustomerInput]
	UpdateCustomer gocommand.Commander[commands.UpdateCustomerInput]
	DeleteCustomer gocommand.Commander[commands.DeleteCustomerInput]
	CancelOrder    gocommand.Commander[commands.CancelOrderInput]

	Products       gocommand.Querier[dashboard.PageState, dashboard.ProductList]
	Customers      gocommand.Querier[dashboard.PageState, dashboard.CustomerList]
	Orders         gocommand.Querier[dashboard.PageState, dashboard.OrderList]
	Product        gocommand.Querier[queries.DetailInput, dashboard.Product]
	CustomerDetail gocommand.Querier[queries.DetailInput, dashboard.CustomerDetail]
	OrderDetail    gocommand.Querier[queries.DetailInput, dashboard.OrderDetail]
	Widgets        gocommand.Querier[dashboard.PageState, dashboard.PageLayout]
}

// NewHandlers wires the default commands and queries around a runtime.
func NewHandlers(rt *dashboard.Runtime, telemetry commands.Telemetry) *Handlers {
	svc := rt.Service
	return &Handlers{
		Controller:     rt.Controller,
		Broadcast:      rt.Broadcast,
		CreateProduct:  commands.NewCreateProductCommand(svc, telemetry),
		UpdateProduct:  commands.NewUpdateProductCommand(svc, telemetry),
		DeleteProduct:  commands.NewDeleteProductCommand(svc, telemetry),
		CreateCustomer: commands.NewCreateCustomerCommand(svc, telemetry),
		UpdateCustomer: commands.NewUpdateCustomerCommand(svc, telemetry),
		DeleteCustomer: commands.NewDeleteCustomerCommand(svc, telemetry),
		CancelOrder:    commands.NewCancelOrderCommand(svc, telemetry),
		Products:       queries.NewProductListQuery(svc),
		Customers:      queries.NewCustomerListQuery(svc),
		Orders:         queries.NewOrderListQuery(svc),
		Product:        queries.NewProductQuery(svc),
		CustomerDetail: queries.NewCustomerDetailQuery(svc),
		OrderDetail:    queries.NewOrderDetailQuery(svc),
		Widgets:        queries.NewPageQuery(svc),
	}
}

// Mount registers every route on mux under basePath.
func (h *Handlers) Mount(mux *http.ServeMux, basePath string) {
	base := strings.TrimRight(basePath, "/")

	mux.HandleFunc("GET "+base+"/{$}", h.HandlePage(dashboard.PageOverview))
	for _, page := range dashboard.Pages() {
		if page == dashboard.PageOverview {
			continue
		}
		mux.HandleFunc("GET "+base+"/"+string(page), h.HandlePage(page))
	}
	for _, page := range []dashboard.Page{dashboard.PageProducts, dashboard.PageCustomers, dashboard.PageOrders} {
		mux.HandleFunc("GET "+base+"/"+string(page)+"/{id}", h.HandleDetail(page))
		for _, format := range []dashboard.ExportFormat{dashboard.FormatCSV, dashboard.FormatXLSX} {
			mux.HandleFunc("GET "+base+"/"+string(page)+"/export."+string(format), h.HandleExport(page, string(format)))
		}
	}

	mux.HandleFunc("GET "+base+"/api/products", h.HandleListProducts)
	mux.HandleFunc("GET "+base+"/api/products/{id}", h.HandleGetProduct)
	mux.HandleFunc("POST "+base+"/api/products", h.HandleCreateProduct)
	mux.HandleFunc("PUT "+base+"/api/products/{id}", h.HandleUpdateProduct)
	mux.HandleFunc("DELETE "+base+"/api/products/{id}", h.HandleDeleteProduct)

	mux.HandleFunc("GET "+base+"/api/customers", h.HandleListCustomers)
	mux.HandleFunc("GET "+base+"/api/customers/{id}", h.HandleGetCustomer)
	mux.HandleFunc("POST "+base+"/api/customers", h.HandleCreateCustomer)
	mux.HandleFunc("PUT "+base+"/api/customers/{id}", h.HandleUpdateCustomer)
	mux.HandleFunc("DELETE "+base+"/api/customers/{id}", h.HandleDeleteCustomer)

	mux.HandleFunc("GET "+base+"/api/orders", h.HandleListOrders)
	mux.HandleFunc("GET "+base+"/api/orders/{id}", h.HandleGetOrder)
	mux.HandleFunc("POST "+base+"/api/orders/{id}/cancel", h.HandleCancelOrder)

	mux.HandleFunc("GET "+base+"/api/widgets/overview", h.HandleWidgets(dashboard.PageOverview))
	mux.HandleFunc("GET "+base+"/api/widgets/analytics", h.HandleWidgets(dashboard.PageAnalytics))

	if h.Broadcast != nil {
		mux.HandleFunc("GET "+base+"/events", h.Broadcast.ServeSSE)
		mux.HandleFunc("GET "+base+"/ws", h.Broadcast.ServeWebSocket)
	}
}

// RequestFrom extracts the transport-neutral request from an HTTP request.
func RequestFrom(r *http.Request) dashboard.Request {
	req := dashboard.Request{
		Query:          r.URL.Query(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}
	if c, err := r.Cookie(i18n.LangCookieName); err == nil {
		req.LangCookie = c.Value
	}
	if c, err := r.Cookie(dashboard.ThemeCookieName); err == nil {
		req.ThemeCookie = c.Value
	}
	return req
}

func (h *Handlers) state(w http.ResponseWriter, r *http.Request, page dashboard.Page) (dashboard.PageState, bool) {
	req := RequestFrom(r)
	state, err := h.Controller.State(page, req)
	if err != nil {
		writeError(w, err)
		return dashboard.PageState{}, false
	}
	for _, cookie := range h.Controller.PreferenceCookies(req) {
		http.SetCookie(w, cookie)
	}
	return state, true
}

// HandlePage renders a full HTML page.
func (h *Handlers) HandlePage(page dashboard.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := h.state(w, r, page)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := h.Controller.RenderTemplate(r.Context(), state, &buf); err != nil {
			writeError(w, err)
			return
		}
		writeHTML(w, buf.Bytes())
	}
}

// HandleDetail renders the detail dialog fragment of a record.
func (h *Handlers) HandleDetail(page dashboard.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := h.state(w, r, page)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := h.Controller.RenderDetail(r.Context(), state, r.PathValue("id"), &buf); err != nil {
			writeError(w, err)
			return
		}
		writeHTML(w, buf.Bytes())
	}
}

// HandleExport streams the filtered list as a download.
func (h *Handlers) HandleExport(page dashboard.Page, format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := h.state(w, r, page)
		if !ok {
			return
		}
		var buf bytes.Buffer
		resolved, err := h.Controller.Export(r.Context(), state, format, &buf)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", resolved.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="`+resolved.Filename(page)+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// HandleWidgets returns the resolved widgets of the overview or analytics page.
func (h *Handlers) HandleWidgets(page dashboard.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := h.state(w, r, page)
		if !ok {
			return
		}
		layout, err := h.Widgets.Query(r.Context(), state)
		respond(w, http.StatusOK, layout, err)
	}
}

func (h *Handlers) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	state, ok := h.state(w, r, dashboard.PageProducts)
	if !ok {
		return
	}
	list, err := h.Products.Query(r.Context(), state)
	respond(w, http.StatusOK, list, err)
}

func (h *Handlers) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.Product.Query(r.Context(), queries.DetailInput{ID: r.PathValue("id")})
	respond(w, http.StatusOK, product, err)
}

func (h *Handlers) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload dashboard.ProductInput
	if !decode(w, r, &payload) {
		return
	}
	var created dashboard.Product
	err := h.CreateProduct.Execute(r.Context(), commands.CreateProductInput{Product: payload, Result: &created})
	respond(w, http.StatusCreated, created, err)
}

func (h *Handlers) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var payload dashboard.ProductInput
	if !decode(w, r, &payload) {
		return
	}
	var updated dashboard.Product
	err := h.UpdateProduct.Execute(r.Context(), commands.UpdateProductInput{ID: r.PathValue("id"), Product: payload, Result: &updated})
	respond(w, http.StatusOK, updated, err)
}

func (h *Handlers) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteProduct.Execute(r.Context(), commands.DeleteProductInput{ID: r.PathValue("id")}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	state, ok := h.state(w, r, dashboard.PageCustomers)
	if !ok {
		return
	}
	list, err := h.Customers.Query(r.Context(), state)
	respond(w, http.StatusOK, list, err)
}

func (h *Handlers) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	detail, err := h.CustomerDetail.Query(r.Context(), queries.DetailInput{ID: r.PathValue("id")})
	respond(w, http.StatusOK, detail, err)
}

func (h *Handlers) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var payload dashboard.CustomerInput
	if !decode(w, r, &payload) {
		return
	}
	var created dashboard.Customer
	err := h.CreateCustomer.Execute(r.Context(), commands.CreateCustomerInput{Customer: payload, Result: &created})
	respond(w, http.StatusCreated, created, err)
}

func (h *Handlers) HandleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var payload dashboard.CustomerInput
	if !decode(w, r, &payload) {
		return
	}
	var updated dashboard.Customer
	err := h.UpdateCustomer.Execute(r.Context(), commands.UpdateCustomerInput{ID: r.PathValue("id"), Customer: payload, Result: &updated})
	respond(w, http.StatusOK, updated, err)
}

func (h *Handlers) HandleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteCustomer.Execute(r.Context(), commands.DeleteCustomerInput{ID: r.PathValue("id")}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	state, ok := h.state(w, r, dashboard.PageOrders)
	if !ok {
		return
	}
	list, err := h.Orders.Query(r.Context(), state)
	respond(w, http.StatusOK, list, err)
}

func (h *Handlers) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	detail, err := h.OrderDetail.Query(r.Context(), queries.DetailInput{ID: r.PathValue("id")})
	respond(w, http.StatusOK, detail, err)
}

func (h *Handlers) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	var order dashboard.Order
	err := h.CancelOrder.Execute(r.Context(), commands.CancelOrderInput{ID: r.PathValue("id"), Result: &order})
	respond(w, http.StatusOK, order, err)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func respond(w http.ResponseWriter, status int, body any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, dashboard.StatusFor(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
