package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/commands"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommander[T any] struct {
	last  T
	calls int
	err   error
}

func (s *stubCommander[T]) Execute(ctx context.Context, msg T) error {
	s.last = msg
	s.calls++
	return s.err
}

type stubRenderer struct {
	last string
}

func (r *stubRenderer) Render(name string, _ any, out ...io.Writer) (string, error) {
	r.last = name
	if len(out) > 0 && out[0] != nil {
		_, _ = io.WriteString(out[0], "<section>"+name+"</section>")
	}
	return name, nil
}

func newServer(t *testing.T) (*http.ServeMux, *stubRenderer) {
	t.Helper()
	renderer := &stubRenderer{}
	rt, err := dashboard.Bootstrap(dashboard.BootstrapOptions{Renderer: renderer, BasePath: "/admin"})
	require.NoError(t, err)
	t.Cleanup(rt.Close)
	mux := http.NewServeMux()
	NewHandlers(rt, nil).Mount(mux, "/admin")
	return mux, renderer
}

func do(mux http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		buf, _ := json.Marshal(body)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListProductsAppliesFilters(t *testing.T) {
	mux, _ := newServer(t)
	rec := do(mux, http.MethodGet, "/admin/api/products?category=electronics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list dashboard.ProductList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 83, list.Summary.Units)

	rec = do(mux, http.MethodGet, "/admin/api/orders?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	mux, _ := newServer(t)
	payload := dashboard.ProductInput{Name: "Desk Lamp", Price: 59.9, Category: "furniture", Stock: 0, SKU: "DL-9009"}

	rec := do(mux, http.MethodPost, "/admin/api/products", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created dashboard.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, dashboard.StockOutOfStock, created.Status)

	rec = do(mux, http.MethodPost, "/admin/api/products", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	payload.Stock = 50
	rec = do(mux, http.MethodPut, "/admin/api/products/"+created.ID, payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(mux, http.MethodDelete, "/admin/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(mux, http.MethodGet, "/admin/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductRejectsInvalidPayloads(t *testing.T) {
	mux, _ := newServer(t)
	rec := do(mux, http.MethodPost, "/admin/api/products", map[string]any{"name": "Lamp", "sku": "lamp"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/products", strings.NewReader("{"))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrderOverHTTP(t *testing.T) {
	mux, _ := newServer(t)

	rec := do(mux, http.MethodPost, "/admin/api/orders/4/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var order dashboard.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, dashboard.OrderCancelled, order.Status)

	rec = do(mux, http.MethodPost, "/admin/api/orders/1/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(mux, http.MethodGet, "/admin/api/orders/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPagesPersistPreferences(t *testing.T) {
	mux, renderer := newServer(t)
	rec := do(mux, http.MethodGet, "/admin/products?lang=en&theme=dark", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "products.html", renderer.last)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	names := map[string]string{}
	for _, c := range rec.Result().Cookies() {
		names[c.Name] = c.Value
	}
	assert.Equal(t, "en", names[i18n.LangCookieName])
	assert.Equal(t, "dark", names[dashboard.ThemeCookieName])

	rec = do(mux, http.MethodGet, "/admin/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "overview.html", renderer.last)

	rec = do(mux, http.MethodGet, "/admin/orders/6", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partials/order_detail.html", renderer.last)

	rec = do(mux, http.MethodGet, "/admin/customers/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportDownload(t *testing.T) {
	mux, _ := newServer(t)
	rec := do(mux, http.MethodGet, "/admin/orders/export.csv?status=cancelled", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders.csv")
	assert.Contains(t, rec.Body.String(), "ORD-2023-1006")
	assert.NotContains(t, rec.Body.String(), "ORD-2023-1001")
}

func TestHandleUpdateProductPassesPathID(t *testing.T) {
	update := &stubCommander[commands.UpdateProductInput]{}
	api := &Handlers{UpdateProduct: update}
	buf, _ := json.Marshal(dashboard.ProductInput{Name: "Lamp"})
	req := httptest.NewRequest(http.MethodPut, "/api/products/p1", bytes.NewReader(buf))
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	api.HandleUpdateProduct(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if update.last.ID != "p1" || update.last.Product.Name != "Lamp" {
		t.Fatalf("expected id and payload propagation, got %+v", update.last)
	}
}

func TestWidgetsOverHTTP(t *testing.T) {
	mux, _ := newServer(t)
	rec := do(mux, http.MethodGet, "/admin/api/widgets/overview?lang=en", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var layout struct {
		Page    string `json:"page"`
		Widgets []struct {
			ElementID string         `json:"element_id"`
			Data      map[string]any `json:"data"`
		} `json:"widgets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
	assert.Equal(t, "overview", layout.Page)
	require.Len(t, layout.Widgets, 6)
	for _, widget := range layout.Widgets {
		if !strings.HasPrefix(widget.ElementID, "widget-") {
			t.Fatalf("unexpected element id %q", widget.ElementID)
		}
	}

	rec = do(mux, http.MethodGet, "/admin/api/widgets/analytics?compare=none", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
	assert.Len(t, layout.Widgets, 10)
}
