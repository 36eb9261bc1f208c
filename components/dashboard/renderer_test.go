package dashboard

import (
	"bytes"
	"context"
	"io/fs"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

func TestBundledTemplatesCoverEveryPage(t *testing.T) {
	templates := TemplateFS()
	for _, page := range Pages() {
		if _, err := fs.Stat(templates, TemplateFor(page)); err != nil {
			t.Fatalf("page %s: %v", page, err)
		}
	}
	for _, page := range []Page{PageProducts, PageCustomers, PageOrders} {
		_, err := fs.Stat(templates, DetailTemplateFor(page))
		assert.NoError(t, err, "detail template for %s", page)
	}
	assert.Equal(t, "partials/order_detail.html", DetailTemplateFor(PageOrders))
}

func newTemplateController(t *testing.T) *Controller {
	t.Helper()
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)
	return NewController(ControllerOptions{
		Service:  newTestService(t, Options{}),
		Renderer: renderer,
		BasePath: "/admin",
	})
}

func TestEmptyListsRenderLocalizedRow(t *testing.T) {
	controller := newTemplateController(t)
	dict := i18n.MustLoad()

	for _, page := range []Page{PageProducts, PageCustomers, PageOrders} {
		for _, lang := range i18n.Languages() {
			state, err := controller.State(page, Request{Query: url.Values{
				"lang": {string(lang)},
				"q":    {"no such record"},
			}})
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, controller.RenderTemplate(context.Background(), state, &buf), "%s/%s", page, lang)
			want := dict.Translate(lang, string(page)+".empty")
			if !bytes.Contains(buf.Bytes(), []byte(want)) {
				t.Fatalf("%s/%s: expected %q in the rendered page", page, lang, want)
			}
		}
	}
}

func TestMatchingListsOmitEmptyRow(t *testing.T) {
	controller := newTemplateController(t)
	state, err := controller.State(PageCustomers, Request{Query: url.Values{"lang": {"en"}, "q": {"emma"}}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, controller.RenderTemplate(context.Background(), state, &buf))
	assert.Contains(t, buf.String(), "Emma Martinez")
	assert.NotContains(t, buf.String(), "No customers found.")
}

func TestOverviewRendersWidgetCards(t *testing.T) {
	controller := newTemplateController(t)
	state, err := controller.State(PageOverview, Request{Query: url.Values{"lang": {"en"}}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, controller.RenderTemplate(context.Background(), state, &buf))
	assert.Contains(t, buf.String(), `id="widget-`)
	assert.Contains(t, buf.String(), "Page 1 of ")
}
