package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

type view struct {
	t        Translator
	lang     i18n.Language
	state    PageState
	basePath string
}

func (c *Controller) newView(state PageState) view {
	return view{
		t:        c.service.Translator(),
		lang:     state.Language,
		state:    state,
		basePath: c.basePath,
	}
}

func (v view) tr(key string) string {
	return v.t.Translate(v.lang, key)
}

// trf formats a message with arguments, using the dictionary printer when the
// translator has one.
func (v view) trf(key string, args ...any) string {
	if f, ok := v.t.(interface {
		Format(i18n.Language, string, ...any) string
	}); ok {
		return f.Format(v.lang, key, args...)
	}
	return fmt.Sprintf(v.t.Translate(v.lang, key), args...)
}

// TemplateKey converts a dictionary key to the identifier used inside templates,
// where dots would be read as attribute access.
func TemplateKey(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}

func (v view) table() map[string]string {
	if d, ok := v.t.(interface {
		Table(i18n.Language) map[string]string
	}); ok {
		table := d.Table(v.lang)
		out := make(map[string]string, len(table))
		for key, value := range table {
			out[TemplateKey(key)] = value
		}
		return out
	}
	return map[string]string{}
}

func (v view) languages() []i18n.LanguageOption {
	langs := i18n.Languages()
	out := make([]i18n.LanguageOption, 0, len(langs))
	for _, lang := range langs {
		out = append(out, i18n.LanguageOption{
			Language: lang,
			Label:    v.tr("lang." + string(lang)),
			URL:      i18n.LanguageURL(v.state.Path, lang),
			Active:   lang == v.lang,
		})
	}
	return out
}

func (v view) base() map[string]any {
	theme := ResolveTheme(v.state.Theme)
	return map[string]any{
		"lang":      string(v.lang),
		"html_lang": v.lang.Locale(),
		"t":         v.table(),
		"page":      string(v.state.Page),
		"title":     v.tr("nav." + string(v.state.Page)),
		"app_title": v.tr("app.title"),
		"base_path": v.basePath,
		"path":      v.state.Path,
		"nav":       Navigation(v.t, v.lang, v.basePath, v.state.Page),
		"languages": v.languages(),
		"themes":    ThemeOptions(v.t, v.lang, theme.Mode, v.state.Path),
		"theme":     theme,
		"css_vars":  strings.Join(theme.CSSVariables(), "; "),
		"period":    string(v.state.Period),
		"compare":   string(v.state.Compare),
	}
}

func (v view) badge(b Badge, ok bool) map[string]any {
	if !ok {
		return map[string]any{"empty": true}
	}
	b = b.Localize(v.t, v.lang)
	return map[string]any{
		"label":   b.Label,
		"tone":    string(b.Tone),
		"outline": b.Outline,
	}
}

func (v view) detailURL(page Page, id string) string {
	return i18n.LanguageURL(PagePath(v.basePath, page)+"/"+id, v.lang)
}

func (v view) exportURL(page Page, format ExportFormat) string {
	raw := PagePath(v.basePath, page) + "/export." + string(format)
	if idx := strings.Index(v.state.Path, "?"); idx >= 0 && v.state.Page == page {
		raw += v.state.Path[idx:]
	}
	raw = WithQuery(raw, "page", "")
	raw = WithQuery(raw, "size", "")
	return i18n.LanguageURL(raw, v.lang)
}

func (v view) pagination(info PageInfo) map[string]any {
	link := func(n int) string {
		return WithQuery(v.state.Path, "page", strconv.Itoa(n))
	}
	out := map[string]any{
		"number":      info.Number,
		"total_pages": info.TotalPages,
		"total_items": info.TotalItems,
		"has_prev":    info.HasPrev,
		"has_next":    info.HasNext,
		"label":       v.trf("pagination.label", info.Number, info.TotalPages),
	}
	if info.HasPrev {
		out["prev_url"] = link(info.Number - 1)
	}
	if info.HasNext {
		out["next_url"] = link(info.Number + 1)
	}
	return out
}

func (v view) money(amount float64) string {
	return i18n.FormatCurrency(v.lang, amount)
}

func (v view) productRow(p Product) map[string]any {
	return map[string]any{
		"id":         p.ID,
		"name":       p.NameFor(v.lang),
		"sku":        p.SKU,
		"image":      p.Image,
		"category":   CategoryLabel(v.t, v.lang, p.Category),
		"price":      v.money(p.Price),
		"stock":      i18n.FormatInteger(v.lang, p.Stock),
		"status":     v.badge(StockBadge(p.Status)),
		"detail_url": v.detailURL(PageProducts, p.ID),
	}
}

func (v view) productList(list ProductList) map[string]any {
	rows := make([]map[string]any, len(list.Items))
	for i, p := range list.Items {
		rows[i] = v.productRow(p)
	}
	category := v.state.Products.Category
	status := v.state.Products.Status
	return map[string]any{
		"rows":       rows,
		"empty":      list.Empty,
		"total":      list.Total,
		"pagination": v.pagination(list.Page),
		"search":     v.state.Products.Search,
		"categories": SelectionOptions(v.t, v.lang, category, Categories(), CategoryLabelKey),
		"statuses":   SelectionOptions(v.t, v.lang, status, StockStatuses(), stockLabelKey),
		"summary": map[string]any{
			"count":           i18n.FormatInteger(v.lang, list.Summary.Count),
			"units":           i18n.FormatInteger(v.lang, list.Summary.Units),
			"average_price":   v.money(list.Summary.AveragePrice),
			"median_price":    v.money(list.Summary.MedianPrice),
			"inventory_value": v.money(list.Summary.InventoryValue),
		},
		"export_csv":  v.exportURL(PageProducts, FormatCSV),
		"export_xlsx": v.exportURL(PageProducts, FormatXLSX),
	}
}

func (v view) productDetail(p Product) map[string]any {
	row := v.productRow(p)
	row["description"] = p.DescriptionFor(v.lang)
	row["stock_count"] = p.Stock
	return row
}

func (v view) customerRow(c Customer) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"email":       c.Email,
		"initials":    c.Initials(),
		"status":      v.badge(CustomerBadge(c.Status)),
		"orders":      i18n.FormatInteger(v.lang, c.Orders),
		"total_spent": v.money(c.TotalSpent),
		"last_order":  i18n.FormatDate(v.lang, c.LastOrder),
		"join_date":   i18n.FormatDate(v.lang, c.JoinDate),
		"country":     c.CountryFor(v.lang),
		"phone":       c.Phone,
		"detail_url":  v.detailURL(PageCustomers, c.ID),
	}
}

func (v view) customerList(list CustomerList) map[string]any {
	rows := make([]map[string]any, len(list.Items))
	for i, c := range list.Items {
		rows[i] = v.customerRow(c)
	}
	return map[string]any{
		"rows":       rows,
		"empty":      list.Empty,
		"total":      list.Total,
		"pagination": v.pagination(list.Page),
		"search":     v.state.Customers.Search,
		"statuses":   SelectionOptions(v.t, v.lang, v.state.Customers.Status, CustomerStatuses(), customerLabelKey),
		"summary": map[string]any{
			"count":         i18n.FormatInteger(v.lang, list.Summary.Count),
			"revenue":       v.money(list.Summary.Revenue),
			"average_spent": v.money(list.Summary.AverageSpent),
			"median_orders": i18n.FormatDecimal(v.lang, list.Summary.MedianOrders, 1),
		},
		"export_csv":  v.exportURL(PageCustomers, FormatCSV),
		"export_xlsx": v.exportURL(PageCustomers, FormatXLSX),
	}
}

const noAverage = "—"

func (v view) customerDetail(d CustomerDetail) map[string]any {
	out := v.customerRow(d.Customer)
	out["average_order_value"] = noAverage
	if d.HasAverage {
		out["average_order_value"] = v.money(d.AverageOrderValue)
	}
	history := make([]map[string]any, len(d.History))
	for i, h := range d.History {
		history[i] = map[string]any{
			"number": h.Number,
			"date":   i18n.FormatDate(v.lang, h.Date),
			"status": v.badge(OrderBadge(h.Status)),
			"total":  v.money(h.Total),
		}
	}
	out["history"] = history
	out["notes"] = []string{}
	return out
}

func (v view) orderRow(o Order) map[string]any {
	return map[string]any{
		"id":         o.ID,
		"number":     o.OrderNumber,
		"customer":   o.Customer,
		"date":       i18n.FormatDate(v.lang, o.Date),
		"total":      v.money(o.Total),
		"status":     v.badge(OrderBadge(o.Status)),
		"payment":    v.badge(PaymentBadge(o.PaymentStatus)),
		"items":      i18n.FormatInteger(v.lang, o.Items),
		"detail_url": v.detailURL(PageOrders, o.ID),
	}
}

func (v view) orderList(list OrderList) map[string]any {
	rows := make([]map[string]any, len(list.Items))
	for i, o := range list.Items {
		rows[i] = v.orderRow(o)
	}
	return map[string]any{
		"rows":       rows,
		"empty":      list.Empty,
		"total":      list.Total,
		"pagination": v.pagination(list.Page),
		"search":     v.state.Orders.Search,
		"statuses":   SelectionOptions(v.t, v.lang, v.state.Orders.Status, OrderStatuses(), orderLabelKey),
		"payments":   SelectionOptions(v.t, v.lang, v.state.Orders.Payment, PaymentStatuses(), paymentLabelKey),
		"summary": map[string]any{
			"count":         i18n.FormatInteger(v.lang, list.Summary.Count),
			"revenue":       v.money(list.Summary.Revenue),
			"average_total": v.money(list.Summary.AverageTotal),
			"items":         i18n.FormatInteger(v.lang, list.Summary.Items),
		},
		"export_csv":  v.exportURL(PageOrders, FormatCSV),
		"export_xlsx": v.exportURL(PageOrders, FormatXLSX),
	}
}

func (v view) orderDetail(d OrderDetail) map[string]any {
	out := v.orderRow(d.Order)
	out["email"] = d.Email
	out["transaction_id"] = d.TransactionID
	items := make([]map[string]any, len(d.Items))
	for i, item := range d.Items {
		items[i] = map[string]any{
			"name":     v.tr("orders.items.product") + " " + strconv.Itoa(item.Position),
			"quantity": i18n.FormatInteger(v.lang, item.Quantity),
			"price":    v.money(item.UnitPrice),
		}
	}
	out["line_items"] = items
	out["totals"] = map[string]any{
		"subtotal": v.money(d.Totals.Subtotal),
		"shipping": v.money(d.Totals.Shipping),
		"tax":      v.money(d.Totals.Tax),
		"total":    v.money(d.Totals.Total),
	}
	timeline := make([]map[string]any, len(d.Timeline))
	for i, entry := range d.Timeline {
		timeline[i] = map[string]any{
			"label":   v.tr(entry.LabelKey()),
			"at":      i18n.FormatDateTime(v.lang, entry.At),
			"reached": entry.Reached,
			"step":    string(entry.Step),
		}
	}
	out["timeline"] = timeline
	out["cancellable"] = d.Order.Status != OrderDelivered && d.Order.Status != OrderCancelled
	return out
}
