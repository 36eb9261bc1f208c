package dashboard

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ettle/strcase"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// ExportFormat is the file type produced by an export.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat accepts csv and xlsx, case-insensitively.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
}

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename names the download for a page.
func (f ExportFormat) Filename(page Page) string {
	return string(page) + "." + string(f)
}

// ProductRow is one exported product line.
type ProductRow struct {
	ID       string `csv:"id"`
	Name     string `csv:"name"`
	SKU      string `csv:"sku"`
	Category string `csv:"category"`
	Price    string `csv:"price"`
	Stock    int    `csv:"stock"`
	Status   string `csv:"status"`
}

// CustomerRow is one exported customer line.
type CustomerRow struct {
	ID         string `csv:"id"`
	Name       string `csv:"name"`
	Email      string `csv:"email"`
	Status     string `csv:"status"`
	Orders     int    `csv:"orders"`
	TotalSpent string `csv:"total_spent"`
	LastOrder  string `csv:"last_order"`
	JoinDate   string `csv:"join_date"`
}

// OrderRow is one exported order line.
type OrderRow struct {
	Number   string `csv:"number"`
	Customer string `csv:"customer"`
	Date     string `csv:"date"`
	Total    string `csv:"total"`
	Status   string `csv:"status"`
	Payment  string `csv:"payment"`
	Items    int    `csv:"items"`
}

// ExportTable is a localized header plus typed rows ready for encoding.
type ExportTable struct {
	Page    Page
	Headers []string
	// Rows holds a slice of ProductRow, CustomerRow, or OrderRow.
	Rows  any
	cells [][]any
}

// Len returns the number of data rows.
func (t ExportTable) Len() int {
	return len(t.cells)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(inputDateLayout)
}

// ProductTable builds the export table for products.
func ProductTable(t Translator, lang i18n.Language, items []Product) ExportTable {
	tr := normalizeTranslator(t)
	rows := make([]ProductRow, len(items))
	cells := make([][]any, len(items))
	for i, p := range items {
		status, _ := StockBadge(p.Status)
		rows[i] = ProductRow{
			ID:       p.ID,
			Name:     p.NameFor(lang),
			SKU:      p.SKU,
			Category: CategoryLabel(tr, lang, p.Category),
			Price:    money(p.Price),
			Stock:    p.Stock,
			Status:   status.Localize(tr, lang).Label,
		}
		r := rows[i]
		cells[i] = []any{r.ID, r.Name, r.SKU, r.Category, p.Price, r.Stock, r.Status}
	}
	return ExportTable{
		Page:    PageProducts,
		Headers: translateAll(tr, lang, "products.column.id", "products.column.product", "products.column.sku", "products.column.category", "products.column.price", "products.column.stock", "products.column.status"),
		Rows:    rows,
		cells:   cells,
	}
}

// CustomerTable builds the export table for customers.
func CustomerTable(t Translator, lang i18n.Language, items []Customer) ExportTable {
	tr := normalizeTranslator(t)
	rows := make([]CustomerRow, len(items))
	cells := make([][]any, len(items))
	for i, c := range items {
		status, _ := CustomerBadge(c.Status)
		rows[i] = CustomerRow{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			Status:     status.Localize(tr, lang).Label,
			Orders:     c.Orders,
			TotalSpent: money(c.TotalSpent),
			LastOrder:  isoDate(c.LastOrder),
			JoinDate:   isoDate(c.JoinDate),
		}
		r := rows[i]
		cells[i] = []any{r.ID, r.Name, r.Email, r.Status, r.Orders, c.TotalSpent, r.LastOrder, r.JoinDate}
	}
	return ExportTable{
		Page:    PageCustomers,
		Headers: translateAll(tr, lang, "customers.column.id", "customers.column.name", "customers.column.email", "customers.column.status", "customers.column.orders", "customers.column.total_spent", "customers.column.last_order", "customers.column.join_date"),
		Rows:    rows,
		cells:   cells,
	}
}

// OrderTable builds the export table for orders.
func OrderTable(t Translator, lang i18n.Language, items []Order) ExportTable {
	tr := normalizeTranslator(t)
	rows := make([]OrderRow, len(items))
	cells := make([][]any, len(items))
	for i, o := range items {
		status, _ := OrderBadge(o.Status)
		payment, _ := PaymentBadge(o.PaymentStatus)
		rows[i] = OrderRow{
			Number:   o.OrderNumber,
			Customer: o.Customer,
			Date:     isoDate(o.Date),
			Total:    money(o.Total),
			Status:   status.Localize(tr, lang).Label,
			Payment:  payment.Localize(tr, lang).Label,
			Items:    o.Items,
		}
		r := rows[i]
		cells[i] = []any{r.Number, r.Customer, r.Date, o.Total, r.Status, r.Payment, r.Items}
	}
	return ExportTable{
		Page:    PageOrders,
		Headers: translateAll(tr, lang, "orders.column.number", "orders.column.customer", "orders.column.date", "orders.column.total", "orders.column.status", "orders.column.payment", "orders.column.items"),
		Rows:    rows,
		cells:   cells,
	}
}

func translateAll(t Translator, lang i18n.Language, keys ...string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = t.Translate(lang, key)
	}
	return out
}

// WriteExport encodes the table in the requested format.
func WriteExport(w io.Writer, format ExportFormat, table ExportTable) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, table)
	case FormatXLSX:
		return writeXLSX(w, table)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeCSV(w io.Writer, table ExportTable) error {
	header := csv.NewWriter(w)
	if err := header.Write(table.Headers); err != nil {
		return err
	}
	header.Flush()
	if err := header.Error(); err != nil {
		return err
	}
	if table.Len() == 0 {
		return nil
	}
	return gocsv.MarshalWithoutHeaders(table.Rows, w)
}

func writeXLSX(w io.Writer, table ExportTable) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := strcase.ToPascal(string(table.Page))
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	for i, h := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range table.cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

// Export writes the filtered list of the state's page, ignoring pagination.
func (s *Service) Export(ctx context.Context, state PageState, format ExportFormat, w io.Writer) error {
	var table ExportTable
	switch state.Page {
	case PageProducts, PageOverview:
		items, err := s.FilterProducts(ctx, state)
		if err != nil {
			return err
		}
		table = ProductTable(s.opts.Translator, state.Language, items)
	case PageCustomers:
		items, err := s.FilterCustomers(ctx, state)
		if err != nil {
			return err
		}
		table = CustomerTable(s.opts.Translator, state.Language, items)
	case PageOrders:
		items, err := s.FilterOrders(ctx, state)
		if err != nil {
			return err
		}
		table = OrderTable(s.opts.Translator, state.Language, items)
	default:
		return fmt.Errorf("%w: page %s has no export", ErrUnsupportedFormat, state.Page)
	}
	if err := WriteExport(w, format, table); err != nil {
		return err
	}
	s.recordTelemetry(ctx, EventExportGenerated, map[string]any{
		"page":   string(table.Page),
		"format": string(format),
		"rows":   table.Len(),
	})
	return nil
}
