package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)
	assert.Equal(t, "orders.xlsx", format.Filename(PageOrders))
	assert.Contains(t, FormatCSV.ContentType(), "text/csv")

	_, err = ParseExportFormat("pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExportCSVUsesLocalizedHeaders(t *testing.T) {
	svc := newTestService(t, Options{})
	state := stateFor(t, PageProducts, StateParams{Category: "furniture", Language: "pt", Page: "2", Size: "1"})

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), state, FormatCSV, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "pagination is ignored by exports")
	assert.Equal(t, "Produto", records[0][1])
	assert.Equal(t, []string{"6", "Sofá Moderno", "SF-6006", "Móveis", "899.99", "0", "Sem Estoque"}, records[1])
}

func TestExportCSVWithoutRows(t *testing.T) {
	svc := newTestService(t, Options{})
	state := stateFor(t, PageOrders, StateParams{Search: "nobody"})

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), state, FormatCSV, &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Order Number", records[0][0])
}

func TestExportXLSXOpens(t *testing.T) {
	telemetry := &testTelemetry{}
	svc := newTestService(t, Options{Telemetry: telemetry})
	state := stateFor(t, PageCustomers, StateParams{Status: "active"})

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), state, FormatXLSX, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Sophia Anderson", rows[1][1])
	assert.Equal(t, 1, telemetry.count(EventExportGenerated))
}

func TestExportRejectsPagesWithoutLists(t *testing.T) {
	svc := newTestService(t, Options{})
	var buf bytes.Buffer
	err := svc.Export(context.Background(), stateFor(t, PageAnalytics, StateParams{}), FormatCSV, &buf)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOrderTableFormatsValues(t *testing.T) {
	table := OrderTable(i18n.MustLoad(), i18n.English, DefaultOrders()[:1])
	rows, ok := table.Rows.([]OrderRow)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, OrderRow{
		Number:   "#ORD-2023-1001",
		Customer: "Sophia Anderson",
		Date:     "2023-06-15",
		Total:    "299.99",
		Status:   "Delivered",
		Payment:  "Paid",
		Items:    3,
	}, rows[0])
}
