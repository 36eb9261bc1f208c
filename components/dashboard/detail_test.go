package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerDetailProjection(t *testing.T) {
	c := Customer{ID: "9", Name: "Ana Paula Souza", Orders: 3, TotalSpent: 300, LastOrder: day(2023, time.June, 30)}
	detail := BuildCustomerDetail(c)
	assert.Equal(t, "APS", detail.Initials)
	assert.True(t, detail.HasAverage)
	assert.InDelta(t, 100, detail.AverageOrderValue, 0.001)

	require.Len(t, detail.History, 3)
	assert.Equal(t, "#1000", detail.History[0].Number)
	assert.Equal(t, c.LastOrder, detail.History[0].Date)
	assert.Equal(t, c.LastOrder.Add(-60*24*time.Hour), detail.History[2].Date)
	assert.Equal(t, OrderDelivered, detail.History[0].Status)
	assert.Equal(t, OrderProcessing, detail.History[2].Status)

	none := BuildCustomerDetail(Customer{Name: "New"})
	assert.False(t, none.HasAverage)
	assert.Empty(t, none.History)
}

func TestOrderDetailProjection(t *testing.T) {
	order := DefaultOrders()[1]
	detail := BuildOrderDetail(order)

	assert.Equal(t, "james.wilson@example.com", detail.Email)
	assert.True(t, strings.HasPrefix(detail.TransactionID, "TXN-"))
	assert.Len(t, detail.TransactionID, 12)
	assert.Equal(t, detail.TransactionID, TransactionID(order.OrderNumber), "transaction ids are stable")
	assert.NotEqual(t, detail.TransactionID, TransactionID("#ORD-2023-1003"))

	require.Len(t, detail.Items, order.Items)
	assert.InDelta(t, order.Total/2, detail.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, order.Total, detail.Totals.Subtotal+detail.Totals.Shipping+detail.Totals.Tax, 0.001)
}

func TestTimelineReflectsStatus(t *testing.T) {
	reached := func(entries []TimelineEntry) map[TimelineStep]bool {
		out := map[TimelineStep]bool{}
		for _, e := range entries {
			out[e.Step] = e.Reached
		}
		return out
	}

	shipped := reached(Timeline(Order{Status: OrderShipped, PaymentStatus: PaymentPaid}))
	assert.True(t, shipped[StepPaymentConfirmed])
	assert.True(t, shipped[StepShipped])
	assert.False(t, shipped[StepDelivered])

	pending := reached(Timeline(Order{Status: OrderPending, PaymentStatus: PaymentPending}))
	assert.True(t, pending[StepCreated])
	assert.False(t, pending[StepPaymentConfirmed])
	assert.False(t, pending[StepProcessing])

	cancelled := Timeline(Order{Status: OrderCancelled, PaymentStatus: PaymentFailed})
	require.Len(t, cancelled, 6)
	assert.Equal(t, StepCancelled, cancelled[5].Step)
	assert.Equal(t, "orders.timeline.cancelled", cancelled[5].LabelKey())
	assert.False(t, reached(cancelled)[StepProcessing])
}

func TestSummaries(t *testing.T) {
	products := SummarizeProducts(DefaultProducts())
	assert.Equal(t, 8, products.Count)
	assert.Equal(t, 313, products.Units)

	empty := SummarizeProducts(nil)
	assert.Equal(t, ProductSummary{}, empty)

	orders := SummarizeOrders(DefaultOrders())
	assert.Equal(t, 8, orders.Count)
	assert.Equal(t, 18, orders.Items)
	assert.InDelta(t, 2319.35, orders.Revenue, 0.001)

	customers := SummarizeCustomers([]Customer{{Orders: 1, TotalSpent: 10}, {Orders: 3, TotalSpent: 30}})
	assert.InDelta(t, 40, customers.Revenue, 0.001)
	assert.InDelta(t, 20, customers.AverageSpent, 0.001)
	assert.InDelta(t, 2, customers.MedianOrders, 0.001)
}

func TestBadgesCoverEveryStatus(t *testing.T) {
	for _, s := range StockStatuses() {
		b, ok := StockBadge(s)
		assert.True(t, ok)
		assert.NotEmpty(t, b.LabelKey)
	}
	for _, s := range OrderStatuses() {
		_, ok := OrderBadge(s)
		assert.True(t, ok, "order status %s", s)
	}
	b, ok := PaymentBadge("refunded")
	assert.False(t, ok)
	assert.True(t, b.Empty())
}
