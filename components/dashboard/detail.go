package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	historyInterval = 30 * 24 * time.Hour
	historyBase     = 1000

	subtotalShare = 0.85
	shippingShare = 0.05
	taxShare      = 0.10
)

var historyStatusCycle = []OrderStatus{OrderDelivered, OrderShipped, OrderProcessing, OrderPending}

// transactionNamespace seeds deterministic transaction ids for order numbers.
var transactionNamespace = uuid.MustParse("6f1c7a4e-2b8d-4c1e-9a57-0d3e5b7c9f21")

// HistoryEntry is a synthetic past order shown on the customer detail dialog.
type HistoryEntry struct {
	Number string      `json:"number"`
	Date   time.Time   `json:"date"`
	Status OrderStatus `json:"status"`
	Total  float64     `json:"total"`
}

// CustomerDetail is the expanded view of a customer.
type CustomerDetail struct {
	Customer Customer `json:"customer"`
	Initials string   `json:"initials"`
	// AverageOrderValue is only meaningful when HasAverage is true.
	AverageOrderValue float64        `json:"average_order_value"`
	HasAverage        bool           `json:"has_average"`
	History           []HistoryEntry `json:"history"`
}

// AverageOrderValue divides total spent by order count. ok is false for customers without orders.
func AverageOrderValue(c Customer) (float64, bool) {
	if c.Orders <= 0 {
		return 0, false
	}
	return c.TotalSpent / float64(c.Orders), true
}

// OrderHistory fabricates one entry per order, walking back 30 days from the last order.
func OrderHistory(c Customer) []HistoryEntry {
	avg, ok := AverageOrderValue(c)
	if !ok {
		return nil
	}
	out := make([]HistoryEntry, c.Orders)
	for i := range out {
		out[i] = HistoryEntry{
			Number: fmt.Sprintf("#%04d", historyBase+i),
			Date:   c.LastOrder.Add(-time.Duration(i) * historyInterval),
			Status: historyStatusCycle[i%len(historyStatusCycle)],
			Total:  avg,
		}
	}
	return out
}

// BuildCustomerDetail projects a customer into its detail view.
func BuildCustomerDetail(c Customer) CustomerDetail {
	avg, ok := AverageOrderValue(c)
	return CustomerDetail{
		Customer:          c,
		Initials:          c.Initials(),
		AverageOrderValue: avg,
		HasAverage:        ok,
		History:           OrderHistory(c),
	}
}

// LineItem is a synthetic order line.
type LineItem struct {
	Position  int     `json:"position"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Totals splits an order total into subtotal, shipping, and tax.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// TimelineStep identifies a point on the order timeline.
type TimelineStep string

const (
	StepCreated          TimelineStep = "created"
	StepPaymentConfirmed TimelineStep = "payment_confirmed"
	StepProcessing       TimelineStep = "processing"
	StepShipped          TimelineStep = "shipped"
	StepDelivered        TimelineStep = "delivered"
	StepCancelled        TimelineStep = "cancelled"
)

// TimelineEntry is one step with its timestamp and whether the order has reached it.
type TimelineEntry struct {
	Step    TimelineStep `json:"step"`
	At      time.Time    `json:"at"`
	Reached bool         `json:"reached"`
}

// LabelKey returns the dictionary key for the step.
func (e TimelineEntry) LabelKey() string {
	return "orders.timeline." + string(e.Step)
}

// OrderDetail is the expanded view of an order.
type OrderDetail struct {
	Order         Order           `json:"order"`
	Email         string          `json:"email"`
	TransactionID string          `json:"transaction_id"`
	Items         []LineItem      `json:"items"`
	Totals        Totals          `json:"totals"`
	Timeline      []TimelineEntry `json:"timeline"`
}

// CustomerEmail synthesizes the contact address shown for an order's customer.
func CustomerEmail(name string) string {
	local := strings.Replace(strings.ToLower(strings.TrimSpace(name)), " ", ".", 1)
	return local + "@example.com"
}

// TransactionID derives a stable payment reference from the order number.
func TransactionID(orderNumber string) string {
	id := uuid.NewSHA1(transactionNamespace, []byte(orderNumber))
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// LineItems splits the order total evenly over its item count.
func LineItems(o Order) []LineItem {
	if o.Items <= 0 {
		return nil
	}
	unit := o.Total / float64(o.Items)
	out := make([]LineItem, o.Items)
	for i := range out {
		out[i] = LineItem{Position: i + 1, Quantity: 1, UnitPrice: unit}
	}
	return out
}

// SplitTotals breaks an order total into its display components.
func SplitTotals(total float64) Totals {
	return Totals{
		Subtotal: total * subtotalShare,
		Shipping: total * shippingShare,
		Tax:      total * taxShare,
		Total:    total,
	}
}

// Timeline builds the fulfilment steps for an order. Cancelled orders reach no
// fulfilment step and end with a cancelled entry.
func Timeline(o Order) []TimelineEntry {
	at := func(h int) time.Time { return o.Date.Add(time.Duration(h) * time.Hour) }
	rank := fulfilmentRank(o.Status)
	steps := []TimelineEntry{
		{Step: StepCreated, At: o.Date, Reached: true},
		{Step: StepPaymentConfirmed, At: at(1), Reached: o.PaymentStatus == PaymentPaid},
		{Step: StepProcessing, At: at(24), Reached: rank >= 1},
		{Step: StepShipped, At: at(48), Reached: rank >= 2},
		{Step: StepDelivered, At: at(96), Reached: rank >= 3},
	}
	if o.Status == OrderCancelled {
		steps = append(steps, TimelineEntry{Step: StepCancelled, At: o.Date, Reached: true})
	}
	return steps
}

func fulfilmentRank(s OrderStatus) int {
	switch s {
	case OrderProcessing:
		return 1
	case OrderShipped:
		return 2
	case OrderDelivered:
		return 3
	default:
		return 0
	}
}

// BuildOrderDetail projects an order into its detail view.
func BuildOrderDetail(o Order) OrderDetail {
	return OrderDetail{
		Order:         o,
		Email:         CustomerEmail(o.Customer),
		TransactionID: TransactionID(o.OrderNumber),
		Items:         LineItems(o),
		Totals:        SplitTotals(o.Total),
		Timeline:      Timeline(o),
	}
}
