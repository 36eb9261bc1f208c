package dashboard

import (
	"fmt"
	"strings"
)

// Category groups products on the catalog pages.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFurniture   Category = "furniture"
	CategoryAccessories Category = "accessories"
)

// Categories lists every product category in display order.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryClothing, CategoryFurniture, CategoryAccessories}
}

// ParseCategory validates a raw category value.
func ParseCategory(raw string) (Category, error) {
	return parseEnum(raw, "category", Categories())
}

// StockStatus is the inventory state of a product.
type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
)

// StockStatuses lists every stock status in display order.
func StockStatuses() []StockStatus {
	return []StockStatus{StockInStock, StockLowStock, StockOutOfStock}
}

// ParseStockStatus validates a raw stock status value.
func ParseStockStatus(raw string) (StockStatus, error) {
	return parseEnum(raw, "stock status", StockStatuses())
}

// CustomerStatus tracks whether a customer is still buying.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// CustomerStatuses lists every customer status in display order.
func CustomerStatuses() []CustomerStatus {
	return []CustomerStatus{CustomerActive, CustomerInactive}
}

// ParseCustomerStatus validates a raw customer status value.
func ParseCustomerStatus(raw string) (CustomerStatus, error) {
	return parseEnum(raw, "customer status", CustomerStatuses())
}

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every order status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
}

// ParseOrderStatus validates a raw order status value.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	return parseEnum(raw, "order status", OrderStatuses())
}

// PaymentStatus is the settlement state of an order payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentStatuses lists every payment status in display order.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentPaid, PaymentPending, PaymentFailed}
}

// ParsePaymentStatus validates a raw payment status value.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	return parseEnum(raw, "payment status", PaymentStatuses())
}

func parseEnum[T ~string](raw, domain string, values []T) (T, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range values {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, domain, raw)
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
