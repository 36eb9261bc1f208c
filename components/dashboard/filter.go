package dashboard

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// SelectAll is the wildcard filter value meaning "no constraint".
const SelectAll = "all"

// Predicate decides whether a record is kept.
type Predicate[T any] func(T) bool

// Apply returns the records that satisfy every predicate, in their original order.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Selection is a filter choice over a closed domain; the zero value matches everything.
type Selection[V comparable] struct {
	value V
	set   bool
}

// Any returns the wildcard selection.
func Any[V comparable]() Selection[V] {
	return Selection[V]{}
}

// Only returns a selection matching a single value.
func Only[V comparable](v V) Selection[V] {
	return Selection[V]{value: v, set: true}
}

// IsAll reports whether the selection is the wildcard.
func (s Selection[V]) IsAll() bool {
	return !s.set
}

// Value returns the selected value and whether one is set.
func (s Selection[V]) Value() (V, bool) {
	return s.value, s.set
}

// Matches reports whether v satisfies the selection.
func (s Selection[V]) Matches(v V) bool {
	return !s.set || s.value == v
}

func (s Selection[V]) String() string {
	if !s.set {
		return SelectAll
	}
	return fmt.Sprint(s.value)
}

// ParseSelection maps "all" or "" to the wildcard and rejects values outside the domain.
func ParseSelection[V ~string](raw string, values []V) (Selection[V], error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == SelectAll {
		return Any[V](), nil
	}
	for _, candidate := range values {
		if string(candidate) == value {
			return Only(candidate), nil
		}
	}
	return Selection[V]{}, fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
}

// Equals keeps records whose field equals the selection, or every record for the wildcard.
func Equals[T any, V comparable](sel Selection[V], field func(T) V) Predicate[T] {
	if sel.IsAll() {
		return nil
	}
	return func(item T) bool {
		return sel.Matches(field(item))
	}
}

// Contains keeps records where any field contains term, ignoring case. The term
// is matched as typed, whitespace included. An empty term keeps everything.
func Contains[T any](term string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(term)
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	}
}

// ProductQuery filters the product list by category, stock status, and localized name.
type ProductQuery struct {
	Category Selection[Category]
	Status   Selection[StockStatus]
	Search   string
}

// ParseProductQuery builds a ProductQuery from raw request values.
func ParseProductQuery(category, status, search string) (ProductQuery, error) {
	cat, err := ParseSelection(category, Categories())
	if err != nil {
		return ProductQuery{}, fmt.Errorf("category: %w", err)
	}
	st, err := ParseSelection(status, StockStatuses())
	if err != nil {
		return ProductQuery{}, fmt.Errorf("status: %w", err)
	}
	return ProductQuery{Category: cat, Status: st, Search: search}, nil
}

// Filter applies the query to products, searching names in the given language.
func (q ProductQuery) Filter(lang i18n.Language, items []Product) []Product {
	return Apply(items,
		Equals(q.Category, func(p Product) Category { return p.Category }),
		Equals(q.Status, func(p Product) StockStatus { return p.Status }),
		Contains(q.Search, func(p Product) string { return p.NameFor(lang) }),
	)
}

// CustomerQuery filters the customer list by status and name or email.
type CustomerQuery struct {
	Status Selection[CustomerStatus]
	Search string
}

// ParseCustomerQuery builds a CustomerQuery from raw request values.
func ParseCustomerQuery(status, search string) (CustomerQuery, error) {
	st, err := ParseSelection(status, CustomerStatuses())
	if err != nil {
		return CustomerQuery{}, fmt.Errorf("status: %w", err)
	}
	return CustomerQuery{Status: st, Search: search}, nil
}

// Filter applies the query to customers.
func (q CustomerQuery) Filter(items []Customer) []Customer {
	return Apply(items,
		Equals(q.Status, func(c Customer) CustomerStatus { return c.Status }),
		Contains(q.Search,
			func(c Customer) string { return c.Name },
			func(c Customer) string { return c.Email },
		),
	)
}

// OrderQuery filters the order list by fulfilment status, payment status, and number or customer.
type OrderQuery struct {
	Status  Selection[OrderStatus]
	Payment Selection[PaymentStatus]
	Search  string
}

// ParseOrderQuery builds an OrderQuery from raw request values.
func ParseOrderQuery(status, payment, search string) (OrderQuery, error) {
	st, err := ParseSelection(status, OrderStatuses())
	if err != nil {
		return OrderQuery{}, fmt.Errorf("status: %w", err)
	}
	pay, err := ParseSelection(payment, PaymentStatuses())
	if err != nil {
		return OrderQuery{}, fmt.Errorf("payment: %w", err)
	}
	return OrderQuery{Status: st, Payment: pay, Search: search}, nil
}

// Filter applies the query to orders.
func (q OrderQuery) Filter(items []Order) []Order {
	return Apply(items,
		Equals(q.Status, func(o Order) OrderStatus { return o.Status }),
		Equals(q.Payment, func(o Order) PaymentStatus { return o.PaymentStatus }),
		Contains(q.Search,
			func(o Order) string { return o.OrderNumber },
			func(o Order) string { return o.Customer },
		),
	)
}
