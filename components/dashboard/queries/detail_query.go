package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

// DetailInput identifies the record shown in a detail dialog.
type DetailInput struct {
	ID string
}

type detailService interface {
	Product(ctx context.Context, id string) (dashboard.Product, error)
	CustomerDetail(ctx context.Context, id string) (dashboard.CustomerDetail, error)
	OrderDetail(ctx context.Context, id string) (dashboard.OrderDetail, error)
}

// ProductQuery fetches a single product.
type ProductQuery struct {
	service detailService
}

// NewProductQuery builds the query.
func NewProductQuery(service detailService) *ProductQuery {
	return &ProductQuery{service: service}
}

var _ gocommand.Querier[DetailInput, dashboard.Product] = (*ProductQuery)(nil)

func (q *ProductQuery) Query(ctx context.Context, input DetailInput) (dashboard.Product, error) {
	return q.service.Product(ctx, input.ID)
}

// CustomerDetailQuery projects a customer with its order history.
type CustomerDetailQuery struct {
	service detailService
}

// NewCustomerDetailQuery builds the query.
func NewCustomerDetailQuery(service detailService) *CustomerDetailQuery {
	return &CustomerDetailQuery{service: service}
}

var _ gocommand.Querier[DetailInput, dashboard.CustomerDetail] = (*CustomerDetailQuery)(nil)

func (q *CustomerDetailQuery) Query(ctx context.Context, input DetailInput) (dashboard.CustomerDetail, error) {
	return q.service.CustomerDetail(ctx, input.ID)
}

// OrderDetailQuery projects an order with line items, totals, and timeline.
type OrderDetailQuery struct {
	service detailService
}

// NewOrderDetailQuery builds the query.
func NewOrderDetailQuery(service detailService) *OrderDetailQuery {
	return &OrderDetailQuery{service: service}
}

var _ gocommand.Querier[DetailInput, dashboard.OrderDetail] = (*OrderDetailQuery)(nil)

func (q *OrderDetailQuery) Query(ctx context.Context, input DetailInput) (dashboard.OrderDetail, error) {
	return q.service.OrderDetail(ctx, input.ID)
}
