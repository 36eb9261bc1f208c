package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

type listService interface {
	Products(ctx context.Context, state dashboard.PageState) (dashboard.ProductList, error)
	Customers(ctx context.Context, state dashboard.PageState) (dashboard.CustomerList, error)
	Orders(ctx context.Context, state dashboard.PageState) (dashboard.OrderList, error)
}

// ProductListQuery returns one page of filtered products.
type ProductListQuery struct {
	service listService
}

// NewProductListQuery builds the query.
func NewProductListQuery(service listService) *ProductListQuery {
	return &ProductListQuery{service: service}
}

var _ gocommand.Querier[dashboard.PageState, dashboard.ProductList] = (*ProductListQuery)(nil)

// Query applies the state filters and pagination.
func (q *ProductListQuery) Query(ctx context.Context, state dashboard.PageState) (dashboard.ProductList, error) {
	return q.service.Products(ctx, state)
}

// CustomerListQuery returns one page of filtered customers.
type CustomerListQuery struct {
	service listService
}

// NewCustomerListQuery builds the query.
func NewCustomerListQuery(service listService) *CustomerListQuery {
	return &CustomerListQuery{service: service}
}

var _ gocommand.Querier[dashboard.PageState, dashboard.CustomerList] = (*CustomerListQuery)(nil)

// Query applies the state filters and pagination.
func (q *CustomerListQuery) Query(ctx context.Context, state dashboard.PageState) (dashboard.CustomerList, error) {
	return q.service.Customers(ctx, state)
}

// OrderListQuery returns one page of filtered orders.
type OrderListQuery struct {
	service listService
}

// NewOrderListQuery builds the query.
func NewOrderListQuery(service listService) *OrderListQuery {
	return &OrderListQuery{service: service}
}

var _ gocommand.Querier[dashboard.PageState, dashboard.OrderList] = (*OrderListQuery)(nil)

func (q *OrderListQuery) Query(ctx context.Context, state dashboard.PageState) (dashboard.OrderList, error) {
	return q.service.Orders(ctx, state)
}
