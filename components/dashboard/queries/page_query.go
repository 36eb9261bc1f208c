package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

type pageService interface {
	ResolvePage(ctx context.Context, state dashboard.PageState) (dashboard.PageLayout, error)
}

// PageQuery resolves the widgets laid out on the overview or analytics page.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[dashboard.PageState, dashboard.PageLayout] = (*PageQuery)(nil)

// Query resolves the page for the viewer state.
func (q *PageQuery) Query(ctx context.Context, state dashboard.PageState) (dashboard.PageLayout, error) {
	return q.service.ResolvePage(ctx, state)
}
