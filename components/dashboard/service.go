package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Entities and actions carried by catalog events.
const (
	EntityProduct  = "product"
	EntityCustomer = "customer"
	EntityOrder    = "order"

	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionCancelled = "cancelled"
)

// Options configures the dashboard Service. Every collaborator is provided via
// interface so applications can swap implementations, for example a database
// backed CatalogStore in place of the in-memory one.
type Options struct {
	Store      CatalogStore
	Translator Translator
	Providers  ProviderRegistry
	Validator  InputValidator
	Hook       CatalogHook
	Telemetry  Telemetry
	// PageSize is the list page size used when a request does not ask for one.
	PageSize int
	Now      func() time.Time
}

// Service serves list, detail, and mutation operations over the catalog.
type Service struct {
	opts Options
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	opts.Translator = normalizeTranslator(opts.Translator)
	if opts.Providers == nil {
		opts.Providers = NewRegistry()
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.Hook == nil {
		opts.Hook = noopCatalogHook{}
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

type noopCatalogHook struct{}

func (noopCatalogHook) CatalogUpdated(context.Context, CatalogEvent) error { return nil }

// Translator exposes the dictionary used by the service.
func (s *Service) Translator() Translator {
	return s.opts.Translator
}

// ListResult is one page of a filtered list plus footer figures over every filtered row.
type ListResult[T any, S any] struct {
	Items   []T      `json:"items"`
	Page    PageInfo `json:"page"`
	Total   int      `json:"total"`
	Empty   bool     `json:"empty"`
	Summary S        `json:"summary"`
}

// ProductList is the products page result.
type ProductList = ListResult[Product, ProductSummary]

// CustomerList is the customers page result.
type CustomerList = ListResult[Customer, CustomerSummary]

// OrderList is the orders page result.
type OrderList = ListResult[Order, OrderSummary]

func newListResult[T any, S any](filtered []T, req PageRequest, size int, summary S) ListResult[T, S] {
	items, info := Paginate(filtered, req, size)
	return ListResult[T, S]{
		Items:   items,
		Page:    info,
		Total:   len(filtered),
		Empty:   len(filtered) == 0,
		Summary: summary,
	}
}

// FilterProducts returns every product matching the query, in store order.
func (s *Service) FilterProducts(ctx context.Context, state PageState) ([]Product, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	items, err := store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return state.Products.Filter(state.Language, items), nil
}

// FilterCustomers returns every customer matching the query, in store order.
func (s *Service) FilterCustomers(ctx context.Context, state PageState) ([]Customer, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	items, err := store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return state.Customers.Filter(items), nil
}

// FilterOrders returns every order matching the query, in store order.
func (s *Service) FilterOrders(ctx context.Context, state PageState) ([]Order, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	items, err := store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return state.Orders.Filter(items), nil
}

// Products returns the requested page of filtered products.
func (s *Service) Products(ctx context.Context, state PageState) (ProductList, error) {
	filtered, err := s.FilterProducts(ctx, state)
	if err != nil {
		return ProductList{}, err
	}
	result := newListResult(filtered, state.Pagination, s.opts.PageSize, SummarizeProducts(filtered))
	s.recordList(ctx, EntityProduct, result.Total)
	return result, nil
}

// Customers returns the requested page of filtered customers.
func (s *Service) Customers(ctx context.Context, state PageState) (CustomerList, error) {
	filtered, err := s.FilterCustomers(ctx, state)
	if err != nil {
		return CustomerList{}, err
	}
	result := newListResult(filtered, state.Pagination, s.opts.PageSize, SummarizeCustomers(filtered))
	s.recordList(ctx, EntityCustomer, result.Total)
	return result, nil
}

// Orders returns the requested page of filtered orders.
func (s *Service) Orders(ctx context.Context, state PageState) (OrderList, error) {
	filtered, err := s.FilterOrders(ctx, state)
	if err != nil {
		return OrderList{}, err
	}
	result := newListResult(filtered, state.Pagination, s.opts.PageSize, SummarizeOrders(filtered))
	s.recordList(ctx, EntityOrder, result.Total)
	return result, nil
}

// Product fetches a single product.
func (s *Service) Product(ctx context.Context, id string) (Product, error) {
	store, err := s.store()
	if err != nil {
		return Product{}, err
	}
	return store.GetProduct(ctx, id)
}

// CustomerDetail fetches a customer and projects its detail view.
func (s *Service) CustomerDetail(ctx context.Context, id string) (CustomerDetail, error) {
	store, err := s.store()
	if err != nil {
		return CustomerDetail{}, err
	}
	c, err := store.GetCustomer(ctx, id)
	if err != nil {
		return CustomerDetail{}, err
	}
	return BuildCustomerDetail(c), nil
}

// OrderDetail fetches an order and projects its detail view.
func (s *Service) OrderDetail(ctx context.Context, id string) (OrderDetail, error) {
	store, err := s.store()
	if err != nil {
		return OrderDetail{}, err
	}
	o, err := store.GetOrder(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	return BuildOrderDetail(o), nil
}

// CreateProduct validates the payload and stores a new product.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	store, err := s.store()
	if err != nil {
		return Product{}, err
	}
	p, err := s.productFromInput(ctx, "", in)
	if err != nil {
		return Product{}, err
	}
	created, err := store.CreateProduct(ctx, p)
	if err != nil {
		return Product{}, err
	}
	s.notify(ctx, EntityProduct, ActionCreated, created.ID)
	return created, nil
}

// UpdateProduct replaces an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	store, err := s.store()
	if err != nil {
		return Product{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Product{}, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	p, err := s.productFromInput(ctx, id, in)
	if err != nil {
		return Product{}, err
	}
	updated, err := store.UpdateProduct(ctx, p)
	if err != nil {
		return Product{}, err
	}
	s.notify(ctx, EntityProduct, ActionUpdated, id)
	return updated, nil
}

// DeleteProduct removes a product.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	store, err := s.store()
	if err != nil {
		return err
	}
	if err := store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, EntityProduct, ActionDeleted, id)
	return nil
}

// CreateCustomer validates the payload and stores a new customer.
func (s *Service) CreateCustomer(ctx context.Context, in CustomerInput) (Customer, error) {
	store, err := s.store()
	if err != nil {
		return Customer{}, err
	}
	c, err := s.customerFromInput(ctx, "", in)
	if err != nil {
		return Customer{}, err
	}
	created, err := store.CreateCustomer(ctx, c)
	if err != nil {
		return Customer{}, err
	}
	s.notify(ctx, EntityCustomer, ActionCreated, created.ID)
	return created, nil
}

// UpdateCustomer replaces an existing customer.
func (s *Service) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (Customer, error) {
	store, err := s.store()
	if err != nil {
		return Customer{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Customer{}, fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	c, err := s.customerFromInput(ctx, id, in)
	if err != nil {
		return Customer{}, err
	}
	updated, err := store.UpdateCustomer(ctx, c)
	if err != nil {
		return Customer{}, err
	}
	s.notify(ctx, EntityCustomer, ActionUpdated, id)
	return updated, nil
}

// DeleteCustomer removes a customer.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	store, err := s.store()
	if err != nil {
		return err
	}
	if err := store.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, EntityCustomer, ActionDeleted, id)
	return nil
}

// CancelOrder moves an order to cancelled. Delivered and already cancelled orders are rejected.
func (s *Service) CancelOrder(ctx context.Context, id string) (Order, error) {
	store, err := s.store()
	if err != nil {
		return Order{}, err
	}
	o, err := store.GetOrder(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if o.Status == OrderDelivered || o.Status == OrderCancelled {
		return Order{}, fmt.Errorf("order %s is %s: %w", id, o.Status, ErrInvalidTransition)
	}
	o.Status = OrderCancelled
	updated, err := store.UpdateOrder(ctx, o)
	if err != nil {
		return Order{}, err
	}
	s.notify(ctx, EntityOrder, ActionCancelled, id)
	return updated, nil
}

// ResolvePage fetches data for every widget laid out on the page. A failing
// provider leaves its widget without data rather than failing the page.
func (s *Service) ResolvePage(ctx context.Context, state PageState) (PageLayout, error) {
	if err := ctx.Err(); err != nil {
		return PageLayout{}, err
	}
	layout := PageLayout{Page: state.Page}
	for _, code := range s.opts.Providers.Layout(state.Page) {
		def, ok := s.opts.Providers.Definition(code)
		if !ok {
			continue
		}
		widget := ResolvedWidget{Definition: def, ElementID: def.DOMID()}
		if provider, ok := s.opts.Providers.Provider(code); ok && provider != nil {
			data, err := provider.Fetch(ctx, WidgetContext{Definition: def, State: state})
			if err != nil {
				s.recordTelemetry(ctx, EventWidgetFailed, map[string]any{
					"widget": code,
					"error":  err.Error(),
				})
			} else {
				widget.Data = data
			}
		}
		layout.Widgets = append(layout.Widgets, widget)
	}
	s.recordTelemetry(ctx, EventPageResolved, map[string]any{
		"page":    string(state.Page),
		"lang":    string(state.Language),
		"widgets": len(layout.Widgets),
	})
	return layout, nil
}

func (s *Service) productFromInput(ctx context.Context, id string, in ProductInput) (Product, error) {
	if err := s.opts.Validator.ValidateProduct(in); err != nil {
		s.recordTelemetry(ctx, EventCatalogRejected, map[string]any{"entity": EntityProduct, "error": err.Error()})
		return Product{}, err
	}
	return in.ToProduct(id)
}

func (s *Service) customerFromInput(ctx context.Context, id string, in CustomerInput) (Customer, error) {
	if err := s.opts.Validator.ValidateCustomer(in); err != nil {
		s.recordTelemetry(ctx, EventCatalogRejected, map[string]any{"entity": EntityCustomer, "error": err.Error()})
		return Customer{}, err
	}
	return in.ToCustomer(id, s.opts.Now().UTC())
}

func (s *Service) notify(ctx context.Context, entity, action, id string) {
	event := CatalogEvent{Entity: entity, Action: action, ID: id}
	s.recordTelemetry(ctx, EventCatalogChanged, map[string]any{
		"entity": entity,
		"action": action,
		"id":     id,
	})
	if err := s.opts.Hook.CatalogUpdated(ctx, event); err != nil {
		s.recordTelemetry(ctx, EventHookDeliveryFail, map[string]any{
			"entity": entity,
			"error":  err.Error(),
		})
	}
}

func (s *Service) recordList(ctx context.Context, entity string, total int) {
	s.recordTelemetry(ctx, EventListRendered, map[string]any{
		"entity": entity,
		"total":  total,
	})
}

func (s *Service) store() (CatalogStore, error) {
	if s.opts.Store == nil {
		return nil, ErrStoreRequired
	}
	return s.opts.Store, nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
