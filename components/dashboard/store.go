package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// CatalogStore persists catalog records. Implementations must return copies so
// callers never share mutable state with the store.
type CatalogStore interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	CreateProduct(ctx context.Context, p Product) (Product, error)
	UpdateProduct(ctx context.Context, p Product) (Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id string) (Customer, error)
	CreateCustomer(ctx context.Context, c Customer) (Customer, error)
	UpdateCustomer(ctx context.Context, c Customer) (Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id string) (Order, error)
	UpdateOrder(ctx context.Context, o Order) (Order, error)
}

// InMemoryCatalogStore keeps the catalog in process memory, preserving insertion order.
type InMemoryCatalogStore struct {
	mu      sync.RWMutex
	catalog Catalog
	newID   func() string
}

// NewInMemoryCatalogStore seeds a store with a copy of the provided catalog.
func NewInMemoryCatalogStore(seed Catalog) *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		catalog: seed.Clone(),
		newID:   uuid.NewString,
	}
}

// Snapshot returns a deep copy of the whole catalog.
func (s *InMemoryCatalogStore) Snapshot() Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

func (s *InMemoryCatalogStore) ListProducts(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.catalog.Products))
	for i, p := range s.catalog.Products {
		out[i] = p.clone()
	}
	return out, nil
}

func (s *InMemoryCatalogStore) GetProduct(ctx context.Context, id string) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return s.catalog.Products[idx].clone(), nil
}

func (s *InMemoryCatalogStore) CreateProduct(ctx context.Context, p Product) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = s.newID()
	}
	if s.productIndex(p.ID) >= 0 {
		return Product{}, fmt.Errorf("product %s: %w", p.ID, ErrDuplicate)
	}
	if s.skuTaken(p.SKU, "") {
		return Product{}, fmt.Errorf("sku %s: %w", p.SKU, ErrDuplicate)
	}
	p = p.clone()
	s.catalog.Products = append(s.catalog.Products, p)
	return p.clone(), nil
}

func (s *InMemoryCatalogStore) UpdateProduct(ctx context.Context, p Product) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(p.ID)
	if idx < 0 {
		return Product{}, fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
	}
	if s.skuTaken(p.SKU, p.ID) {
		return Product{}, fmt.Errorf("sku %s: %w", p.SKU, ErrDuplicate)
	}
	s.catalog.Products[idx] = p.clone()
	return p.clone(), nil
}

func (s *InMemoryCatalogStore) DeleteProduct(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	s.catalog.Products = append(s.catalog.Products[:idx], s.catalog.Products[idx+1:]...)
	return nil
}

func (s *InMemoryCatalogStore) ListCustomers(ctx context.Context) ([]Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, len(s.catalog.Customers))
	for i, c := range s.catalog.Customers {
		out[i] = c.clone()
	}
	return out, nil
}

func (s *InMemoryCatalogStore) GetCustomer(ctx context.Context, id string) (Customer, error) {
	if err := ctx.Err(); err != nil {
		return Customer{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.customerIndex(id)
	if idx < 0 {
		return Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return s.catalog.Customers[idx].clone(), nil
}

func (s *InMemoryCatalogStore) CreateCustomer(ctx context.Context, c Customer) (Customer, error) {
	if err := ctx.Err(); err != nil {
		return Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = s.newID()
	}
	if s.customerIndex(c.ID) >= 0 {
		return Customer{}, fmt.Errorf("customer %s: %w", c.ID, ErrDuplicate)
	}
	if s.emailTaken(c.Email, "") {
		return Customer{}, fmt.Errorf("email %s: %w", c.Email, ErrDuplicate)
	}
	c = c.clone()
	s.catalog.Customers = append(s.catalog.Customers, c)
	return c.clone(), nil
}

func (s *InMemoryCatalogStore) UpdateCustomer(ctx context.Context, c Customer) (Customer, error) {
	if err := ctx.Err(); err != nil {
		return Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.customerIndex(c.ID)
	if idx < 0 {
		return Customer{}, fmt.Errorf("customer %s: %w", c.ID, ErrNotFound)
	}
	if s.emailTaken(c.Email, c.ID) {
		return Customer{}, fmt.Errorf("email %s: %w", c.Email, ErrDuplicate)
	}
	s.catalog.Customers[idx] = c.clone()
	return c.clone(), nil
}

func (s *InMemoryCatalogStore) DeleteCustomer(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.customerIndex(id)
	if idx < 0 {
		return fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	s.catalog.Customers = append(s.catalog.Customers[:idx], s.catalog.Customers[idx+1:]...)
	return nil
}

func (s *InMemoryCatalogStore) ListOrders(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Order(nil), s.catalog.Orders...), nil
}

func (s *InMemoryCatalogStore) GetOrder(ctx context.Context, id string) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.catalog.Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

func (s *InMemoryCatalogStore) UpdateOrder(ctx context.Context, o Order) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalog.Orders {
		if s.catalog.Orders[i].ID == o.ID {
			s.catalog.Orders[i] = o
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("order %s: %w", o.ID, ErrNotFound)
}

func (s *InMemoryCatalogStore) productIndex(id string) int {
	for i, p := range s.catalog.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *InMemoryCatalogStore) customerIndex(id string) int {
	for i, c := range s.catalog.Customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *InMemoryCatalogStore) skuTaken(sku, exceptID string) bool {
	if sku == "" {
		return false
	}
	for _, p := range s.catalog.Products {
		if p.ID != exceptID && strings.EqualFold(p.SKU, sku) {
			return true
		}
	}
	return false
}

func (s *InMemoryCatalogStore) emailTaken(email, exceptID string) bool {
	if email == "" {
		return false
	}
	for _, c := range s.catalog.Customers {
		if c.ID != exceptID && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}
