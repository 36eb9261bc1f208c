package dashboard

import (
	"strings"
	"time"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// Product is a sellable catalog item.
type Product struct {
	ID                   string            `json:"id" yaml:"id"`
	Name                 string            `json:"name" yaml:"name"`
	NameLocalized        map[string]string `json:"name_localized,omitempty" yaml:"name_localized,omitempty"`
	Price                float64           `json:"price" yaml:"price"`
	Category             Category          `json:"category" yaml:"category"`
	Status               StockStatus       `json:"status" yaml:"status"`
	Stock                int               `json:"stock" yaml:"stock"`
	SKU                  string            `json:"sku" yaml:"sku"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionLocalized map[string]string `json:"description_localized,omitempty" yaml:"description_localized,omitempty"`
	Image                string            `json:"image,omitempty" yaml:"image,omitempty"`
}

// NameFor returns the product name for the language.
func (p Product) NameFor(lang i18n.Language) string {
	return ResolveLocalizedValue(p.NameLocalized, string(lang), p.Name)
}

// DescriptionFor returns the product description for the language.
func (p Product) DescriptionFor(lang i18n.Language) string {
	return ResolveLocalizedValue(p.DescriptionLocalized, string(lang), p.Description)
}

// Customer is a storefront buyer with aggregate purchase figures.
type Customer struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	Email            string            `json:"email" yaml:"email"`
	Status           CustomerStatus    `json:"status" yaml:"status"`
	Orders           int               `json:"orders" yaml:"orders"`
	TotalSpent       float64           `json:"total_spent" yaml:"total_spent"`
	LastOrder        time.Time         `json:"last_order" yaml:"last_order"`
	JoinDate         time.Time         `json:"join_date" yaml:"join_date"`
	Country          string            `json:"country" yaml:"country"`
	CountryLocalized map[string]string `json:"country_localized,omitempty" yaml:"country_localized,omitempty"`
	Phone            string            `json:"phone" yaml:"phone"`
}

// CountryFor returns the customer country for the language.
func (c Customer) CountryFor(lang i18n.Language) string {
	return ResolveLocalizedValue(c.CountryLocalized, string(lang), c.Country)
}

// Initials returns the uppercased first letter of each name part.
func (c Customer) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(c.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// Order is a purchase placed by a customer. Customer holds the display name,
// not a reference to a Customer record.
type Order struct {
	ID            string        `json:"id" yaml:"id"`
	OrderNumber   string        `json:"order_number" yaml:"order_number"`
	Customer      string        `json:"customer" yaml:"customer"`
	Date          time.Time     `json:"date" yaml:"date"`
	Total         float64       `json:"total" yaml:"total"`
	Status        OrderStatus   `json:"status" yaml:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" yaml:"payment_status"`
	Items         int           `json:"items" yaml:"items"`
}

// Catalog bundles the three record lists.
type Catalog struct {
	Products  []Product  `json:"products" yaml:"products"`
	Customers []Customer `json:"customers" yaml:"customers"`
	Orders    []Order    `json:"orders" yaml:"orders"`
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Products:  make([]Product, len(c.Products)),
		Customers: make([]Customer, len(c.Customers)),
		Orders:    append([]Order(nil), c.Orders...),
	}
	for i, p := range c.Products {
		out.Products[i] = p.clone()
	}
	for i, cu := range c.Customers {
		out.Customers[i] = cu.clone()
	}
	return out
}

func (p Product) clone() Product {
	p.NameLocalized = cloneStringMap(p.NameLocalized)
	p.DescriptionLocalized = cloneStringMap(p.DescriptionLocalized)
	return p
}

func (c Customer) clone() Customer {
	c.CountryLocalized = cloneStringMap(c.CountryLocalized)
	return c
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// DeriveStockStatus maps a stock count to the status operators expect.
func DeriveStockStatus(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockOutOfStock
	case stock <= LowStockThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}

// LowStockThreshold is the highest stock count still flagged as low.
const LowStockThreshold = 10

// CheckStockConsistency enforces that products without stock are out-of-stock.
func CheckStockConsistency(p Product) error {
	if p.Stock == 0 && p.Status != StockOutOfStock {
		return ErrStockStatusMismatch
	}
	return nil
}
