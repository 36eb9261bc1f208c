package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const inputDateLayout = "2006-01-02"

// ProductInput is the create/update payload for products.
type ProductInput struct {
	Name                 string            `json:"name"`
	NameLocalized        map[string]string `json:"name_localized,omitempty"`
	Price                float64           `json:"price"`
	Category             string            `json:"category"`
	Status               string            `json:"status,omitempty"`
	Stock                int               `json:"stock"`
	SKU                  string            `json:"sku"`
	Description          string            `json:"description,omitempty"`
	DescriptionLocalized map[string]string `json:"description_localized,omitempty"`
	Image                string            `json:"image,omitempty"`
}

// CustomerInput is the create/update payload for customers. Dates use YYYY-MM-DD.
type CustomerInput struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Status           string            `json:"status"`
	Orders           int               `json:"orders"`
	TotalSpent       float64           `json:"total_spent"`
	LastOrder        string            `json:"last_order,omitempty"`
	JoinDate         string            `json:"join_date,omitempty"`
	Country          string            `json:"country,omitempty"`
	CountryLocalized map[string]string `json:"country_localized,omitempty"`
	Phone            string            `json:"phone,omitempty"`
}

// InputValidator checks create/update payloads against JSON schemas.
type InputValidator interface {
	ValidateProduct(in ProductInput) error
	ValidateCustomer(in CustomerInput) error
}

// JSONSchemaValidator compiles the payload schemas once and validates inputs.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

func localizedSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	}
}

// ProductSchema describes a valid ProductInput.
func ProductSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"name", "price", "category", "stock", "sku"},
		"properties": map[string]any{
			"name":                  map[string]any{"type": "string", "minLength": 1},
			"name_localized":        localizedSchema(),
			"price":                 map[string]any{"type": "number", "minimum": 0},
			"category":              map[string]any{"type": "string", "enum": anySlice(enumStrings(Categories()))},
			"status":                map[string]any{"type": "string", "enum": anySlice(enumStrings(StockStatuses()))},
			"stock":                 map[string]any{"type": "integer", "minimum": 0},
			"sku":                   map[string]any{"type": "string", "pattern": "^[A-Z]{2}-[0-9]{4}$"},
			"description":           map[string]any{"type": "string"},
			"description_localized": localizedSchema(),
			"image":                 map[string]any{"type": "string"},
		},
	}
}

// CustomerSchema describes a valid CustomerInput.
func CustomerSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"name", "email", "status"},
		"properties": map[string]any{
			"name":              map[string]any{"type": "string", "minLength": 1},
			"email":             map[string]any{"type": "string", "format": "email"},
			"status":            map[string]any{"type": "string", "enum": anySlice(enumStrings(CustomerStatuses()))},
			"orders":            map[string]any{"type": "integer", "minimum": 0},
			"total_spent":       map[string]any{"type": "number", "minimum": 0},
			"last_order":        map[string]any{"type": "string", "format": "date"},
			"join_date":         map[string]any{"type": "string", "format": "date"},
			"country":           map[string]any{"type": "string"},
			"country_localized": localizedSchema(),
			"phone":             map[string]any{"type": "string"},
		},
	}
}

// ValidateProduct validates a product payload.
func (v *JSONSchemaValidator) ValidateProduct(in ProductInput) error {
	return v.validate("product", ProductSchema(), in)
}

// ValidateCustomer validates a customer payload.
func (v *JSONSchemaValidator) ValidateCustomer(in CustomerInput) error {
	return v.validate("customer", CustomerSchema(), in)
}

func (v *JSONSchemaValidator) validate(name string, schemaDoc map[string]any, input any) error {
	schema, err := v.schemaFor(name, schemaDoc)
	if err != nil {
		return err
	}
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("dashboard: marshal %s payload: %w", name, err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("dashboard: normalize %s payload: %w", name, err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrValidation, name, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(name string, doc map[string]any) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[name]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("dashboard: marshal schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("dashboard: load schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("dashboard: compile schema %s: %w", name, err)
	}
	v.mu.Lock()
	v.compiled[name] = compiled
	v.mu.Unlock()
	return compiled, nil
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// ToProduct converts a validated payload into a product. A missing status is
// derived from stock; an explicit status must agree with an empty stock.
func (in ProductInput) ToProduct(id string) (Product, error) {
	category, err := ParseCategory(in.Category)
	if err != nil {
		return Product{}, err
	}
	status := DeriveStockStatus(in.Stock)
	if strings.TrimSpace(in.Status) != "" {
		if status, err = ParseStockStatus(in.Status); err != nil {
			return Product{}, err
		}
	}
	p := Product{
		ID:                   id,
		Name:                 strings.TrimSpace(in.Name),
		NameLocalized:        cloneStringMap(in.NameLocalized),
		Price:                in.Price,
		Category:             category,
		Status:               status,
		Stock:                in.Stock,
		SKU:                  strings.TrimSpace(in.SKU),
		Description:          in.Description,
		DescriptionLocalized: cloneStringMap(in.DescriptionLocalized),
		Image:                in.Image,
	}
	if p.Image == "" {
		p.Image = placeholderImage
	}
	if err := CheckStockConsistency(p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ToCustomer converts a validated payload into a customer.
func (in CustomerInput) ToCustomer(id string, now time.Time) (Customer, error) {
	status, err := ParseCustomerStatus(in.Status)
	if err != nil {
		return Customer{}, err
	}
	joined, err := parseInputDate(in.JoinDate, now)
	if err != nil {
		return Customer{}, err
	}
	last, err := parseInputDate(in.LastOrder, time.Time{})
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		ID:               id,
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(in.Email),
		Status:           status,
		Orders:           in.Orders,
		TotalSpent:       in.TotalSpent,
		LastOrder:        last,
		JoinDate:         joined,
		Country:          in.Country,
		CountryLocalized: cloneStringMap(in.CountryLocalized),
		Phone:            in.Phone,
	}, nil
}

func parseInputDate(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(inputDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrValidation, raw)
	}
	return t, nil
}
