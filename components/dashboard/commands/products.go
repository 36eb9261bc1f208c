package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

type productService interface {
	CreateProduct(ctx context.Context, in dashboard.ProductInput) (dashboard.Product, error)
	UpdateProduct(ctx context.Context, id string, in dashboard.ProductInput) (dashboard.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CreateProductInput carries a new product. Result, when set, receives the stored record.
type CreateProductInput struct {
	Product dashboard.ProductInput
	Result  *dashboard.Product
}

// CreateProductCommand validates and stores a product.
type CreateProductCommand struct {
	service   productService
	telemetry Telemetry
}

// NewCreateProductCommand creates a command instance.
func NewCreateProductCommand(service productService, telemetry Telemetry) *CreateProductCommand {
	return &CreateProductCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CreateProductInput] = (*CreateProductCommand)(nil)

// Execute delegates to the dashboard service.
func (c *CreateProductCommand) Execute(ctx context.Context, msg CreateProductInput) error {
	if c.service == nil {
		return errors.New("create product command requires service")
	}
	created, err := c.service.CreateProduct(ctx, msg.Product)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = created
	}
	c.telemetry.Record(ctx, "dashboard.product.create", map[string]any{
		"id":  created.ID,
		"sku": created.SKU,
	})
	return nil
}

// UpdateProductInput replaces the product identified by ID.
type UpdateProductInput struct {
	ID      string
	Product dashboard.ProductInput
	Result  *dashboard.Product
}

// UpdateProductCommand replaces an existing product.
type UpdateProductCommand struct {
	service   productService
	telemetry Telemetry
}

// NewUpdateProductCommand creates the command.
func NewUpdateProductCommand(service productService, telemetry Telemetry) *UpdateProductCommand {
	return &UpdateProductCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateProductInput] = (*UpdateProductCommand)(nil)

// Execute delegates to the dashboard service.
func (c *UpdateProductCommand) Execute(ctx context.Context, msg UpdateProductInput) error {
	if c.service == nil {
		return errors.New("update product command requires service")
	}
	updated, err := c.service.UpdateProduct(ctx, msg.ID, msg.Product)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = updated
	}
	c.telemetry.Record(ctx, "dashboard.product.update", map[string]any{"id": msg.ID})
	return nil
}

// DeleteProductInput identifies the product to remove.
type DeleteProductInput struct {
	ID string
}

// DeleteProductCommand removes a product.
type DeleteProductCommand struct {
	service   productService
	telemetry Telemetry
}

// NewDeleteProductCommand creates the command.
func NewDeleteProductCommand(service productService, telemetry Telemetry) *DeleteProductCommand {
	return &DeleteProductCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteProductInput] = (*DeleteProductCommand)(nil)

// Execute delegates to the dashboard service.
func (c *DeleteProductCommand) Execute(ctx context.Context, msg DeleteProductInput) error {
	if c.service == nil {
		return errors.New("delete product command requires service")
	}
	if msg.ID == "" {
		return errors.New("delete product command requires id")
	}
	if err := c.service.DeleteProduct(ctx, msg.ID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.product.delete", map[string]any{"id": msg.ID})
	return nil
}
