package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

type customerService interface {
	CreateCustomer(ctx context.Context, in dashboard.CustomerInput) (dashboard.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in dashboard.CustomerInput) (dashboard.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CreateCustomerInput carries a new customer. Result, when set, receives the stored record.
type CreateCustomerInput struct {
	Customer dashboard.CustomerInput
	Result   *dashboard.Customer
}

// CreateCustomerCommand validates and stores a customer.
type CreateCustomerCommand struct {
	service   customerService
	telemetry Telemetry
}

// NewCreateCustomerCommand creates a command instance.
func NewCreateCustomerCommand(service customerService, telemetry Telemetry) *CreateCustomerCommand {
	return &CreateCustomerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CreateCustomerInput] = (*CreateCustomerCommand)(nil)

// Execute delegates to the dashboard service.
func (c *CreateCustomerCommand) Execute(ctx context.Context, msg CreateCustomerInput) error {
	if c.service == nil {
		return errors.New("create customer command requires service")
	}
	created, err := c.service.CreateCustomer(ctx, msg.Customer)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = created
	}
	c.telemetry.Record(ctx, "dashboard.customer.create", map[string]any{
		"id":    created.ID,
		"email": created.Email,
	})
	return nil
}

// UpdateCustomerInput replaces the customer identified by ID.
type UpdateCustomerInput struct {
	ID       string
	Customer dashboard.CustomerInput
	Result   *dashboard.Customer
}

// UpdateCustomerCommand replaces an existing customer.
type UpdateCustomerCommand struct {
	service   customerService
	telemetry Telemetry
}

// NewUpdateCustomerCommand creates the command.
func NewUpdateCustomerCommand(service customerService, telemetry Telemetry) *UpdateCustomerCommand {
	return &UpdateCustomerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateCustomerInput] = (*UpdateCustomerCommand)(nil)

// Execute delegates to the dashboard service.
func (c *UpdateCustomerCommand) Execute(ctx context.Context, msg UpdateCustomerInput) error {
	if c.service == nil {
		return errors.New("update customer command requires service")
	}
	updated, err := c.service.UpdateCustomer(ctx, msg.ID, msg.Customer)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = updated
	}
	c.telemetry.Record(ctx, "dashboard.customer.update", map[string]any{"id": msg.ID})
	return nil
}

// DeleteCustomerInput identifies the customer to remove.
type DeleteCustomerInput struct {
	ID string
}

// DeleteCustomerCommand removes a customer.
type DeleteCustomerCommand struct {
	service   customerService
	telemetry Telemetry
}

// NewDeleteCustomerCommand creates the command.
func NewDeleteCustomerCommand(service customerService, telemetry Telemetry) *DeleteCustomerCommand {
	return &DeleteCustomerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteCustomerInput] = (*DeleteCustomerCommand)(nil)

// Execute delegates to the dashboard service.
func (c *DeleteCustomerCommand) Execute(ctx context.Context, msg DeleteCustomerInput) error {
	if c.service == nil {
		return errors.New("delete customer command requires service")
	}
	if msg.ID == "" {
		return errors.New("delete customer command requires id")
	}
	if err := c.service.DeleteCustomer(ctx, msg.ID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.customer.delete", map[string]any{"id": msg.ID})
	return nil
}
