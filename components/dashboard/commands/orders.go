package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

type orderService interface {
	CancelOrder(ctx context.Context, id string) (dashboard.Order, error)
}

// CancelOrderInput identifies the order to cancel.
type CancelOrderInput struct {
	ID     string
	Result *dashboard.Order
}

// CancelOrderCommand moves an order to cancelled.
type CancelOrderCommand struct {
	service   orderService
	telemetry Telemetry
}

// NewCancelOrderCommand creates the command.
func NewCancelOrderCommand(service orderService, telemetry Telemetry) *CancelOrderCommand {
	return &CancelOrderCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CancelOrderInput] = (*CancelOrderCommand)(nil)

// Execute delegates to the dashboard service.
func (c *CancelOrderCommand) Execute(ctx context.Context, msg CancelOrderInput) error {
	if c.service == nil {
		return errors.New("cancel order command requires service")
	}
	if msg.ID == "" {
		return errors.New("cancel order command requires id")
	}
	order, err := c.service.CancelOrder(ctx, msg.ID)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = order
	}
	c.telemetry.Record(ctx, "dashboard.order.cancel", map[string]any{
		"id":     order.ID,
		"number": order.OrderNumber,
	})
	return nil
}
