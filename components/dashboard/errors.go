package dashboard

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a catalog record does not exist.
	ErrNotFound = errors.New("dashboard: record not found")
	// ErrInvalidFilter is returned when a filter selection is outside its status domain.
	ErrInvalidFilter = errors.New("dashboard: invalid filter selection")
	// ErrUnknownEnumValue is returned when a raw value does not belong to a closed enum.
	ErrUnknownEnumValue = errors.New("dashboard: unknown enum value")
	// ErrStockStatusMismatch is returned when a product with no stock is not out-of-stock.
	ErrStockStatusMismatch = errors.New("dashboard: products without stock must be out-of-stock")
	// ErrValidation wraps schema validation failures for create/update payloads.
	ErrValidation = errors.New("dashboard: validation failed")
	// ErrUnsupportedFormat is returned for unknown export formats.
	ErrUnsupportedFormat = errors.New("dashboard: unsupported export format")
	// ErrStoreRequired is returned when a service is used without a catalog store.
	ErrStoreRequired = errors.New("dashboard: catalog store is required")
	// ErrInvalidTransition is returned when an order cannot move to the requested status.
	ErrInvalidTransition = errors.New("dashboard: invalid order status transition")
	// ErrDuplicate is returned when a record id or unique field is already in use.
	ErrDuplicate = errors.New("dashboard: duplicate record")
)

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidFilter),
		errors.Is(err, ErrUnknownEnumValue),
		errors.Is(err, ErrStockStatusMismatch),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
