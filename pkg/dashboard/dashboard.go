package dashboard

import (
	core "github.com/goliatone/go-storefront-admin/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Runtime is the wired set of collaborators returned by Bootstrap.
type Runtime = core.Runtime

// BootstrapOptions re-export for convenience.
type BootstrapOptions = core.BootstrapOptions

// Catalog is the product, customer, and order data set.
type Catalog = core.Catalog

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// Bootstrap proxies to the internal wiring helper.
func Bootstrap(opts BootstrapOptions) (*Runtime, error) {
	return core.Bootstrap(opts)
}

// DefaultCatalog returns the built-in demo catalog.
func DefaultCatalog() Catalog {
	return core.DefaultCatalog()
}
