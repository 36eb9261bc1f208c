package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// DefaultChartCacheTTL bounds how long rendered chart HTML is reused.
const DefaultChartCacheTTL = 5 * time.Minute

// BootstrapOptions configures Bootstrap. Zero values fall back to the built-in
// catalog, the embedded dictionaries, and the embedded templates.
type BootstrapOptions struct {
	Catalog       *Catalog
	Dictionary    *i18n.Dictionary
	Renderer      Renderer
	ChartCacheTTL time.Duration
	AssetsHost    string
	Hook          CatalogHook
	Telemetry     Telemetry
	PageSize      int
	BasePath      string
	Defaults      StateDefaults
}

// Runtime bundles the wired collaborators an application serves from.
type Runtime struct {
	Store      *InMemoryCatalogStore
	Dictionary *i18n.Dictionary
	Registry   *Registry
	Cache      *ChartCache
	Broadcast  *BroadcastHook
	Service    *Service
	Controller *Controller
}

// Bootstrap wires the store, dictionary, widgets, and controller.
func Bootstrap(opts BootstrapOptions) (*Runtime, error) {
	catalog := DefaultCatalog()
	if opts.Catalog != nil {
		catalog = opts.Catalog.Clone()
	}
	dict := opts.Dictionary
	if dict == nil {
		loaded, err := i18n.Load()
		if err != nil {
			return nil, fmt.Errorf("dashboard: load dictionary: %w", err)
		}
		dict = loaded
	}
	renderer := opts.Renderer
	if renderer == nil {
		r, err := NewTemplateRenderer()
		if err != nil {
			return nil, fmt.Errorf("dashboard: load templates: %w", err)
		}
		renderer = r
	}
	ttl := opts.ChartCacheTTL
	if ttl <= 0 {
		ttl = DefaultChartCacheTTL
	}

	rt := &Runtime{
		Store:      NewInMemoryCatalogStore(catalog),
		Dictionary: dict,
		Registry:   NewRegistry(),
		Cache:      NewChartCache(ttl),
		Broadcast:  NewBroadcastHook(),
	}
	if err := RegisterDefaultWidgets(rt.Registry, WidgetOptions{
		Translator: dict,
		Cache:      rt.Cache,
		AssetsHost: opts.AssetsHost,
	}); err != nil {
		return nil, err
	}

	hooks := CatalogHooks{rt.Broadcast}
	if opts.Hook != nil {
		hooks = append(hooks, opts.Hook)
	}
	rt.Service = NewService(Options{
		Store:      rt.Store,
		Translator: dict,
		Providers:  rt.Registry,
		Hook:       hooks,
		Telemetry:  opts.Telemetry,
		PageSize:   opts.PageSize,
	})
	rt.Controller = NewController(ControllerOptions{
		Service:  rt.Service,
		Renderer: renderer,
		BasePath: opts.BasePath,
		Defaults: opts.Defaults,
	})
	return rt, nil
}

// Close disconnects live subscribers and drops cached charts.
func (rt *Runtime) Close() {
	if rt == nil {
		return
	}
	if rt.Broadcast != nil {
		rt.Broadcast.Close()
	}
	rt.Cache.Invalidate("")
}

// CatalogHooks notifies every hook in order and joins their errors.
type CatalogHooks []CatalogHook

// CatalogUpdated satisfies CatalogHook.
func (hooks CatalogHooks) CatalogUpdated(ctx context.Context, event CatalogEvent) error {
	var errs error
	for _, h := range hooks {
		if h == nil {
			continue
		}
		if err := h.CatalogUpdated(ctx, event); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
