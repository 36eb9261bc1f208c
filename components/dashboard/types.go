package dashboard

import (
	"context"
	"strings"

	"github.com/ettle/strcase"
)

// ProviderRegistry stores widget definitions and providers discoverable via hooks.
type ProviderRegistry interface {
	RegisterDefinition(def WidgetDefinition) error
	RegisterProvider(code string, provider Provider) error
	Definition(code string) (WidgetDefinition, bool)
	Provider(code string) (Provider, bool)
	Definitions() []WidgetDefinition
	Layout(page Page) []string
}

// CatalogHook is notified after the catalog changes.
type CatalogHook interface {
	CatalogUpdated(ctx context.Context, event CatalogEvent) error
}

// CatalogEvent describes a create, update, or delete applied to the catalog.
type CatalogEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// WidgetKind selects the template used to draw a widget.
type WidgetKind string

const (
	WidgetKPI     WidgetKind = "kpi"
	WidgetChart   WidgetKind = "chart"
	WidgetRanking WidgetKind = "ranking"
)

// WidgetDefinition describes a card on the overview or analytics page.
type WidgetDefinition struct {
	Code           string     `json:"code"`
	Kind           WidgetKind `json:"kind"`
	TitleKey       string     `json:"title_key"`
	DescriptionKey string     `json:"description_key,omitempty"`
	// Span is the number of grid columns the widget occupies.
	Span int `json:"span"`
}

// DOMID returns a stable element id derived from the widget code.
func (def WidgetDefinition) DOMID() string {
	return "widget-" + strcase.ToKebab(strings.ReplaceAll(def.Code, ".", "_"))
}

// ResolvedWidget pairs a definition with the data its provider produced.
type ResolvedWidget struct {
	Definition WidgetDefinition `json:"definition"`
	// ElementID is Definition.DOMID(), precomputed for templates.
	ElementID string     `json:"element_id"`
	Data      WidgetData `json:"data"`
}

// PageLayout is the ordered list of widgets resolved for a page.
type PageLayout struct {
	Page    Page             `json:"page"`
	Widgets []ResolvedWidget `json:"widgets"`
}

// ByKind filters resolved widgets to a single kind, preserving order.
func (l PageLayout) ByKind(kind WidgetKind) []ResolvedWidget {
	return Apply(l.Widgets, func(w ResolvedWidget) bool { return w.Definition.Kind == kind })
}
