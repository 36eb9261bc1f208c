package dashboard

import "context"

// Telemetry records dashboard events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// Event names recorded by the service.
const (
	EventListRendered     = "dashboard.list.rendered"
	EventPageResolved     = "dashboard.page.resolved"
	EventWidgetFailed     = "dashboard.widget.failed"
	EventCatalogChanged   = "dashboard.catalog.changed"
	EventCatalogRejected  = "dashboard.catalog.rejected"
	EventExportGenerated  = "dashboard.export.generated"
	EventHookDeliveryFail = "dashboard.hook.failed"
)

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}
