package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapWiresRuntime(t *testing.T) {
	hook := &collectingHook{}
	rt, err := Bootstrap(BootstrapOptions{Renderer: &stubRenderer{}, Hook: hook})
	require.NoError(t, err)
	defer rt.Close()

	assert.Len(t, rt.Registry.Layout(PageOverview), 6)
	assert.Len(t, rt.Registry.Layout(PageAnalytics), 10)
	assert.Len(t, rt.Store.Snapshot().Products, len(DefaultProducts()))
	assert.Equal(t, "Products", rt.Service.Translator().Translate("en", "nav.products"))

	events, cancel := rt.Broadcast.Subscribe()
	defer cancel()
	require.NoError(t, rt.Service.DeleteProduct(context.Background(), "1"))

	select {
	case event := <-events:
		assert.Equal(t, EntityProduct, event.Entity)
		assert.Equal(t, ActionDeleted, event.Action)
	case <-time.After(time.Second):
		t.Fatalf("expected broadcast event")
	}
	require.Len(t, hook.events, 1)
	assert.Equal(t, "1", hook.events[0].ID)
}

func TestBootstrapUsesProvidedCatalog(t *testing.T) {
	catalog := Catalog{Products: DefaultProducts()[:2]}
	rt, err := Bootstrap(BootstrapOptions{Catalog: &catalog, Renderer: &stubRenderer{}})
	require.NoError(t, err)
	defer rt.Close()

	if got := len(rt.Store.Snapshot().Products); got != 2 {
		t.Fatalf("expected 2 products, got %d", got)
	}
	if len(rt.Store.Snapshot().Orders) != 0 {
		t.Fatalf("expected no orders")
	}
}

func TestCatalogHooksJoinsErrors(t *testing.T) {
	first := &collectingHook{err: errors.New("offline")}
	second := &collectingHook{}
	hooks := CatalogHooks{first, nil, second}

	err := hooks.CatalogUpdated(context.Background(), CatalogEvent{Entity: EntityOrder, Action: ActionCancelled, ID: "4"})
	if err == nil || err.Error() != "offline" {
		t.Fatalf("expected joined error, got %v", err)
	}
	if len(second.events) != 1 {
		t.Fatalf("expected later hooks to still run")
	}
}
