package commands

import (
	"context"
	"errors"
	"io"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-storefront-admin/components/dashboard"
)

// LoadSeedInput names the manifest file to read. Result receives the decoded catalog.
type LoadSeedInput struct {
	Path   string
	Result *dashboard.Catalog
}

// LoadSeedCommand reads and validates a seed manifest.
type LoadSeedCommand struct {
	telemetry Telemetry
}

// NewLoadSeedCommand wires dependencies.
func NewLoadSeedCommand(telemetry Telemetry) *LoadSeedCommand {
	return &LoadSeedCommand{telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[LoadSeedInput] = (*LoadSeedCommand)(nil)

// Execute decodes the manifest. An empty path yields the built-in catalog.
func (c *LoadSeedCommand) Execute(ctx context.Context, msg LoadSeedInput) error {
	if msg.Result == nil {
		return errors.New("load seed command requires result")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	source := "builtin"
	catalog := dashboard.DefaultCatalog()
	if msg.Path != "" {
		doc, err := dashboard.ReadSeedManifest(msg.Path)
		if err != nil {
			return err
		}
		catalog = doc.Catalog()
		source = doc.Source
	}
	*msg.Result = catalog
	c.telemetry.Record(ctx, "dashboard.seed.load", map[string]any{
		"source":    source,
		"products":  len(catalog.Products),
		"customers": len(catalog.Customers),
		"orders":    len(catalog.Orders),
	})
	return nil
}

type catalogSource interface {
	Snapshot() dashboard.Catalog
}

// DumpSeedInput controls where the manifest is written.
type DumpSeedInput struct {
	Name string
	Out  io.Writer
}

// DumpSeedCommand writes the current catalog as a seed manifest.
type DumpSeedCommand struct {
	source    catalogSource
	telemetry Telemetry
}

// NewDumpSeedCommand wires dependencies.
func NewDumpSeedCommand(source catalogSource, telemetry Telemetry) *DumpSeedCommand {
	return &DumpSeedCommand{source: source, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DumpSeedInput] = (*DumpSeedCommand)(nil)

// Execute encodes the snapshot as YAML.
func (c *DumpSeedCommand) Execute(ctx context.Context, msg DumpSeedInput) error {
	if c.source == nil {
		return errors.New("dump seed command requires catalog source")
	}
	if msg.Out == nil {
		return errors.New("dump seed command requires writer")
	}
	doc := dashboard.NewSeedManifest(msg.Name, c.source.Snapshot())
	if err := dashboard.EncodeSeedManifest(msg.Out, doc); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.seed.dump", map[string]any{"name": msg.Name})
	return nil
}
