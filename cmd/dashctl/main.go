package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"go.uber.org/zap"

	"github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/commands"
	"github.com/goliatone/go-storefront-admin/components/dashboard/gorouter"
	"github.com/goliatone/go-storefront-admin/components/dashboard/httpapi"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
	"github.com/goliatone/go-storefront-admin/pkg/config"
	"github.com/goliatone/go-storefront-admin/pkg/logging"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	EnvFile []string `name:"env-file" type:"path" default:".env" help:"Dotenv files loaded before reading DASHBOARD_* variables."`
}

type cli struct {
	Globals

	Serve   serveCmd   `cmd:"" help:"Serve the storefront admin over HTTP."`
	Export  exportCmd  `cmd:"" help:"Write a filtered list as CSV or XLSX."`
	Seed    seedCmd    `cmd:"" help:"Inspect and dump seed manifests."`
	Locales localesCmd `cmd:"" help:"Check translation dictionaries."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app cli
	kctx := kong.Parse(&app,
		kong.Description("Storefront admin dashboard utility."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	kctx.FatalIfErrorf(kctx.Run())
}

// environment loads configuration, logger, and the wired runtime shared by subcommands.
type environment struct {
	cfg       config.Config
	logger    *logging.Logger
	telemetry *logging.Telemetry
	runtime   *dashboard.Runtime
}

func setup(ctx context.Context, g *Globals) (*environment, error) {
	cfg, err := config.Load(g.EnvFile...)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	telemetry := logging.NewTelemetry(logger)

	var catalog dashboard.Catalog
	load := commands.NewLoadSeedCommand(telemetry)
	if err := load.Execute(ctx, commands.LoadSeedInput{Path: cfg.SeedFile, Result: &catalog}); err != nil {
		return nil, err
	}
	rt, err := dashboard.Bootstrap(dashboard.BootstrapOptions{
		Catalog:       &catalog,
		ChartCacheTTL: cfg.ChartCacheTTL,
		AssetsHost:    cfg.EChartsAssetsHost,
		Telemetry:     telemetry,
		PageSize:      cfg.PageSize,
		BasePath:      cfg.BasePath,
		Defaults:      cfg.StateDefaults(),
	})
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, logger: logger, telemetry: telemetry, runtime: rt}, nil
}

func (e *environment) close() {
	e.runtime.Close()
	_ = e.logger.Sync()
}

type serveCmd struct {
	Addr string `help:"Listen address. Overrides DASHBOARD_ADDR."`
}

func (cmd *serveCmd) Run(ctx context.Context, g *Globals) error {
	env, err := setup(ctx, g)
	if err != nil {
		return err
	}
	defer env.close()

	addr := env.cfg.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: env.runtime.Controller,
		API:        httpapi.NewHandlers(env.runtime, env.telemetry),
		Broadcast:  env.runtime.Broadcast,
		BasePath:   env.cfg.BasePath,
	}); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	log := env.logger.Named("server")
	errs := make(chan error, 1)
	go func() {
		log.Info("storefront admin listening", zap.String("addr", addr), zap.String("base_path", env.cfg.BasePath))
		errs <- server.Serve(addr)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

type exportCmd struct {
	List     string `enum:"products,customers,orders" default:"products" help:"List to export."`
	Format   string `enum:"csv,xlsx" default:"csv" help:"Output format."`
	Out      string `short:"o" type:"path" help:"Destination file. Defaults to stdout."`
	Lang     string `help:"Language of headers and labels."`
	Category string `help:"Product category filter."`
	Status   string `help:"Status filter."`
	Payment  string `help:"Order payment filter."`
	Search   string `name:"q" help:"Search term."`
}

func (cmd *exportCmd) Run(ctx context.Context, g *Globals) error {
	env, err := setup(ctx, g)
	if err != nil {
		return err
	}
	defer env.close()

	query := url.Values{}
	for key, value := range map[string]string{
		i18n.LangParam: cmd.Lang,
		"category":     cmd.Category,
		"status":       cmd.Status,
		"payment":      cmd.Payment,
		"q":            cmd.Search,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}
	controller := env.runtime.Controller
	state, err := controller.State(dashboard.Page(cmd.List), dashboard.Request{Query: query})
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd.Out)
	if err != nil {
		return err
	}
	defer closeOut()
	_, err = controller.Export(ctx, state, cmd.Format, out)
	return err
}

type seedCmd struct {
	Dump  seedDumpCmd  `cmd:"" help:"Write the configured catalog as a seed manifest."`
	Check seedCheckCmd `cmd:"" help:"Validate a seed manifest."`
}

type seedDumpCmd struct {
	Name string `default:"storefront" help:"Manifest name."`
	Out  string `short:"o" type:"path" help:"Destination file. Defaults to stdout."`
}

func (cmd *seedDumpCmd) Run(ctx context.Context, g *Globals) error {
	env, err := setup(ctx, g)
	if err != nil {
		return err
	}
	defer env.close()

	out, closeOut, err := openOutput(cmd.Out)
	if err != nil {
		return err
	}
	defer closeOut()
	dump := commands.NewDumpSeedCommand(env.runtime.Store, env.telemetry)
	return dump.Execute(ctx, commands.DumpSeedInput{Name: cmd.Name, Out: out})
}

type seedCheckCmd struct {
	Path string `arg:"" type:"existingfile" help:"Manifest to validate."`
}

func (cmd *seedCheckCmd) Run() error {
	doc, err := dashboard.ReadSeedManifest(cmd.Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ %s: %d products, %d customers, %d orders\n",
		cmd.Path, len(doc.Products), len(doc.Customers), len(doc.Orders))
	return nil
}

type localesCmd struct {
	Check localesCheckCmd `cmd:"" help:"Report keys missing from any language."`
}

type localesCheckCmd struct{}

func (cmd *localesCheckCmd) Run() error {
	dict, err := i18n.Load()
	if err != nil {
		return err
	}
	missing := dict.MissingKeys()
	for _, key := range missing {
		fmt.Fprintln(os.Stdout, key.String())
	}
	if len(missing) > 0 {
		return fmt.Errorf("dashctl: %d translation keys missing", len(missing))
	}
	fmt.Fprintln(os.Stdout, "✓ dictionaries are complete")
	return nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return nil, nil, fmt.Errorf("dashctl: create %s: %w", path, err)
	}
	return file, func() {
		if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			fmt.Fprintf(os.Stderr, "dashctl: close %s: %v\n", path, err)
		}
	}, nil
}
