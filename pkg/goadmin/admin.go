package goadmin

import (
	"context"
	"errors"
	"fmt"

	core "github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
	dashboardpkg "github.com/goliatone/go-storefront-admin/pkg/dashboard"
)

// MenuBuilder ensures storefront entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures storefront link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires the storefront runtime into an admin shell.
type Config struct {
	EnableStorefront bool
	MenuCode         string
	MenuBuilder      MenuBuilder
	Runtime          *dashboardpkg.Runtime
	BasePath         string
	Language         i18n.Language
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed storefront menus.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableStorefront && cfg.Runtime == nil {
		return nil, errors.New("goadmin: storefront runtime is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/admin"
	}
	if !cfg.Language.Valid() {
		cfg.Language = i18n.DefaultLanguage
	}
	return &Admin{cfg: cfg}, nil
}

// Service exposes the configured storefront service when enabled.
func (a *Admin) Service() *dashboardpkg.Service {
	if !a.cfg.EnableStorefront {
		return nil
	}
	return a.cfg.Runtime.Service
}

// MenuItems lists one entry per storefront page, labelled in the configured language.
func (a *Admin) MenuItems() []MenuItem {
	if !a.cfg.EnableStorefront {
		return nil
	}
	nav := core.Navigation(a.cfg.Runtime.Dictionary, a.cfg.Language, a.cfg.BasePath, "")
	items := make([]MenuItem, len(nav))
	for i, entry := range nav {
		items[i] = MenuItem{
			Label:    entry.Label,
			Route:    entry.Href,
			Icon:     entry.Icon,
			Position: i + 1,
		}
	}
	return items
}

// Bootstrap seeds menu entries when storefront support is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableStorefront || a.cfg.MenuBuilder == nil {
		return nil
	}
	for _, item := range a.MenuItems() {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return fmt.Errorf("goadmin: ensure menu item %s: %w", item.Route, err)
		}
	}
	return nil
}
