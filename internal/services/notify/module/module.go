// Package module provides the notify module
package module

import (
	"net/http"

	"activityreplies/internal/modkit"
	"activityreplies/internal/modkit/httpkit"
	"activityreplies/internal/modkit/repokit"
	"activityreplies/internal/services/notify/domain"
	notifyhttp "activityreplies/internal/services/notify/http"
	"activityreplies/internal/services/notify/repo"
	"activityreplies/internal/services/notify/service"
)

// Ports exposed by the notify module
type Ports struct {
	Store domain.StorePort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
	svc   *service.Service
}

// New constructs a new notify module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Store: svc}
	return m
}

// RegisterFormatter attaches a display formatter for one component.
// Called from the composition root once dependent modules exist.
func (m *Module) RegisterFormatter(componentName string, f domain.Formatter) {
	m.svc.RegisterFormatter(componentName, f)
}

// Name implements modkit.Module
func (m *Module) Name() string { return "notify" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	notifyhttp.Register(r, m.svc)
}
