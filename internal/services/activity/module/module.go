// Package module provides the activity module
package module

import (
	"net/http"

	"activityreplies/internal/modkit"
	"activityreplies/internal/modkit/httpkit"
	"activityreplies/internal/modkit/repokit"
	"activityreplies/internal/services/activity/domain"
	activityhttp "activityreplies/internal/services/activity/http"
	"activityreplies/internal/services/activity/repo"
	"activityreplies/internal/services/activity/service"
)

// Ports exposed by the activity module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
	Lister domain.ListerPort

	// Hooks are the pipeline extension points; other modules attach
	// their handlers here during bootstrap, before any request is served
	Hooks *service.Hooks
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
	svc   *service.Service
}

// New constructs a new activity module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	hooks := &service.Hooks{}
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, hooks, service.Config{
		PerPageDefault: opts.PerPageDefault,
		PerPageMax:     opts.PerPageMax,
	})

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{
		Reader: svc,
		Writer: svc,
		Lister: svc,
		Hooks:  hooks,
	}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "activity" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	activityhttp.Register(r, m.svc)
}
