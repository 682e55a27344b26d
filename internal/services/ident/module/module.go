// Package module provides the ident module
package module

import (
	"net/http"

	"activityreplies/internal/modkit"
	"activityreplies/internal/modkit/httpkit"
	"activityreplies/internal/modkit/repokit"
	"activityreplies/internal/services/ident/domain"
	"activityreplies/internal/services/ident/repo"
	"activityreplies/internal/services/ident/service"
)

// Ports exposed by the ident module
type Ports struct {
	Namer domain.NamerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new ident module
func New(deps modkit.Deps) *Module {
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Namer: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "ident" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
