// Package module provides the replies module
package module

import (
	"net/http"

	"activityreplies/internal/modkit"
	"activityreplies/internal/modkit/httpkit"
	activitymod "activityreplies/internal/services/activity/module"
	identmod "activityreplies/internal/services/ident/module"
	notifymod "activityreplies/internal/services/notify/module"
	replieshttp "activityreplies/internal/services/replies/http"
	"activityreplies/internal/services/replies/service"
)

// Ports exposed by the replies module
type Ports struct {
	Screen *service.Service
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
	svc   *service.Service
}

// New constructs the replies module and registers its handlers on the
// activity pipeline. Must run after the activity, notify, and ident
// modules are built.
func New(deps modkit.Deps, activity activitymod.Ports, notify notifymod.Ports, ident identmod.Ports) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(
		activity.Reader,
		activity.Lister,
		notify.Store,
		ident.Namer,
		activity.Hooks,
		service.Config{Highlight: opts.Highlight, DisabledTypes: opts.DisabledTypes},
	)
	svc.Register()

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Screen: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "replies" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	replieshttp.Register(r, m.svc)
}
