// Package api composes the activity replies HTTP API
package api

import (
	"activityreplies/internal/platform/config"
	"activityreplies/internal/platform/logger"
	phttp "activityreplies/internal/platform/net/http"
	"activityreplies/internal/platform/store"

	"activityreplies/internal/modkit"
	"activityreplies/internal/modkit/httpkit"
	"activityreplies/internal/modkit/module"

	activitymod "activityreplies/internal/services/activity/module"
	identmod "activityreplies/internal/services/ident/module"
	notifymod "activityreplies/internal/services/notify/module"
	repliesdom "activityreplies/internal/services/replies/domain"
	repliesmod "activityreplies/internal/services/replies/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// the replies module hooks into the activity pipeline, so the
	// providers are built first and handed over explicitly
	activity := activitymod.New(deps)
	notify := notifymod.New(deps)
	ident := identmod.New(deps)
	replies := repliesmod.New(deps,
		activity.Ports().(activitymod.Ports),
		notify.Ports().(notifymod.Ports),
		ident.Ports().(identmod.Ports),
	)
	notify.RegisterFormatter(repliesdom.ComponentName, replies.Ports().(repliesmod.Ports).Screen)

	mods := []module.Module{activity, notify, ident, replies}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
