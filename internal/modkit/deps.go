// Package modkit provides module wiring and core deps
package modkit

import (
	"activityreplies/internal/modkit/repokit"
	"activityreplies/internal/platform/config"
	"activityreplies/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
