// Package service implements the activity replies component: the
// listing rewrite that turns "my activity" into "replies to my
// activity", and the notification routing around posted comments
package service

import (
	activitydom "activityreplies/internal/services/activity/domain"
	activitysvc "activityreplies/internal/services/activity/service"
	identdom "activityreplies/internal/services/ident/domain"
	notifydom "activityreplies/internal/services/notify/domain"
)

// Config for the replies service
type Config struct {
	// Highlight toggles the style block for unread rows
	Highlight bool

	// DisabledTypes lists activity types that do not accept comments
	// in this deployment; they are pruned from the replies dropdown
	DisabledTypes []string
}

// Service wires the rewriter and the router against the activity
// pipeline, the notification store, and member identity lookups.
// Notifications may be nil: the rewriter still works and every router
// entry point no-ops.
type Service struct {
	Activities    activitydom.ReaderPort
	Lister        activitydom.ListerPort
	Notifications notifydom.StorePort
	Namer         identdom.NamerPort
	Hooks         *activitysvc.Hooks
	Cfg           Config
}

// New constructs the replies service
func New(
	activities activitydom.ReaderPort,
	lister activitydom.ListerPort,
	notifications notifydom.StorePort,
	namer identdom.NamerPort,
	hooks *activitysvc.Hooks,
	cfg Config,
) *Service {
	if activities == nil {
		panic("replies.Service requires an activity reader")
	}
	if hooks == nil {
		panic("replies.Service requires the activity hooks")
	}
	return &Service{
		Activities:    activities,
		Lister:        lister,
		Notifications: notifications,
		Namer:         namer,
		Hooks:         hooks,
		Cfg:           cfg,
	}
}
