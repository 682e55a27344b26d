package module

import "activityreplies/internal/platform/config"

// Options for the activity module
type Options struct {
	PerPageDefault int
	PerPageMax     int
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("ACTIVITY_")
	return Options{
		PerPageDefault: af.MayInt("PER_PAGE", 20),
		PerPageMax:     af.MayInt("PER_PAGE_MAX", 100),
	}
}
