package module

import "activityreplies/internal/platform/config"

// Options for the replies module
type Options struct {
	Highlight     bool
	DisabledTypes []string
}

// FromConfig reads options from config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("REPLIES_")
	return Options{
		Highlight:     rf.MayBool("HIGHLIGHT", true),
		DisabledTypes: rf.MayCSV("DISABLED_TYPES", nil),
	}
}
