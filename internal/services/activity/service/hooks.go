package service

import (
	"activityreplies/internal/modkit/hookkit"
	"activityreplies/internal/services/activity/domain"
)

// Hooks are the fixed extension points of the activity component.
// Other modules attach handlers at bootstrap; the pipeline fires them
// at well-defined stages with the request context threaded through.
type Hooks struct {
	// ListArgs runs before the listing args are parsed into conditions
	ListArgs hookkit.Filter[domain.QueryArgs]

	// WhereConditions runs after the generic WHERE mapping is built
	WhereConditions hookkit.Filter[*domain.Conditions]

	// PagedSQL runs over the fully assembled paged SELECT
	PagedSQL hookkit.Filter[domain.SelectSQL]

	// TotalSQL runs over the fully assembled COUNT statement
	TotalSQL hookkit.Filter[string]

	// FilterOptions runs over the type-selector dropdown entries
	FilterOptions hookkit.Filter[[]domain.FilterOption]

	// ActivityClass runs over each rendered row's CSS class
	ActivityClass hookkit.Filter[domain.ClassEvent]

	// CommentPosted fires after a comment row has been recorded
	CommentPosted hookkit.Action[domain.CommentEvent]

	// PermalinkViewed fires when a single activity page is served
	PermalinkViewed hookkit.Action[domain.PermalinkEvent]

	// Deleted fires with every id removed by a delete, comments included
	Deleted hookkit.Action[[]int64]
}
