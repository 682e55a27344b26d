package service

// Hook priorities. The rewriter runs late in each filter chain so it
// sees the fully built value; decoration runs at default priority.
const (
	priorityDefault  = 10
	priorityRewriter = 20
)

// Register attaches every handler to the activity pipeline. Called
// once at bootstrap, before any request is served.
func (s *Service) Register() {
	h := s.Hooks

	h.ListArgs.Add(priorityRewriter, s.AdjustArgs)
	h.WhereConditions.Add(priorityRewriter, s.CaptureWhere)
	h.PagedSQL.Add(priorityRewriter, s.RewriteSelect)
	h.TotalSQL.Add(priorityRewriter, s.RewriteCount)
	h.FilterOptions.Add(priorityDefault, s.FilterOptionsFilter)
	h.ActivityClass.Add(priorityDefault, s.ClassFilter)

	h.CommentPosted.Add(priorityDefault, s.OnCommentPosted)
	h.PermalinkViewed.Add(priorityDefault, s.OnPermalink)
	h.Deleted.Add(priorityDefault, s.OnDeleted)
}
