package service

import (
	"fmt"
	"strings"

	dom "activityreplies/internal/services/activity/domain"
)

// Condition names produced by the generic WHERE builder. Extension
// handlers address clauses by these names.
const (
	CondUser          = "user_sql"
	CondFilter        = "filter_sql"
	CondSearch        = "search_sql"
	CondExcludedTypes = "excluded_types"
	CondHide          = "hide_sql"
)

// buildConditions maps QueryArgs onto the named WHERE clauses the same
// way for every listing, so handlers can rely on the names being stable
func (s *Service) buildConditions(args dom.QueryArgs) *dom.Conditions {
	conds := dom.NewConditions()

	if args.UserID != 0 {
		conds.Set(CondUser, fmt.Sprintf("a.user_id = %d", args.UserID))
	}
	if len(args.Filter.Actions) > 0 {
		conds.Set(CondFilter, dom.InSQL("a.type", args.Filter.Actions...))
	}
	if args.SearchTerms != "" {
		term := strings.ReplaceAll(args.SearchTerms, "'", "''")
		conds.Set(CondSearch, "a.content LIKE '%"+term+"%'")
	}
	if !args.DisplayComments {
		conds.Set(CondExcludedTypes, dom.NotInSQL("a.type", dom.TypeComment))
	}
	if !args.ShowHidden {
		conds.Set(CondHide, "a.hide_sitewide = false")
	}

	return conds
}

// assemblePagedSQL renders the full paged SELECT as head, WHERE, and
// ordering joined by single spaces. The WHERE block is exactly
// conds.SQL(), so downstream filters can locate it by string match.
func assemblePagedSQL(conds *dom.Conditions, args dom.QueryArgs) string {
	head := "SELECT DISTINCT a.id FROM activities a"
	order := fmt.Sprintf("ORDER BY a.recorded_at DESC, a.id DESC LIMIT %d OFFSET %d",
		args.PerPage, (args.Page-1)*args.PerPage)

	if where := conds.SQL(); where != "" {
		return head + " " + where + " " + order
	}
	return head + " " + order
}

// assembleTotalSQL renders the matching COUNT statement: same head
// shape and WHERE block, no ordering
func assembleTotalSQL(conds *dom.Conditions) string {
	head := "SELECT count(DISTINCT a.id) FROM activities a"
	if where := conds.SQL(); where != "" {
		return head + " " + where
	}
	return head
}
