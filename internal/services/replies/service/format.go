package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	notifydom "activityreplies/internal/services/notify/domain"
	dom "activityreplies/internal/services/replies/domain"
)

// StyleBlock is emitted once per replies screen when unread rows are
// present, so the new-reply marker class actually shows
const StyleBlock = `.` + dom.NewReplyClass + ` { background-color: #fff9db; }`

var formatOnce sync.Once

func printer() *message.Printer {
	formatOnce.Do(func() {
		must := func(err error) {
			if err != nil {
				panic(err)
			}
		}
		must(message.Set(language.English, "root-reply-summary",
			plural.Selectf(1, "",
				plural.One, "%[2]s commented on one of your updates",
				plural.Other, "You have %[1]d new comments on your updates",
			)))
		must(message.Set(language.English, "chain-reply-summary",
			plural.Selectf(1, "",
				plural.One, "%[2]s replied to one of your comments",
				plural.Other, "You have %[1]d new replies to your comments",
			)))
	})
	return message.NewPrinter(language.English)
}

// FormatNotification implements the notification store's display
// formatter. A single notification names the commenter and links to
// the comment permalink with the reply marker; a group collapses to a
// count and links to the member's replies screen.
func (s *Service) FormatNotification(ctx context.Context, n notifydom.Notification, total int) (text, link string) {
	if total <= 1 {
		total = 1
	}

	name := ""
	if total == 1 && s.Namer != nil {
		if dn, err := s.Namer.DisplayName(ctx, n.SecondaryItemID); err == nil {
			name = dn
		}
	}

	key := "root-reply-summary"
	if n.ComponentAction == dom.ActionChainReply {
		key = "chain-reply-summary"
	}
	text = printer().Sprintf(key, total, name)

	if total == 1 {
		link = fmt.Sprintf("/activity/%d?reply=%d", n.ItemID, n.ItemID)
	} else {
		link = fmt.Sprintf("/users/%d/activity/replies?n=%d", n.UserID, total)
	}
	return text, link
}

// summary renders one grouped notification line for the replies
// screen, reusing the display formatter on a representative row
func (s *Service) summary(ctx context.Context, action string, count int, last notifydom.Notification) dom.NotificationSummary {
	text, link := s.FormatNotification(ctx, last, count)
	return dom.NotificationSummary{
		Action: action,
		Count:  count,
		Text:   text,
		Link:   link,
	}
}
