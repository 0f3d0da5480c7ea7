package collector

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/qepting91/reddit-wiper/internal/config"
	"github.com/qepting91/reddit-wiper/internal/domain"
	"github.com/qepting91/reddit-wiper/internal/logging"
	"github.com/qepting91/reddit-wiper/internal/pace"
)

const morePostsPath = "/svc/shreddit/profiles/profile_comments-more-posts/new/"

// Feed walks the account's comment feed page by page.
type Feed struct {
	session    *Session
	username   string
	feedLength int
	pageDelay  time.Duration
	sleep      pace.SleepFunc
	logger     *slog.Logger
}

func NewFeed(session *Session, cfg config.Config, sleep pace.SleepFunc, logger *slog.Logger) *Feed {
	return &Feed{
		session:    session,
		username:   cfg.Username,
		feedLength: cfg.FeedLength,
		pageDelay:  cfg.PageDelay,
		sleep:      sleep,
		logger:     logger,
	}
}

// FetchAll returns every comment id reachable from the first feed page.
// Pagination stops on a cursor already followed this call, on a page that
// adds no new ids, or when the next cursor is missing or unchanged.
// Transport and status errors are returned as is.
func (f *Feed) FetchAll(ctx context.Context) (domain.CommentSet, error) {
	page, err := f.firstPage(ctx)
	if err != nil {
		return nil, err
	}
	all := ExtractCommentIDs(page)
	after, ok := ExtractAfter(page)

	seen := make(map[string]struct{})
	for ok {
		if _, dup := seen[after]; dup {
			break
		}
		seen[after] = struct{}{}

		if err := f.sleep(ctx, f.pageDelay); err != nil {
			return nil, err
		}

		page, err = f.morePage(ctx, after)
		if err != nil {
			return nil, err
		}

		fresh := ExtractCommentIDs(page).Diff(all)
		if len(fresh) == 0 {
			break
		}
		all.Merge(fresh)

		next, found := ExtractAfter(page)
		if !found || next == after {
			break
		}
		after = next
	}

	return all, nil
}

func (f *Feed) firstPage(ctx context.Context) ([]byte, error) {
	logging.Log(ctx, f.logger, logging.Fetch, "Fetching initial comments page")
	return f.session.get(ctx, "/user/"+url.PathEscape(f.username)+"/comments/", nil)
}

func (f *Feed) morePage(ctx context.Context, after string) ([]byte, error) {
	logging.Log(ctx, f.logger, logging.Fetch, "Fetching more comments", "after", after)
	return f.session.get(ctx, morePostsPath, map[string]string{
		"after":      decodeCursor(after),
		"name":       f.username,
		"feedLength": strconv.Itoa(f.feedLength),
	})
}
