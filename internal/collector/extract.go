package collector

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qepting91/reddit-wiper/internal/domain"
)

const (
	commentSelector = "shreddit-profile-comment[comment-id]"
	commentPrefix   = "t1_"
)

var afterRegex = regexp.MustCompile(`after=([A-Za-z0-9_%]+)`)

// ExtractCommentIDs returns the ids of every profile comment element in page.
// Pages that do not parse yield an empty set.
func ExtractCommentIDs(page []byte) domain.CommentSet {
	ids := domain.NewCommentSet()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ids
	}
	doc.Find(commentSelector).Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("comment-id")
		if strings.HasPrefix(id, commentPrefix) {
			ids.Add(domain.CommentID(id))
		}
	})
	return ids
}

// ExtractAfter returns the first pagination cursor in page, as it appears
// there (still percent-encoded).
func ExtractAfter(page []byte) (string, bool) {
	m := afterRegex.FindSubmatch(page)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// decodeCursor undoes the percent-encoding the page applies to the cursor so
// the query encoder does not encode it a second time.
func decodeCursor(after string) string {
	if v, err := url.QueryUnescape(after); err == nil {
		return v
	}
	return after
}
