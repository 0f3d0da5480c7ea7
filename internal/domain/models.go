package domain

import (
	"context"
	"sort"
	"time"
)

// CommentID is a comment fullname such as "t1_abc123". It is treated as an
// opaque key.
type CommentID string

// CommentSet accumulates comment ids. Adding an id twice is a no-op.
type CommentSet map[CommentID]struct{}

func NewCommentSet(ids ...CommentID) CommentSet {
	s := make(CommentSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s CommentSet) Add(id CommentID) { s[id] = struct{}{} }

func (s CommentSet) Has(id CommentID) bool {
	_, ok := s[id]
	return ok
}

// Diff returns the ids in s that are not in other.
func (s CommentSet) Diff(other CommentSet) CommentSet {
	out := make(CommentSet)
	for id := range s {
		if !other.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// Merge adds every id of other into s.
func (s CommentSet) Merge(other CommentSet) {
	for id := range other {
		s.Add(id)
	}
}

// Sorted returns the ids in ascending order.
func (s CommentSet) Sorted() []CommentID {
	ids := make([]CommentID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Outcome classifies one delete attempt.
type Outcome string

const (
	OutcomeDeleted Outcome = "deleted"
	OutcomeFailed  Outcome = "failed"
	OutcomeError   Outcome = "error"
)

// DeleteRecord is one journal line
type DeleteRecord struct {
	ID      CommentID `json:"id"`
	Round   int       `json:"round"`
	Outcome Outcome   `json:"outcome"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

// Lister walks the profile comment feed and returns every id visible right now.
type Lister interface {
	FetchAll(ctx context.Context) (CommentSet, error)
}

// Deleter removes one comment. A false result with a nil error means the
// remote side answered but did not confirm the deletion.
type Deleter interface {
	Delete(ctx context.Context, id CommentID) (bool, error)
}
