// Package wipe runs rounds of "list every visible comment, delete each one"
// until a round finds nothing or too many deletes have failed.
package wipe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/qepting91/reddit-wiper/internal/config"
	"github.com/qepting91/reddit-wiper/internal/domain"
	"github.com/qepting91/reddit-wiper/internal/logging"
	"github.com/qepting91/reddit-wiper/internal/pace"
)

// State is the terminal state of a run.
type State string

const (
	// StateDone: a round found no comments.
	StateDone State = "DONE"
	// StateAborted: the delete error budget ran out.
	StateAborted State = "ABORTED"
	// StateLimited: MaxRounds rounds ran without reaching Done.
	StateLimited State = "LIMITED"
)

type Result struct {
	State   State
	Rounds  int
	Deleted int
	Errors  int
}

// Recorder receives one record per delete attempt.
type Recorder interface {
	Record(rec domain.DeleteRecord) error
}

type Option func(*Wiper)

// WithSleep replaces pace.Sleep.
func WithSleep(sleep pace.SleepFunc) Option {
	return func(w *Wiper) { w.sleep = sleep }
}

func WithJournal(r Recorder) Option {
	return func(w *Wiper) { w.journal = r }
}

func WithClock(now func() time.Time) Option {
	return func(w *Wiper) { w.now = now }
}

type Wiper struct {
	lister  domain.Lister
	deleter domain.Deleter
	cfg     config.Config
	rnd     pace.Random
	sleep   pace.SleepFunc
	journal Recorder
	now     func() time.Time
	logger  *slog.Logger
}

func New(lister domain.Lister, deleter domain.Deleter, cfg config.Config, rnd pace.Random, logger *slog.Logger, opts ...Option) *Wiper {
	w := &Wiper{
		lister:  lister,
		deleter: deleter,
		cfg:     cfg,
		rnd:     rnd,
		sleep:   pace.Sleep,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run loops until Done, Aborted or Limited. A listing error ends the run
// and is returned; delete errors only count against MaxDeleteErrors.
// The error count is never reset between rounds.
func (w *Wiper) Run(ctx context.Context) (Result, error) {
	var res Result

	for round := 1; ; round++ {
		res.Rounds = round
		w.log(ctx, logging.Round, fmt.Sprintf("=== WIPE ROUND %d ===", round), "round", round)

		ids, err := w.lister.FetchAll(ctx)
		if err != nil {
			return res, fmt.Errorf("round %d: fetch comments: %w", round, err)
		}
		if len(ids) == 0 {
			w.log(ctx, logging.Done, "No comments remaining. Account is clean")
			res.State = StateDone
			return res, nil
		}

		w.log(ctx, logging.Summary, fmt.Sprintf("Found %d comments to delete", len(ids)), "count", len(ids))

		sorted := ids.Sorted()
		for i, id := range sorted {
			w.log(ctx, logging.Delete, fmt.Sprintf("(%d/%d) Deleting %s", i+1, len(sorted), id), "id", id)

			outcome, derr := w.attempt(ctx, id)
			switch outcome {
			case domain.OutcomeDeleted:
				res.Deleted++
				w.log(ctx, logging.OK, fmt.Sprintf("%s deleted", id), "id", id)
			case domain.OutcomeFailed:
				res.Errors++
				w.log(ctx, logging.Fail, fmt.Sprintf("%s delete failed", id), "id", id)
			case domain.OutcomeError:
				res.Errors++
				w.log(ctx, logging.Error, fmt.Sprintf("%s error: %v", id, derr), "id", id, "err", derr)
			}
			w.record(ctx, round, id, outcome, derr)

			if res.Errors >= w.cfg.MaxDeleteErrors {
				w.log(ctx, logging.Abort, "Too many errors, aborting", "errors", res.Errors)
				res.State = StateAborted
				return res, nil
			}

			if err := w.sleep(ctx, pace.Uniform(w.rnd, w.cfg.DeleteDelayMin, w.cfg.DeleteDelayMax)); err != nil {
				return res, err
			}
		}

		if w.cfg.MaxRounds > 0 && round >= w.cfg.MaxRounds {
			w.log(ctx, logging.Done, "Round limit reached", "max_rounds", w.cfg.MaxRounds)
			res.State = StateLimited
			return res, nil
		}

		// let the feed catch up with the deletions
		if err := w.sleep(ctx, w.cfg.RoundDelay); err != nil {
			return res, err
		}
	}
}

func (w *Wiper) attempt(ctx context.Context, id domain.CommentID) (domain.Outcome, error) {
	ok, err := w.deleter.Delete(ctx, id)
	switch {
	case err != nil:
		return domain.OutcomeError, err
	case ok:
		return domain.OutcomeDeleted, nil
	default:
		return domain.OutcomeFailed, nil
	}
}

func (w *Wiper) record(ctx context.Context, round int, id domain.CommentID, outcome domain.Outcome, derr error) {
	if w.journal == nil {
		return
	}
	rec := domain.DeleteRecord{ID: id, Round: round, Outcome: outcome, At: w.now().UTC()}
	if derr != nil {
		rec.Error = derr.Error()
	}
	if err := w.journal.Record(rec); err != nil {
		w.log(ctx, logging.Error, "journal write failed", "err", err)
	}
}

func (w *Wiper) log(ctx context.Context, tag, msg string, args ...any) {
	logging.Log(ctx, w.logger, tag, msg, args...)
}
