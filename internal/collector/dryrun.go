package collector

import (
	"context"
	"log/slog"

	"github.com/qepting91/reddit-wiper/internal/domain"
	"github.com/qepting91/reddit-wiper/internal/logging"
)

// DryRunDeleter logs what would be deleted and reports success.
type DryRunDeleter struct {
	logger *slog.Logger
}

func NewDryRunDeleter(logger *slog.Logger) *DryRunDeleter {
	return &DryRunDeleter{logger: logger}
}

func (dd *DryRunDeleter) Delete(ctx context.Context, id domain.CommentID) (bool, error) {
	logging.Log(ctx, dd.logger, logging.Delete, "dry run, not deleting", "id", id)
	return true, ctx.Err()
}
