package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/qepting91/reddit-wiper/internal/config"
	"github.com/qepting91/reddit-wiper/internal/domain"
	"github.com/qepting91/reddit-wiper/internal/logging"
)

// NewDeleter selects the delete implementation for cfg.DeleteMode.
// In session mode a missing csrf cookie is returned as ErrUnauthenticated.
func NewDeleter(cfg config.Config, session *Session, logger *slog.Logger) (domain.Deleter, error) {
	switch cfg.DeleteMode {
	case config.ModeSession:
		token, err := session.CSRFToken()
		if err != nil {
			return nil, err
		}
		logging.Log(context.Background(), logger, logging.Auth, "CSRF token loaded")
		return NewGraphQLDeleter(session, token), nil
	case config.ModeAPI:
		api := cfg.API
		d, err := NewAPIDeleter(api.ClientID, api.ClientSecret, cfg.Username, api.Password, api.UserAgent)
		if err != nil {
			return nil, fmt.Errorf("api client: %w", err)
		}
		logging.Log(context.Background(), logger, logging.Auth, "API credentials loaded")
		return d, nil
	case config.ModeDryRun:
		return NewDryRunDeleter(logger), nil
	default:
		return nil, fmt.Errorf("unknown DELETE_MODE: %s (use 'session', 'api', or 'dryrun')", cfg.DeleteMode)
	}
}
