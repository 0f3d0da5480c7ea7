package collector

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/qepting91/reddit-wiper/internal/config"
	"github.com/qepting91/reddit-wiper/internal/pace"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.Config {
	cfg := config.Default()
	cfg.BaseURL = baseURL
	cfg.Username = "u"
	cfg.Cookies = "csrf_token=tok123; reddit_session=abc"
	return cfg
}

func testSession(cfg config.Config) *Session {
	return NewSession(cfg, pace.NewRandom(1), discardLogger())
}

type recordingSleep struct {
	calls []time.Duration
}

func (r *recordingSleep) Sleep(_ context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return nil
}
