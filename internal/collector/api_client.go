package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/reddit-wiper/internal/domain"
	"golang.org/x/time/rate"
)

// APIDeleter deletes comments through the OAuth API instead of the cookie
// session's mutation endpoint.
type APIDeleter struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIDeleter(id, secret, user, pass, userAgent string, opts ...reddit.Opt) (*APIDeleter, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	client, err := reddit.NewClient(creds, append([]reddit.Opt{reddit.WithUserAgent(userAgent)}, opts...)...)
	if err != nil {
		return nil, err
	}

	// API Rate Limit: ~60 reqs/min
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIDeleter{client: client, limiter: limiter}, nil
}

// Delete returns true when the API accepted the request.
func (ad *APIDeleter) Delete(ctx context.Context, id domain.CommentID) (bool, error) {
	if err := ad.limiter.Wait(ctx); err != nil {
		return false, err
	}

	if _, err := ad.client.Comment.Delete(ctx, string(id)); err != nil {
		return false, fmt.Errorf("authenticated api error: %w", err)
	}
	return true, nil
}
