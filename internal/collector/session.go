package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/qepting91/reddit-wiper/internal/config"
	"github.com/qepting91/reddit-wiper/internal/logging"
	"github.com/qepting91/reddit-wiper/internal/pace"
)

// csrfCookie is the cookie the mutation endpoint expects echoed back.
const csrfCookie = "csrf_token"

// ErrUnauthenticated means the supplied cookies carry no csrf token, which
// usually means the session is not logged in.
var ErrUnauthenticated = errors.New("csrf_token cookie not found (not logged in?)")

// StatusError is returned for any response with a 4xx or 5xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

// Session is an HTTP client primed with a browser identity and the
// account's cookies. It is built once per run.
type Session struct {
	client    *resty.Client
	cookies   map[string]string
	userAgent string
}

// NewSession picks a user agent from cfg.UserAgents and loads cfg.Cookies.
func NewSession(cfg config.Config, rnd pace.Random, logger *slog.Logger) *Session {
	ua := pace.Pick(rnd, cfg.UserAgents)
	logging.Log(context.Background(), logger, logging.Init, "Using User-Agent", "user_agent", ua)

	cookies := ParseCookies(cfg.Cookies)
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeaders(map[string]string{
			"User-Agent": ua,
			"Accept":     "*/*",
			"Referer":    cfg.FeedURL(),
			"Origin":     cfg.BaseURL,
		})

	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		client.SetCookie(&http.Cookie{Name: name, Value: cookies[name]})
	}

	return &Session{client: client, cookies: cookies, userAgent: ua}
}

// ParseCookies splits a raw "k=v; k=v" cookie header. The first '=' separates
// key from value; entries without '=' or with an empty key are skipped.
func ParseCookies(raw string) map[string]string {
	cookies := make(map[string]string)
	for _, pair := range strings.Split(strings.TrimSpace(raw), ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || k == "" {
			continue
		}
		cookies[k] = v
	}
	return cookies
}

func (s *Session) UserAgent() string { return s.userAgent }

// CSRFToken returns the csrf cookie value or ErrUnauthenticated.
func (s *Session) CSRFToken() (string, error) {
	token, ok := s.cookies[csrfCookie]
	if !ok || token == "" {
		return "", ErrUnauthenticated
	}
	return token, nil
}

func (s *Session) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, &StatusError{Method: http.MethodGet, URL: requestURL(resp, path), Code: resp.StatusCode()}
	}
	return resp.Body(), nil
}

func (s *Session) postJSON(ctx context.Context, path string, body any) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, &StatusError{Method: http.MethodPost, URL: requestURL(resp, path), Code: resp.StatusCode()}
	}
	return resp.Body(), nil
}

func requestURL(resp *resty.Response, fallback string) string {
	if resp.Request != nil && resp.Request.RawRequest != nil {
		u := *resp.Request.RawRequest.URL
		u.RawQuery = ""
		return u.String()
	}
	return fallback
}
