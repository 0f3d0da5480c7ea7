// Package config reads the wiper's settings from the environment. main loads
// a .env file first, so values may come from either place.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/qepting91/reddit-wiper/internal/ingest"
)

// Mode selects how comments are deleted.
type Mode string

const (
	ModeSession Mode = "session"
	ModeAPI     Mode = "api"
	ModeDryRun  Mode = "dryrun"
)

// DefaultUserAgents is used when USER_AGENTS_FILE is not set.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/143.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; rv:123.0) Gecko/20100101 Firefox/123.0",
}

// APICredentials are only needed in api mode.
type APICredentials struct {
	ClientID     string
	ClientSecret string
	Password     string
	UserAgent    string
}

type Config struct {
	Username   string
	Cookies    string
	BaseURL    string
	UserAgents []string

	PageDelay  time.Duration
	FeedLength int

	DeleteDelayMin  time.Duration
	DeleteDelayMax  time.Duration
	RoundDelay      time.Duration
	MaxDeleteErrors int
	MaxRounds       int

	DeleteMode  Mode
	API         APICredentials
	JournalPath string
	Seed        uint64
	LogFormat   string
}

// Default returns the settings used for anything the environment leaves unset.
func Default() Config {
	return Config{
		BaseURL:         "https://www.reddit.com",
		UserAgents:      append([]string(nil), DefaultUserAgents...),
		PageDelay:       time.Second,
		FeedLength:      100,
		DeleteDelayMin:  1200 * time.Millisecond,
		DeleteDelayMax:  2500 * time.Millisecond,
		RoundDelay:      3 * time.Second,
		MaxDeleteErrors: 5,
		DeleteMode:      ModeSession,
		LogFormat:       "json",
	}
}

// FeedURL is the account's comment page, also sent as the Referer.
func (c Config) FeedURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/user/" + url.PathEscape(c.Username) + "/comments/"
}

// Load builds a Config from the environment on top of Default and validates it.
func Load() (Config, error) {
	cfg := Default()
	var errs []error

	cfg.Username = strings.TrimSpace(os.Getenv("REDDIT_USERNAME"))
	cfg.Cookies = strings.TrimSpace(os.Getenv("REDDIT_COOKIES"))
	if v := os.Getenv("REDDIT_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if path := os.Getenv("USER_AGENTS_FILE"); path != "" {
		agents, err := ingest.LoadUserAgents(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("USER_AGENTS_FILE: %w", err))
		} else {
			cfg.UserAgents = agents
		}
	}

	errs = append(errs,
		envDuration("PAGE_DELAY", &cfg.PageDelay),
		envInt("FEED_LENGTH", &cfg.FeedLength),
		envDuration("DELETE_DELAY_MIN", &cfg.DeleteDelayMin),
		envDuration("DELETE_DELAY_MAX", &cfg.DeleteDelayMax),
		envDuration("ROUND_DELAY", &cfg.RoundDelay),
		envInt("MAX_DELETE_ERRORS", &cfg.MaxDeleteErrors),
		envInt("MAX_ROUNDS", &cfg.MaxRounds),
		envUint("RANDOM_SEED", &cfg.Seed),
	)

	if v := os.Getenv("DELETE_MODE"); v != "" {
		cfg.DeleteMode = Mode(strings.ToLower(strings.TrimSpace(v)))
	}
	cfg.API = APICredentials{
		ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		Password:     os.Getenv("REDDIT_PASSWORD"),
		UserAgent:    os.Getenv("API_USER_AGENT"),
	}
	cfg.JournalPath = os.Getenv("JOURNAL_PATH")
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	// The feed never changes in a dry run, so one round is all there is.
	if cfg.DeleteMode == ModeDryRun && cfg.MaxRounds == 0 {
		cfg.MaxRounds = 1
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Username == "" {
		errs = append(errs, errors.New("REDDIT_USERNAME is required"))
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("REDDIT_BASE_URL: %w", err))
	}
	if len(c.UserAgents) == 0 {
		errs = append(errs, errors.New("at least one user agent is required"))
	}
	if c.PageDelay < 0 || c.DeleteDelayMin < 0 || c.RoundDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if c.DeleteDelayMin > c.DeleteDelayMax {
		errs = append(errs, fmt.Errorf("DELETE_DELAY_MIN (%s) is greater than DELETE_DELAY_MAX (%s)", c.DeleteDelayMin, c.DeleteDelayMax))
	}
	if c.FeedLength < 1 {
		errs = append(errs, errors.New("FEED_LENGTH must be at least 1"))
	}
	if c.MaxDeleteErrors < 1 {
		errs = append(errs, errors.New("MAX_DELETE_ERRORS must be at least 1"))
	}
	if c.MaxRounds < 0 {
		errs = append(errs, errors.New("MAX_ROUNDS must not be negative"))
	}

	switch c.DeleteMode {
	case ModeSession:
		if c.Cookies == "" {
			errs = append(errs, errors.New("REDDIT_COOKIES is required in session mode"))
		}
	case ModeAPI:
		if c.API.ClientID == "" || c.API.ClientSecret == "" || c.API.Password == "" {
			errs = append(errs, errors.New("REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET and REDDIT_PASSWORD are required in api mode"))
		}
		if c.API.UserAgent == "" {
			errs = append(errs, errors.New("API_USER_AGENT is required in api mode"))
		}
	case ModeDryRun:
	default:
		errs = append(errs, fmt.Errorf("unknown DELETE_MODE: %s (use 'session', 'api', or 'dryrun')", c.DeleteMode))
	}
	return errors.Join(errs...)
}

func envDuration(key string, dst *time.Duration) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func envInt(key string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envUint(key string, dst *uint64) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
