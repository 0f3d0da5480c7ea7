package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCookies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "well formed pairs",
			raw:  "csv=2; theme=1; reddit_session=abc",
			want: map[string]string{"csv": "2", "theme": "1", "reddit_session": "abc"},
		},
		{
			name: "first equals splits",
			raw:  "token=a=b==; x=y",
			want: map[string]string{"token": "a=b==", "x": "y"},
		},
		{
			name: "malformed entries skipped",
			raw:  "novalue; a=1;; =orphan ; b=2",
			want: map[string]string{"a": "1", "b": "2"},
		},
		{
			name: "surrounding whitespace and newlines",
			raw:  "\n  a=1 ;\tb=2  \n",
			want: map[string]string{"a": "1", "b": "2"},
		},
		{
			name: "empty value kept",
			raw:  "a=",
			want: map[string]string{"a": ""},
		},
		{
			name: "encoded json value",
			raw:  "eu_cookie={%22opted%22:true%2C%22nonessential%22:true}",
			want: map[string]string{"eu_cookie": "{%22opted%22:true%2C%22nonessential%22:true}"},
		},
		{
			name: "empty",
			raw:  "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCookies(tt.raw))
		})
	}
}

func TestCSRFToken(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		s := testSession(testConfig("http://example.invalid"))
		token, err := s.CSRFToken()
		require.NoError(t, err)
		assert.Equal(t, "tok123", token)
	})

	t.Run("missing", func(t *testing.T) {
		cfg := testConfig("http://example.invalid")
		cfg.Cookies = "reddit_session=abc"
		_, err := testSession(cfg).CSRFToken()
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("empty value", func(t *testing.T) {
		cfg := testConfig("http://example.invalid")
		cfg.Cookies = "csrf_token=; reddit_session=abc"
		_, err := testSession(cfg).CSRFToken()
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestSessionHeadersAndCookies(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	s := testSession(cfg)

	body, err := s.get(context.Background(), "/ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	require.NotNil(t, got)
	assert.Contains(t, cfg.UserAgents, got.Header.Get("User-Agent"))
	assert.Equal(t, s.UserAgent(), got.Header.Get("User-Agent"))
	assert.Equal(t, "*/*", got.Header.Get("Accept"))
	assert.Equal(t, srv.URL+"/user/u/comments/", got.Header.Get("Referer"))
	assert.Equal(t, srv.URL, got.Header.Get("Origin"))

	c, err := got.Cookie("reddit_session")
	require.NoError(t, err)
	assert.Equal(t, "abc", c.Value)
	c, err = got.Cookie("csrf_token")
	require.NoError(t, err)
	assert.Equal(t, "tok123", c.Value)
}

func TestSessionUserAgentIsSeeded(t *testing.T) {
	cfg := testConfig("http://example.invalid")
	a := testSession(cfg).UserAgent()
	b := testSession(cfg).UserAgent()
	assert.Equal(t, a, b)
}

func TestSessionStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testSession(testConfig(srv.URL)).get(context.Background(), "/user/u/comments/", nil)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.Code)
	assert.Equal(t, http.MethodGet, se.Method)
	assert.Equal(t, srv.URL+"/user/u/comments/", se.URL)
}
