package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedscope/pkg/domain"
	"github.com/umputun/feedscope/server/mocks"
)

const testToken = "test-token"

// testMocks bundles the mocked dependencies of a test server
type testMocks struct {
	config   *mocks.ConfigProviderMock
	feeds    *mocks.FeedStoreMock
	articles *mocks.ArticleStoreMock
	users    *mocks.UserStoreMock
	parser   *mocks.ParserMock
	syncer   *mocks.SyncerMock
}

// newTestServer creates a server with a working token for user 7 and
// everything else left for the test to mock out
func newTestServer(t *testing.T) (*httptest.Server, *testMocks) {
	t.Helper()

	m := &testMocks{
		config: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) {
				return ":0", 30 * time.Second
			},
		},
		feeds:    &mocks.FeedStoreMock{},
		articles: &mocks.ArticleStoreMock{},
		users: &mocks.UserStoreMock{
			GetUserByTokenFunc: func(ctx context.Context, token string) (*domain.User, error) {
				if token == testToken {
					return &domain.User{ID: 7, Name: "tester"}, nil
				}
				return nil, domain.ErrNotFound
			},
		},
		parser: &mocks.ParserMock{},
		syncer: &mocks.SyncerMock{},
	}

	srv := New(m.config, m.feeds, m.articles, m.users, m.parser, m.syncer, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)

	return ts, m
}

// doRequest performs an authenticated request against the test server
func doRequest(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, ts.URL+path, http.NoBody)
	} else {
		req, err = http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	}
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func TestServer_Status(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_Ping(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Auth(t *testing.T) {
	ts, m := newTestServer(t)
	m.feeds.GetFeedsFunc = func(ctx context.Context, userID int64) ([]*domain.Feed, error) {
		return nil, nil
	}

	t.Run("missing token", func(t *testing.T) {
		resp, err := ts.Client().Get(ts.URL + "/api/v1/feeds")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/feeds", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer nope")

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/feeds", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", testToken) // no Bearer prefix

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		resp := doRequest(t, ts, http.MethodGet, "/api/v1/feeds", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, m.feeds.GetFeedsCalls(), 1)
		assert.Equal(t, int64(7), m.feeds.GetFeedsCalls()[0].UserID)
	})
}

func TestRenderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)

	renderJSON(w, req, http.StatusTeapot, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"k":"v"}`, w.Body.String())
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)

	renderError(w, req, nil, http.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
