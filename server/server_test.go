package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/server/mocks"
)

const testAuthKey = "test-secret-key"

func testConfig(imagesDir string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		GetAuthKeyFunc:      func() string { return testAuthKey },
		GetImagesDirFunc:    func() string { return imagesDir },
	}
}

// makeToken signs a bearer token for the given subject and role
func makeToken(t *testing.T, key, sub string, role domain.Role, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{Role: role, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T) string  { return makeToken(t, testAuthKey, "u1", domain.RoleUser, time.Hour) }
func adminToken(t *testing.T) string { return makeToken(t, testAuthKey, "admin1", domain.RoleAdmin, time.Hour) }

// serve runs a request through the full router
func serve(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(""), &mocks.DatabaseMock{}, &mocks.RecommenderMock{}, nil, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.Nil(t, srv.assistant)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testConfig("")
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.RecommenderMock{}, nil, "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "recipescope", resp.Header.Get("App-Name"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			PingFunc:         func(context.Context) error { return nil },
			CountRecipesFunc: func(context.Context) (int64, error) { return 42, nil },
		}
		srv := New(testConfig(""), db, &mocks.RecommenderMock{}, nil, "1.2.3", false)

		w := serve(t, srv, "GET", "/api/v1/status", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		status := decodeBody(t, w)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "1.2.3", status["version"])
		assert.Equal(t, "ok", status["database"])
		assert.InDelta(t, 42, status["recipes"], 0.001)
		assert.NotEmpty(t, status["time"])
	})

	t.Run("database down", func(t *testing.T) {
		db := &mocks.DatabaseMock{PingFunc: func(context.Context) error { return errors.New("connection refused") }}
		srv := New(testConfig(""), db, &mocks.RecommenderMock{}, nil, "1.2.3", false)

		w := serve(t, srv, "GET", "/api/v1/status", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		status := decodeBody(t, w)
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "unavailable", status["database"])
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.Empty(t, db.CountRecipesCalls())
	})
}

func TestServer_Metrics(t *testing.T) {
	srv := New(testConfig(""), &mocks.DatabaseMock{}, &mocks.RecommenderMock{}, nil, "1.0.0", false)
	w := serve(t, srv, "GET", "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_Auth(t *testing.T) {
	rec := &mocks.RecommenderMock{
		LoadPreferencesFunc: func(context.Context, string) (domain.Preferences, error) {
			return domain.Preferences{Budget: domain.BudgetLow}, nil
		},
	}
	db := &mocks.DatabaseMock{
		GetRecipeFunc: func(_ context.Context, id string) (*domain.Recipe, error) { return &domain.Recipe{ID: id}, nil },
	}
	srv := New(testConfig(""), db, rec, nil, "1.0.0", false)

	noneToken := func() string {
		claims := &Claims{Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		return tok
	}()

	tbl := []struct {
		name  string
		path  string
		token string
		code  int
	}{
		{"no token", "/api/v1/personalization", "", http.StatusUnauthorized},
		{"garbage token", "/api/v1/personalization", "not-a-jwt", http.StatusUnauthorized},
		{"wrong key", "/api/v1/personalization", makeToken(t, "other-key", "u1", domain.RoleUser, time.Hour), http.StatusUnauthorized},
		{"expired", "/api/v1/personalization", makeToken(t, testAuthKey, "u1", domain.RoleUser, -time.Minute), http.StatusUnauthorized},
		{"no subject", "/api/v1/personalization", makeToken(t, testAuthKey, "", domain.RoleUser, time.Hour), http.StatusUnauthorized},
		{"unknown role", "/api/v1/personalization", makeToken(t, testAuthKey, "u1", "root", time.Hour), http.StatusUnauthorized},
		{"alg none", "/api/v1/recipes/r1", noneToken, http.StatusUnauthorized},
		{"user ok", "/api/v1/personalization", userToken(t), http.StatusOK},
		{"empty role is user", "/api/v1/personalization", makeToken(t, testAuthKey, "u1", "", time.Hour), http.StatusOK},
		{"user on admin route", "/api/v1/recipes/r1", userToken(t), http.StatusForbidden},
		{"admin on admin route", "/api/v1/recipes/r1", adminToken(t), http.StatusOK},
		{"admin on user route", "/api/v1/personalization", adminToken(t), http.StatusOK},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, srv, "GET", tt.path, tt.token, "")
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestParseToken(t *testing.T) {
	id, err := parseToken("Bearer "+makeToken(t, testAuthKey, "u7", domain.RoleAdmin, time.Hour), []byte(testAuthKey))
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "u7", Role: domain.RoleAdmin}, id)

	_, err = parseToken("Basic abc", []byte(testAuthKey))
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = parseToken("Bearer "+makeToken(t, testAuthKey, "u7", domain.RoleUser, time.Hour), nil)
	require.ErrorIs(t, err, domain.ErrUnauthorized, "empty key never verifies")
}

func TestRenderJSON(t *testing.T) {
	data := map[string]string{"message": "test", "status": "ok"}

	req := httptest.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()
	renderJSON(w, req, http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{name: "generic error", err: errors.New("something went wrong"), expectedCode: http.StatusBadRequest,
			expectedMsg: "something went wrong"},
		{name: "nil error", err: nil, expectedCode: http.StatusInternalServerError, expectedMsg: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", http.NoBody)
			w := httptest.NewRecorder()
			renderError(w, req, tt.err, tt.expectedCode)

			assert.Equal(t, tt.expectedCode, w.Code)
			result := decodeBody(t, w)
			assert.Equal(t, tt.expectedMsg, result["error"])
		})
	}
}

func TestRenderDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       int
		msg        string
		retryAfter string
	}{
		{"validation", domain.NewValidationError("budget", "must be one of: High Medium Low"), http.StatusBadRequest,
			"invalid budget: must be one of: High Medium Low", ""},
		{"no preferences", fmt.Errorf("load: %w", domain.ErrNoPreferences), http.StatusNotFound,
			"load: no preferences on file", ""},
		{"no candidate", domain.ErrNoCandidate, http.StatusNotFound, "no recipe available", ""},
		{"quota", fmt.Errorf("user u1 used 5 of 5: %w", domain.ErrQuotaExceeded), http.StatusTooManyRequests,
			"daily recommendation limit reached", ""},
		{"unavailable", fmt.Errorf("redis: %w: %w", domain.ErrUpstreamUnavailable, errors.New("dial tcp 10.0.0.1:6379")),
			http.StatusServiceUnavailable, "service temporarily unavailable", "5"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", ""},
		{"internal", errors.New("sql: syntax error near SELECT"), http.StatusInternalServerError, "internal error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", http.NoBody)
			w := httptest.NewRecorder()
			renderDomainError(w, req, tt.err, "test op")

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
			result := decodeBody(t, w)
			assert.Equal(t, tt.msg, result["error"])
		})
	}

	t.Run("validation fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderDomainError(w, httptest.NewRequest("GET", "/test", http.NoBody),
			&domain.ValidationError{Fields: map[string]string{"a": "bad", "b": "worse"}}, "test op")
		result := decodeBody(t, w)
		assert.Equal(t, map[string]interface{}{"a": "bad", "b": "worse"}, result["fields"])
	})
}
