package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/llm"
	"github.com/umputun/recipescope/pkg/upstream"
)

const subscriberLookupTimeout = 2 * time.Second

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/assistant.go -pkg mocks -skip-ensure -fmt goimports . Assistant

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	db          Database
	recommender Recommender
	assistant   Assistant
	version     string
	debug       bool

	sanitizer   *bluemonday.Policy
	validate    *validator.Validate
	subscribers *upstream.Guard // bounds subscription lookups on the recommendation path

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for catalog, favorite and account operations
type Database interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	CountRecipes(ctx context.Context) (int64, error)
	ToggleFavorite(ctx context.Context, userID, recipeID string) (*domain.Favorite, error)
	IsSubscriber(ctx context.Context, userID string) (bool, error)
	Ping(ctx context.Context) error
}

// Recommender interface for preference and recommendation operations
type Recommender interface {
	GetPersonalizedItem(ctx context.Context, userID string, subscriber bool) (*domain.ItemResult, error)
	SubmitPreferences(ctx context.Context, userID string, in domain.PreferenceInput) (domain.Preferences, error)
	LoadPreferences(ctx context.Context, userID string) (domain.Preferences, error)
	QuotaUsage(ctx context.Context, userID string) (used, limit int64, err error)
}

// Assistant answers cooking questions
type Assistant interface {
	Ask(ctx context.Context, req llm.AskRequest) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthKey() string
	GetImagesDir() string
}

// New initializes a new server instance. Assistant is optional, nil disables the ask endpoint.
func New(cfg ConfigProvider, db Database, recommender Recommender, assistant Assistant, version string, debug bool) *Server {
	s := &Server{
		config:      cfg,
		db:          db,
		recommender: recommender,
		assistant:   assistant,
		version:     version,
		debug:       debug,
		sanitizer:   bluemonday.UGCPolicy(),
		validate:    newValidator(),
		subscribers: upstream.New(upstream.Config{Name: "subscription", Timeout: subscriberLookupTimeout}),
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("recipescope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Handle("GET /metrics", promhttp.Handler())

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// authenticated user routes
		r.Group().Route(func(ur *routegroup.Bundle) {
			ur.Use(s.authMiddleware)
			ur.HandleFunc("POST /personalization", s.submitPreferencesHandler)
			ur.HandleFunc("GET /personalization", s.getPreferencesHandler)
			ur.HandleFunc("GET /recipes/personalized", s.personalizedHandler)
			ur.HandleFunc("POST /favorites/{recipeID}", s.toggleFavoriteHandler)
			ur.HandleFunc("POST /ai/ask", s.askHandler)
		})

		// catalog administration
		r.Group().Route(func(ar *routegroup.Bundle) {
			ar.Use(s.authMiddleware, requireAdmin)
			ar.HandleFunc("POST /recipes", s.createRecipeHandler)
			ar.HandleFunc("GET /recipes/{id}", s.getRecipeHandler)
			ar.HandleFunc("DELETE /recipes/{id}", s.deleteRecipeHandler)
		})
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// retryAfter is the hint sent with 503 responses, in seconds
const retryAfter = "5"

// renderDomainError maps an error kind to the HTTP status. Causes of unavailable and
// internal failures are logged, never sent to the client.
func renderDomainError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch domain.KindOf(err) {
	case domain.KindInvalid:
		resp := map[string]interface{}{"error": err.Error()}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp["fields"] = verr.Fields
		}
		renderJSON(w, r, http.StatusBadRequest, resp)
	case domain.KindNotFound:
		renderError(w, r, err, http.StatusNotFound)
	case domain.KindRateLimited:
		renderError(w, r, errors.New("daily recommendation limit reached"), http.StatusTooManyRequests)
	case domain.KindUnauthorized:
		renderError(w, r, errors.New("unauthorized"), http.StatusUnauthorized)
	case domain.KindUnavailable:
		lgr.Printf("[WARN] %s: %v", op, err)
		w.Header().Set("Retry-After", retryAfter)
		renderError(w, r, errors.New("service temporarily unavailable"), http.StatusServiceUnavailable)
	default:
		lgr.Printf("[ERROR] %s: %v", op, err)
		renderError(w, r, errors.New("internal error"), http.StatusInternalServerError)
	}
}
