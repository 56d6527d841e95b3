package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/recipescope/pkg/domain"
	"github.com/umputun/recipescope/pkg/llm"
	"github.com/umputun/recipescope/pkg/upstream"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	if err := s.db.Ping(r.Context()); err != nil {
		lgr.Printf("[WARN] database ping failed: %v", err)
		status["status"] = "degraded"
		status["database"] = "unavailable"
		renderJSON(w, r, http.StatusOK, status)
		return
	}
	status["database"] = "ok"
	if count, err := s.db.CountRecipes(r.Context()); err == nil {
		status["recipes"] = count
	}
	renderJSON(w, r, http.StatusOK, status)
}

// preferenceRequest is the preference submission body
type preferenceRequest struct {
	TargetLifestyle   string         `json:"targetLifestyle"`
	Budget            string         `json:"budget"`
	DietaryPreference string         `json:"dietaryPreference"`
	RecipeType        string         `json:"recipeType"`
	CookingTime       numberOrString `json:"cookingTime"`
}

// numberOrString accepts a JSON number or a JSON string and keeps its text
type numberOrString string

func (n *numberOrString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null":
		*n = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numberOrString(s)
		return nil
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("must be a number or a string: %w", err)
		}
		*n = numberOrString(num.String())
		return nil
	}
}

// submitPreferencesHandler replaces the caller's preference vector
func (s *Server) submitPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())

	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	prefs, err := s.recommender.SubmitPreferences(r.Context(), id.UserID, domain.PreferenceInput{
		TargetLifestyle:   req.TargetLifestyle,
		Budget:            req.Budget,
		DietaryPreference: req.DietaryPreference,
		RecipeType:        req.RecipeType,
		CookingTime:       string(req.CookingTime),
	})
	if err != nil {
		renderDomainError(w, r, err, "submit preferences")
		return
	}
	renderJSON(w, r, http.StatusOK, prefs)
}

// getPreferencesHandler returns the caller's stored preference vector
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	prefs, err := s.recommender.LoadPreferences(r.Context(), id.UserID)
	if err != nil {
		renderDomainError(w, r, err, "load preferences")
		return
	}
	renderJSON(w, r, http.StatusOK, prefs)
}

// personalizedHandler serves the next recommended recipe
func (s *Server) personalizedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := IdentityFrom(ctx)

	subscriber, err := upstream.Call(ctx, s.subscribers, "check subscription", func(ctx context.Context) (bool, error) {
		return s.db.IsSubscriber(ctx, id.UserID)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUpstreamUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
		}
		renderDomainError(w, r, err, "personalized recipe")
		return
	}

	item, err := s.recommender.GetPersonalizedItem(ctx, id.UserID, subscriber)
	if !subscriber {
		s.setRateLimitHeaders(w, r, id.UserID)
	}
	if err != nil {
		renderDomainError(w, r, err, "personalized recipe")
		return
	}
	renderJSON(w, r, http.StatusOK, item)
}

// setRateLimitHeaders reports the daily quota, skipped if usage can't be read
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, r *http.Request, userID string) {
	used, limit, err := s.recommender.QuotaUsage(r.Context(), userID)
	if err != nil {
		lgr.Printf("[DEBUG] can't read quota usage for %s: %v", userID, err)
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
	w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(max(limit-used, 0), 10))
}

// toggleFavoriteHandler adds the favorite mark if absent, removes it otherwise
func (s *Server) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())
	recipeID := r.PathValue("recipeID")

	fav, err := s.db.ToggleFavorite(r.Context(), id.UserID, recipeID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
		}
		renderDomainError(w, r, err, "toggle favorite")
		return
	}

	resp := map[string]interface{}{"recipeId": recipeID, "isFavorited": fav != nil, "favoriteId": nil}
	if fav != nil {
		resp["favoriteId"] = fav.ID
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// askHandler forwards a cooking question to the assistant
func (s *Server) askHandler(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		renderError(w, r, errors.New("assistant is disabled"), http.StatusNotFound)
		return
	}
	id, _ := IdentityFrom(r.Context())

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	askReq := llm.AskRequest{Question: req.Question}
	if prefs, err := s.recommender.LoadPreferences(r.Context(), id.UserID); err == nil {
		askReq.Preferences = &prefs
	}

	answer, err := s.assistant.Ask(r.Context(), askReq)
	if err != nil {
		renderDomainError(w, r, err, "ask assistant")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"answer": answer})
}
