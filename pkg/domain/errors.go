package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
	ErrNoPreferences       = errors.New("no preferences on file")
	ErrQuotaExceeded       = errors.New("daily quota exceeded")
	ErrNoCandidate         = errors.New("no recipe available")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
)

// ErrorKind is a transport-neutral classification of failures
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalid
	KindNotFound
	KindRateLimited
	KindUnavailable
	KindUnauthorized
)

// String returns kind name
func (k ErrorKind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "unavailable"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// KindOf maps an error to its kind. Quota and availability checks come first
// so a wrapped chain carrying several sentinels resolves to the most actionable one.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrQuotaExceeded):
		return KindRateLimited
	case errors.Is(err, ErrUpstreamUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrValidation):
		return KindInvalid
	case errors.Is(err, ErrNoPreferences), errors.Is(err, ErrNoCandidate), errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}

// ValidationError lists rejected fields of a submission
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError makes a validation error for a single field
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) work
func (e *ValidationError) Unwrap() error { return ErrValidation }
