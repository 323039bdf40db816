package events

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// attempt is one route in an ordered fallback chain.
type attempt[T any] struct {
	name string
	call func(ctx context.Context) (T, error)
}

// runAttempts tries each route in priority order and stops at the first
// success. Definitive rejections (conflicts, not-found answers, 4xx other
// than the known missing-endpoint responses) abort the chain immediately: the
// backend understood the request, so an alternate route would only repeat the
// answer. If every route fails, the first route's error is surfaced, since
// the primary route's failure describes the endpoint that should have worked.
func runAttempts[T any](ctx context.Context, attempts []attempt[T]) (T, error) {
	var zero T
	var firstErr error
	for _, a := range attempts {
		v, err := a.call(ctx)
		if err == nil {
			return v, nil
		}
		if !retriable(err) {
			return zero, err
		}
		if firstErr == nil {
			firstErr = err
		}
		if ctx.Err() != nil {
			break
		}
	}
	if firstErr == nil {
		firstErr = errors.New("no routes configured")
	}
	return zero, firstErr
}

// statusError is a non-2xx upstream response that is neither a conflict nor
// otherwise classified.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("upstream status %d", e.code)
	}
	return fmt.Sprintf("upstream status %d: %s", e.code, e.body)
}

// transportStatus reports whether a status code belongs to the transport
// error class: the codes the backend is known to emit for routes it never
// implemented (404, 405) plus transient failures. Everything else is a
// definitive answer.
func transportStatus(code int) bool {
	switch code {
	case http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	default:
		return code >= 500
	}
}

// retriable reports whether an alternate route may resolve the error. Only
// transport-class failures qualify; conflicts, not-found answers, and
// validation rejections are definitive.
func retriable(err error) bool {
	if domain.IsConflict(err) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return false
	}
	return domain.IsTransport(err)
}
