package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/helpers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// parseEventKey reads the {domain} and {eventID} path segments into a
// composite event key.
func parseEventKey(r *http.Request) (domain.EventKey, error) {
	dom := domain.EventDomain(r.PathValue("domain"))
	if !dom.Valid() {
		return domain.EventKey{}, fmt.Errorf("%w: unknown event domain %q", domain.ErrInvalidInput, dom)
	}
	id, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil || id <= 0 {
		return domain.EventKey{}, fmt.Errorf("%w: invalid eventID", domain.ErrInvalidInput)
	}
	return domain.EventKey{Domain: dom, EventID: id}, nil
}

// writeServiceError maps a service-layer error onto the response envelope.
// Upstream outages map to 502 so the front end can tell a flaky backend from
// a bug.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case domain.IsConflict(err):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case domain.IsTransport(err):
		logger.WarnContext(r.Context(), "upstream unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, "upstream unavailable")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
