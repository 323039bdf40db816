package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/helpers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/middleware"
	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

type ParticipationController struct {
	Logger     *slog.Logger
	Resolver   domain.ParticipationResolver
	Reconciler domain.ReconciliationService
}

func NewParticipationController(logger *slog.Logger, resolver domain.ParticipationResolver, reconciler domain.ReconciliationService) *ParticipationController {
	return &ParticipationController{
		Logger:     logger,
		Resolver:   resolver,
		Reconciler: reconciler,
	}
}

// AttendingResponse is the response body for GET /me/attending.
// swagger:model AttendingResponse
type AttendingResponse struct {
	Attending []domain.EventKey `json:"attending"`
}

// MyAttending godoc
// @Summary List the events the current user attends
// @Description Returns the unified attending set across both domains as (domain, event_id) pairs. If one domain's backend is down, the other's results are still returned.
// @Tags participation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.AttendingResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /me/attending [get]
func (c *ParticipationController) MyAttending(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	set, err := c.Resolver.AttendingSet(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}

	keys := set.Keys()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Domain != keys[j].Domain {
			return keys[i].Domain < keys[j].Domain
		}
		return keys[i].EventID < keys[j].EventID
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, AttendingResponse{Attending: keys})
}

// Join godoc
// @Summary Join an event
// @Description Registers the current user for the event. When every backend route fails, the transition is simulated locally and the outcome carries degraded=true; the caller must surface that distinctly from a real success.
// @Tags participation
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.MutationOutcome
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{domain}/{eventID}/attendance [post]
func (c *ParticipationController) Join(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, c.Reconciler.Join)
}

// Leave godoc
// @Summary Leave an event
// @Description Withdraws the current user from the event, with the same degraded-fallback policy as join.
// @Tags participation
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.MutationOutcome
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{domain}/{eventID}/attendance [delete]
func (c *ParticipationController) Leave(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, c.Reconciler.Leave)
}

func (c *ParticipationController) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID int64, key domain.EventKey) (domain.MutationOutcome, error)) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	key, err := parseEventKey(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	outcome, err := op(r.Context(), userID, key)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if outcome.Degraded {
		c.Logger.WarnContext(r.Context(), "degraded participation change",
			"key", key.String(), "user_id", userID, "attending", outcome.Attending)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, outcome)
}

// SetStatusRequest is the request body for the participant status change.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements helpers.Validator.
func (r *SetStatusRequest) Validate() []string {
	switch domain.ParticipantStatus(r.Status) {
	case domain.ParticipantConfirmed, domain.ParticipantPending, domain.ParticipantCancelled:
		return nil
	default:
		return []string{"status must be one of CONFIRMED, PENDING, CANCELLED"}
	}
}

// SetStatus godoc
// @Summary Change a participant's status
// @Description Applies a moderator status change (CONFIRMED, PENDING, CANCELLED) to one participant record. Never touches the attending set, and never degrades: a change the backend did not record is reported as a failure.
// @Tags participation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Param userID path int true "Participant's user ID"
// @Param body body controllers.SetStatusRequest true "New status"
// @Success 200 {object} domain.Participant
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /events/{domain}/{eventID}/participants/{userID}/status [put]
func (c *ParticipationController) SetStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	key, err := parseEventKey(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	participantID, err := strconv.ParseInt(r.PathValue("userID"), 10, 64)
	if err != nil || participantID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid userID")
		return
	}

	var req SetStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	p, err := c.Reconciler.SetParticipantStatus(r.Context(), key, participantID, domain.ParticipantStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}
