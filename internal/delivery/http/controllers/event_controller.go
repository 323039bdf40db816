package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/helpers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/middleware"
	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Fetch one event
// @Tags events
// @Produce json
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /events/{domain}/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	key, err := parseEventKey(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	ev, err := c.Service.GetEvent(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ev)
}

// CreateEventRequest is the request body for event creation.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Image       string    `json:"image,omitempty"`
	ClubID      int64     `json:"club_id,omitempty"`
}

// Validate implements helpers.Validator.
func (r *CreateEventRequest) Validate() []string {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "title is required")
	}
	if r.StartsAt.IsZero() {
		errs = append(errs, "starts_at is required")
	}
	if !r.EndsAt.IsZero() && r.EndsAt.Before(r.StartsAt) {
		errs = append(errs, "ends_at must not precede starts_at")
	}
	return errs
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Event domain" Enums(university, club)
// @Param body body controllers.CreateEventRequest true "Event fields"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /events/{domain} [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	dom := domain.EventDomain(r.PathValue("domain"))
	if !dom.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event domain")
		return
	}

	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	ev, err := c.Service.CreateEvent(r.Context(), dom, userID, domain.EventDraft{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Image:       req.Image,
		ClubID:      req.ClubID,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ev)
}

// UpdateEventRequest is the request body for partial event updates; absent
// fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Image       *string    `json:"image,omitempty"`
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Param body body controllers.UpdateEventRequest true "Fields to change"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{domain}/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
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

	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	ev, err := c.Service.UpdateEvent(r.Context(), key, domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Status:      req.Status,
		Image:       req.Image,
	}, userID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ev)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{domain}/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := c.Service.DeleteEvent(r.Context(), key, userID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Participants godoc
// @Summary List an event's participants
// @Description Returns the event's participant records with display fields enriched from the user directory where the backend omits them.
// @Tags events
// @Produce json
// @Param domain path string true "Event domain" Enums(university, club)
// @Param eventID path int true "Event ID"
// @Success 200 {array} domain.Participant
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /events/{domain}/{eventID}/participants [get]
func (c *EventController) Participants(w http.ResponseWriter, r *http.Request) {
	key, err := parseEventKey(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	ps, err := c.Service.ListParticipants(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ps)
}
