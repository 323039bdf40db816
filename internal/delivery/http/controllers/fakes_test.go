package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/helpers"
	"github.com/Najehsaidani/We-Connect-sub000/internal/delivery/http/middleware"
	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeResolver struct {
	set domain.AttendanceSet
	err error
}

func (f *fakeResolver) AttendingSet(context.Context, int64) (domain.AttendanceSet, error) {
	return f.set, f.err
}

type fakeReconciler struct {
	outcome domain.MutationOutcome
	err     error

	participant *domain.Participant
	statusErr   error

	joinKeys  []domain.EventKey
	leaveKeys []domain.EventKey
}

func (f *fakeReconciler) Join(_ context.Context, _ int64, key domain.EventKey) (domain.MutationOutcome, error) {
	f.joinKeys = append(f.joinKeys, key)
	return f.outcome, f.err
}

func (f *fakeReconciler) Leave(_ context.Context, _ int64, key domain.EventKey) (domain.MutationOutcome, error) {
	f.leaveKeys = append(f.leaveKeys, key)
	return f.outcome, f.err
}

func (f *fakeReconciler) SetParticipantStatus(context.Context, domain.EventKey, int64, domain.ParticipantStatus) (*domain.Participant, error) {
	return f.participant, f.statusErr
}

type fakeCatalog struct {
	items []domain.CatalogEvent
}

func (f *fakeCatalog) Catalog(context.Context) []domain.CatalogEvent {
	return f.items
}

func (f *fakeCatalog) Search(context.Context, string) []domain.CatalogEvent {
	return f.items
}

type fakeEventService struct {
	event        *domain.Event
	err          error
	participants []domain.Participant
}

func (f *fakeEventService) GetEvent(context.Context, domain.EventKey) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) CreateEvent(context.Context, domain.EventDomain, int64, domain.EventDraft) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) UpdateEvent(context.Context, domain.EventKey, domain.EventPatch, int64) (*domain.Event, error) {
	return f.event, f.err
}

func (f *fakeEventService) DeleteEvent(context.Context, domain.EventKey, int64) error {
	return f.err
}

func (f *fakeEventService) ListParticipants(context.Context, domain.EventKey) ([]domain.Participant, error) {
	return f.participants, f.err
}

// authedRequest builds a request carrying an authenticated user ID and the
// given path values.
func authedRequest(method, target string, body io.Reader, userID int64, pathValues map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, body)
	r = r.WithContext(middleware.SetUserID(r.Context(), userID))
	for k, v := range pathValues {
		r.SetPathValue(k, v)
	}
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	if data != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
	return envelope.Error
}
