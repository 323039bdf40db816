package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// fakeAdapter is an in-memory EventAdapter for service tests. Error fields
// make the corresponding call fail; call slices record mutations.
type fakeAdapter struct {
	tag domain.EventDomain

	events    []domain.Event
	listErr   error
	searchErr error

	participations    []domain.Participant
	participationsErr error

	joinErr   error
	leaveErr  error
	statusErr error

	joinCalls  []int64
	leaveCalls []int64

	statusResult *domain.Participant
	statusCalls  []statusCall
}

type statusCall struct {
	userID  int64
	eventID int64
	status  domain.ParticipantStatus
}

func (f *fakeAdapter) Domain() domain.EventDomain { return f.tag }

func (f *fakeAdapter) ListEvents(context.Context) ([]domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeAdapter) SearchEvents(context.Context, string) ([]domain.Event, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.events, nil
}

func (f *fakeAdapter) GetEvent(_ context.Context, eventID int64) (*domain.Event, error) {
	for i := range f.events {
		if f.events[i].ID == eventID {
			return &f.events[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdapter) CreateEvent(_ context.Context, creatorID int64, draft domain.EventDraft) (*domain.Event, error) {
	ev := domain.Event{
		ID:        int64(len(f.events) + 1),
		Title:     draft.Title,
		StartsAt:  draft.StartsAt,
		CreatorID: creatorID,
		Status:    domain.EventStatusUpcoming,
		ClubID:    draft.ClubID,
	}
	f.events = append(f.events, ev)
	return &ev, nil
}

func (f *fakeAdapter) UpdateEvent(_ context.Context, eventID int64, patch domain.EventPatch, _ int64) (*domain.Event, error) {
	for i := range f.events {
		if f.events[i].ID != eventID {
			continue
		}
		if patch.Title != nil {
			f.events[i].Title = *patch.Title
		}
		if patch.Status != nil {
			f.events[i].Status = domain.EventStatus(*patch.Status)
		}
		return &f.events[i], nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAdapter) DeleteEvent(_ context.Context, eventID int64, _ int64) error {
	for i := range f.events {
		if f.events[i].ID == eventID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAdapter) ListParticipants(context.Context, int64) ([]domain.Participant, error) {
	if f.participationsErr != nil {
		return nil, f.participationsErr
	}
	return f.participations, nil
}

func (f *fakeAdapter) UserParticipations(context.Context, int64) ([]domain.Participant, error) {
	if f.participationsErr != nil {
		return nil, f.participationsErr
	}
	return f.participations, nil
}

func (f *fakeAdapter) Join(_ context.Context, _ int64, eventID int64) (*domain.Participant, error) {
	f.joinCalls = append(f.joinCalls, eventID)
	if f.joinErr != nil {
		return nil, f.joinErr
	}
	return &domain.Participant{EventID: eventID, Status: domain.ParticipantConfirmed}, nil
}

func (f *fakeAdapter) Leave(_ context.Context, _ int64, eventID int64) error {
	f.leaveCalls = append(f.leaveCalls, eventID)
	return f.leaveErr
}

func (f *fakeAdapter) SetParticipantStatus(_ context.Context, userID, eventID int64, status domain.ParticipantStatus) (*domain.Participant, error) {
	f.statusCalls = append(f.statusCalls, statusCall{userID: userID, eventID: eventID, status: status})
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if f.statusResult != nil {
		return f.statusResult, nil
	}
	return &domain.Participant{UserID: userID, EventID: eventID, Status: status}, nil
}

var _ domain.EventAdapter = (*fakeAdapter)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func transportErr(tag domain.EventDomain) error {
	return &domain.TransportError{Domain: tag, Op: "test", Err: io.ErrUnexpectedEOF}
}
