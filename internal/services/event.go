package services

import (
	"context"
	"fmt"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

type eventService struct {
	adapters map[domain.EventDomain]domain.EventAdapter
}

// NewEventService returns the CRUD router over the two adapters. The domain
// tag on each request picks the adapter; nothing here crosses domains.
func NewEventService(university, club domain.EventAdapter) domain.EventService {
	return &eventService{
		adapters: map[domain.EventDomain]domain.EventAdapter{
			domain.DomainUniversity: university,
			domain.DomainClub:       club,
		},
	}
}

func (s *eventService) adapterFor(dom domain.EventDomain) (domain.EventAdapter, error) {
	a, ok := s.adapters[dom]
	if !ok {
		return nil, fmt.Errorf("%w: unknown event domain %q", domain.ErrInvalidInput, dom)
	}
	return a, nil
}

func (s *eventService) GetEvent(ctx context.Context, key domain.EventKey) (*domain.Event, error) {
	a, err := s.adapterFor(key.Domain)
	if err != nil {
		return nil, err
	}
	return a.GetEvent(ctx, key.EventID)
}

func (s *eventService) CreateEvent(ctx context.Context, dom domain.EventDomain, creatorID int64, draft domain.EventDraft) (*domain.Event, error) {
	a, err := s.adapterFor(dom)
	if err != nil {
		return nil, err
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if draft.StartsAt.IsZero() {
		return nil, fmt.Errorf("%w: starts_at is required", domain.ErrInvalidInput)
	}
	if dom == domain.DomainClub && draft.ClubID == 0 {
		return nil, fmt.Errorf("%w: club_id is required for club events", domain.ErrInvalidInput)
	}
	return a.CreateEvent(ctx, creatorID, draft)
}

func (s *eventService) UpdateEvent(ctx context.Context, key domain.EventKey, patch domain.EventPatch, actingUserID int64) (*domain.Event, error) {
	a, err := s.adapterFor(key.Domain)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		normalized := string(domain.NormalizeEventStatus(*patch.Status))
		patch.Status = &normalized
	}
	return a.UpdateEvent(ctx, key.EventID, patch, actingUserID)
}

func (s *eventService) DeleteEvent(ctx context.Context, key domain.EventKey, actingUserID int64) error {
	a, err := s.adapterFor(key.Domain)
	if err != nil {
		return err
	}
	return a.DeleteEvent(ctx, key.EventID, actingUserID)
}

func (s *eventService) ListParticipants(ctx context.Context, key domain.EventKey) ([]domain.Participant, error) {
	a, err := s.adapterFor(key.Domain)
	if err != nil {
		return nil, err
	}
	return a.ListParticipants(ctx, key.EventID)
}
