package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// CountAdjuster reconciles an upstream attending count with any local
// session-level drift (degraded joins the backend never recorded).
type CountAdjuster interface {
	AdjustCount(key domain.EventKey, upstream int) int
}

type catalogService struct {
	university domain.EventAdapter
	club       domain.EventAdapter
	counts     CountAdjuster
	logger     *slog.Logger
	now        func() time.Time
}

// NewCatalogService returns the merged-catalog service. counts may be nil,
// in which case upstream attending counts are used as-is.
func NewCatalogService(university, club domain.EventAdapter, counts CountAdjuster, logger *slog.Logger) domain.CatalogService {
	return &catalogService{
		university: university,
		club:       club,
		counts:     counts,
		logger:     logger,
		now:        time.Now,
	}
}

// Catalog fetches both domains concurrently and concatenates them, university
// first by convention, with no re-sorting. Each adapter is fail-soft, so a
// domain outage shows up as that domain contributing nothing.
func (s *catalogService) Catalog(ctx context.Context) []domain.CatalogEvent {
	return s.merge(ctx, func(ctx context.Context, a domain.EventAdapter) ([]domain.Event, error) {
		return a.ListEvents(ctx)
	})
}

// Search fetches both domains' search routes, merges, and re-applies the
// predicate locally over title, location, and description. The local pass
// papers over the two backends' diverging search semantics.
func (s *catalogService) Search(ctx context.Context, term string) []domain.CatalogEvent {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Catalog(ctx)
	}
	merged := s.merge(ctx, func(ctx context.Context, a domain.EventAdapter) ([]domain.Event, error) {
		return a.SearchEvents(ctx, term)
	})
	needle := strings.ToLower(term)
	out := make([]domain.CatalogEvent, 0, len(merged))
	for _, ev := range merged {
		if strings.Contains(strings.ToLower(ev.Title), needle) ||
			strings.Contains(strings.ToLower(ev.Location), needle) ||
			strings.Contains(strings.ToLower(ev.Description), needle) {
			out = append(out, ev)
		}
	}
	return out
}

func (s *catalogService) merge(ctx context.Context, fetch func(context.Context, domain.EventAdapter) ([]domain.Event, error)) []domain.CatalogEvent {
	adapters := []domain.EventAdapter{s.university, s.club}
	listings := make([][]domain.Event, len(adapters))

	g, gctx := errgroup.WithContext(ctx)
	for i, adapter := range adapters {
		g.Go(func() error {
			evs, err := fetch(gctx, adapter)
			if err != nil {
				// Adapters are fail-soft for listings; an error here is a
				// contract violation, treated the same as an outage.
				s.logger.Warn("listing failed", "domain", adapter.Domain(), "err", err)
				return nil
			}
			listings[i] = evs
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.CatalogEvent
	for i, adapter := range adapters {
		for _, ev := range listings[i] {
			entry, err := s.normalize(ev, adapter.Domain())
			if err != nil {
				s.logger.Warn("dropping event from catalog",
					"domain", adapter.Domain(), "event_id", ev.ID, "err", err)
				continue
			}
			out = append(out, entry)
		}
	}
	if out == nil {
		out = []domain.CatalogEvent{}
	}
	return out
}

// normalize projects one domain record into its display-ready form. A record
// missing its identifier, title, or start timestamp is rejected; the caller
// drops it without affecting siblings.
func (s *catalogService) normalize(ev domain.Event, dom domain.EventDomain) (domain.CatalogEvent, error) {
	if ev.ID <= 0 {
		return domain.CatalogEvent{}, &domain.ValidationError{Field: "id", Reason: "missing"}
	}
	if ev.Title == "" {
		return domain.CatalogEvent{}, &domain.ValidationError{Field: "title", Reason: "missing"}
	}
	if ev.StartsAt.IsZero() {
		return domain.CatalogEvent{}, &domain.ValidationError{Field: "starts_at", Reason: "missing"}
	}

	organizer := "Université"
	if dom == domain.DomainClub {
		organizer = ev.ClubName
		if organizer == "" {
			organizer = "Club"
		}
	}

	count := ev.ParticipantCount
	key := domain.EventKey{Domain: dom, EventID: ev.ID}
	if s.counts != nil {
		count = s.counts.AdjustCount(key, count)
	}

	return domain.CatalogEvent{
		ID:             ev.ID,
		Title:          ev.Title,
		Description:    ev.Description,
		Location:       ev.Venue,
		Date:           ev.StartsAt.Format("2006-01-02"),
		Time:           ev.StartsAt.Format("15:04"),
		Image:          ev.Image,
		Organizer:      organizer,
		AttendingCount: count,
		Domain:         dom,
		CreatorID:      ev.CreatorID,
		Upcoming:       ev.StartsAt.After(s.now()),
	}, nil
}
