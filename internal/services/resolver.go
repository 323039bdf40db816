package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

type participationResolver struct {
	adapters []domain.EventAdapter
	logger   *slog.Logger
}

// NewParticipationResolver returns a resolver that unions both domains'
// participation records into one attendance set.
func NewParticipationResolver(university, club domain.EventAdapter, logger *slog.Logger) domain.ParticipationResolver {
	return &participationResolver{
		adapters: []domain.EventAdapter{university, club},
		logger:   logger,
	}
}

// AttendingSet queries both domains concurrently and unions the results,
// keyed by (domain, eventID) so equal numeric IDs across domains never
// collide. One domain failing degrades to the other domain's results alone;
// only both failing is an error.
func (r *participationResolver) AttendingSet(ctx context.Context, userID int64) (domain.AttendanceSet, error) {
	results := make([][]domain.Participant, len(r.adapters))
	errs := make([]error, len(r.adapters))

	g, gctx := errgroup.WithContext(ctx)
	for i, adapter := range r.adapters {
		g.Go(func() error {
			ps, err := adapter.UserParticipations(gctx, userID)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = ps
			return nil
		})
	}
	_ = g.Wait()

	set := make(domain.AttendanceSet)
	failed := 0
	for i, adapter := range r.adapters {
		if errs[i] != nil {
			r.logger.Warn("participation query failed",
				"domain", adapter.Domain(), "user_id", userID, "err", errs[i])
			failed++
			continue
		}
		for _, p := range results[i] {
			if p.EventID <= 0 {
				continue
			}
			if p.Status == domain.ParticipantCancelled {
				continue
			}
			set.Add(domain.EventKey{Domain: adapter.Domain(), EventID: p.EventID})
		}
	}
	if failed == len(r.adapters) {
		return nil, fmt.Errorf("all participation sources failed: %w", errs[0])
	}
	return set, nil
}
