package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// Reconciler executes participation state changes, routing each request to
// the adapter owning the event's domain. When every backend route for a
// mutation fails it applies the transition to local session state instead and
// flags the outcome as degraded, so the caller can keep the view usable
// without mistaking simulation for truth.
//
// The only state it owns is the per-event attending-count drift accumulated
// by degraded transitions; a later true success on the same event discards
// the drift, since the backend's next answer is authoritative again.
type Reconciler struct {
	adapters map[domain.EventDomain]domain.EventAdapter
	logger   *slog.Logger

	mu     sync.Mutex
	deltas map[domain.EventKey]int
}

// NewReconciler returns a reconciliation controller over the two adapters.
func NewReconciler(university, club domain.EventAdapter, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		adapters: map[domain.EventDomain]domain.EventAdapter{
			domain.DomainUniversity: university,
			domain.DomainClub:       club,
		},
		logger: logger,
		deltas: make(map[domain.EventKey]int),
	}
}

func (r *Reconciler) adapterFor(dom domain.EventDomain) (domain.EventAdapter, error) {
	a, ok := r.adapters[dom]
	if !ok {
		return nil, fmt.Errorf("%w: unknown event domain %q", domain.ErrInvalidInput, dom)
	}
	return a, nil
}

// Join registers the user for the event. A success through any adapter route
// is a true success. A transport-class failure of every route degrades to a
// local transition; conflicts and other definitive rejections surface
// verbatim with no fallback.
func (r *Reconciler) Join(ctx context.Context, userID int64, key domain.EventKey) (domain.MutationOutcome, error) {
	adapter, err := r.adapterFor(key.Domain)
	if err != nil {
		return domain.MutationOutcome{}, err
	}
	if _, err := adapter.Join(ctx, userID, key.EventID); err != nil {
		if !domain.IsTransport(err) {
			return domain.MutationOutcome{}, err
		}
		r.logger.Warn("join failed on all routes, applying local fallback",
			"key", key.String(), "user_id", userID, "err", err)
		r.bump(key, 1)
		return domain.MutationOutcome{Key: key, Attending: true, Degraded: true}, nil
	}
	r.discard(key)
	return domain.MutationOutcome{Key: key, Attending: true}, nil
}

// Leave withdraws the user from the event, with the same degraded-fallback
// policy as Join.
func (r *Reconciler) Leave(ctx context.Context, userID int64, key domain.EventKey) (domain.MutationOutcome, error) {
	adapter, err := r.adapterFor(key.Domain)
	if err != nil {
		return domain.MutationOutcome{}, err
	}
	if err := adapter.Leave(ctx, userID, key.EventID); err != nil {
		if !domain.IsTransport(err) {
			return domain.MutationOutcome{}, err
		}
		r.logger.Warn("leave failed on all routes, applying local fallback",
			"key", key.String(), "user_id", userID, "err", err)
		r.bump(key, -1)
		return domain.MutationOutcome{Key: key, Attending: false, Degraded: true}, nil
	}
	r.discard(key)
	return domain.MutationOutcome{Key: key, Attending: false}, nil
}

// SetParticipantStatus applies a moderator status change to one participant
// record. It touches neither the attending set nor the count drift, and it
// never degrades: a moderation action the backend did not record must not
// look applied.
func (r *Reconciler) SetParticipantStatus(ctx context.Context, key domain.EventKey, participantUserID int64, status domain.ParticipantStatus) (*domain.Participant, error) {
	adapter, err := r.adapterFor(key.Domain)
	if err != nil {
		return nil, err
	}
	return adapter.SetParticipantStatus(ctx, participantUserID, key.EventID, status)
}

// AdjustCount implements CountAdjuster: it overlays the session's degraded
// drift on an upstream attending count, clamping at zero.
func (r *Reconciler) AdjustCount(key domain.EventKey, upstream int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := upstream + r.deltas[key]
	if v < 0 {
		v = 0
	}
	return v
}

func (r *Reconciler) bump(key domain.EventKey, delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deltas[key] += delta
	if r.deltas[key] == 0 {
		delete(r.deltas, key)
	}
}

func (r *Reconciler) discard(key domain.EventKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.deltas, key)
}

var _ domain.ReconciliationService = (*Reconciler)(nil)
var _ CountAdjuster = (*Reconciler)(nil)
