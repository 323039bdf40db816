package domain

import "context"

// AttendanceSet is a user's set of attended events, keyed by the composite
// (domain, eventID) pair. Equal numeric IDs across the two domains are
// distinct members.
type AttendanceSet map[EventKey]struct{}

// Contains reports whether the set holds the given key.
func (s AttendanceSet) Contains(key EventKey) bool {
	_, ok := s[key]
	return ok
}

// Add inserts the key into the set.
func (s AttendanceSet) Add(key EventKey) {
	s[key] = struct{}{}
}

// Remove deletes the key from the set.
func (s AttendanceSet) Remove(key EventKey) {
	delete(s, key)
}

// Keys returns the set's members in unspecified order.
func (s AttendanceSet) Keys() []EventKey {
	keys := make([]EventKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// MutationOutcome reports the result of a join or leave request. Degraded is
// true when every backend route failed and the transition was applied to the
// local session state only; the presentation layer must surface that
// distinctly from a real success. A success reached through a fallback route
// is a true success, not degraded.
// swagger:model MutationOutcome
type MutationOutcome struct {
	Key       EventKey `json:"key"`
	Attending bool     `json:"attending"`
	Degraded  bool     `json:"degraded"`
}

// ParticipationResolver produces the unified attending set for a user across
// both event domains.
type ParticipationResolver interface {
	// AttendingSet returns every (domain, eventID) pair the user attends.
	// One domain failing yields the other domain's results with a nil error
	// (partial success); only both domains failing returns an error.
	AttendingSet(ctx context.Context, userID int64) (AttendanceSet, error)
}

// CatalogService merges both domains' listings into one display-ready
// collection.
type CatalogService interface {
	// Catalog returns all events, university first then club, each tagged
	// with its originating domain. Malformed records are dropped.
	Catalog(ctx context.Context) []CatalogEvent
	// Search returns the merged catalog filtered by a case-insensitive match
	// over title, location, and description.
	Search(ctx context.Context, term string) []CatalogEvent
}

// ReconciliationService executes participation state changes and keeps the
// session's unified view consistent afterward.
type ReconciliationService interface {
	Join(ctx context.Context, userID int64, key EventKey) (MutationOutcome, error)
	Leave(ctx context.Context, userID int64, key EventKey) (MutationOutcome, error)
	// SetParticipantStatus applies a moderator status change to one
	// participant record. It never touches the attending set.
	SetParticipantStatus(ctx context.Context, key EventKey, participantUserID int64, status ParticipantStatus) (*Participant, error)
}

// EventService routes event CRUD and participant listings to the adapter
// owning the event's domain.
type EventService interface {
	GetEvent(ctx context.Context, key EventKey) (*Event, error)
	CreateEvent(ctx context.Context, dom EventDomain, creatorID int64, draft EventDraft) (*Event, error)
	UpdateEvent(ctx context.Context, key EventKey, patch EventPatch, actingUserID int64) (*Event, error)
	DeleteEvent(ctx context.Context, key EventKey, actingUserID int64) error
	ListParticipants(ctx context.Context, key EventKey) ([]Participant, error)
}
