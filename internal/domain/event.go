package domain

import (
	"context"
	"fmt"
	"time"
)

// EventDomain identifies which of the two parallel event subsystems a record
// belongs to. The tag is assigned when a record enters the system and never
// changes; it routes every later mutation to the right adapter.
type EventDomain string

const (
	DomainUniversity EventDomain = "university"
	DomainClub       EventDomain = "club"
)

// Valid reports whether d is one of the two known domains.
func (d EventDomain) Valid() bool {
	return d == DomainUniversity || d == DomainClub
}

// EventStatus is the backend's event lifecycle enumeration.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "AVENIR"
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusFinished EventStatus = "TERMINE"
	EventStatusInactive EventStatus = "INACTIVE"
)

// NormalizeEventStatus coerces a raw status string from the backend into the
// accepted enumeration. Unknown or legacy values (the backend historically
// emitted "ACTIF") default to ACTIVE so downstream filtering never sees an
// invalid enumerant.
func NormalizeEventStatus(raw string) EventStatus {
	switch EventStatus(raw) {
	case EventStatusUpcoming, EventStatusActive, EventStatusFinished, EventStatusInactive:
		return EventStatus(raw)
	default:
		return EventStatusActive
	}
}

// Event is one domain's event record as returned by its backend, after status
// normalization but before catalog mapping. ClubID and ClubName are only set
// for club-domain events.
// swagger:model Event
type Event struct {
	ID               int64       `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Venue            string      `json:"venue"`
	StartsAt         time.Time   `json:"starts_at"`
	EndsAt           time.Time   `json:"ends_at"`
	Status           EventStatus `json:"status"`
	CreatorID        int64       `json:"creator_id"`
	ParticipantCount int         `json:"participant_count"`
	Image            string      `json:"image,omitempty"`
	ClubID           int64       `json:"club_id,omitempty"`
	ClubName         string      `json:"club_name,omitempty"`
}

// EventDraft carries the caller-supplied fields for event creation.
type EventDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Image       string    `json:"image,omitempty"`
	ClubID      int64     `json:"club_id,omitempty"`
}

// EventPatch carries a partial update; nil fields are left unchanged.
type EventPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Image       *string    `json:"image,omitempty"`
}

// EventKey is the composite identity of an event across both domains. The two
// domains reuse numeric identifiers freely, so a bare ID is ambiguous; every
// piece of merged state is keyed by this pair.
type EventKey struct {
	Domain  EventDomain `json:"domain"`
	EventID int64       `json:"event_id"`
}

func (k EventKey) String() string {
	return fmt.Sprintf("%s/%d", k.Domain, k.EventID)
}

// CatalogEvent is the display-ready, domain-agnostic projection of an Event.
// Date and Time are pre-formatted for the UI; Upcoming compares the start
// timestamp against the clock at mapping time.
// swagger:model CatalogEvent
type CatalogEvent struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Location       string      `json:"location"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Image          string      `json:"image,omitempty"`
	Organizer      string      `json:"organizer"`
	AttendingCount int         `json:"attending_count"`
	Domain         EventDomain `json:"domain"`
	CreatorID      int64       `json:"creator_id"`
	Upcoming       bool        `json:"upcoming"`
}

// Key returns the composite identity of the catalog entry.
func (e CatalogEvent) Key() EventKey {
	return EventKey{Domain: e.Domain, EventID: e.ID}
}

// EventAdapter is the uniform contract over one event domain's backend
// resource family. Implementations absorb the domain's route layout, field
// names, and status vocabulary so callers never see upstream quirks.
//
// Listing operations (ListEvents, SearchEvents) are fail-soft: on transport
// failure they log and return an empty slice with a nil error, so one
// domain's outage never blanks the other domain's listing. Single-entity
// mutations fail loud after exhausting their fallback routes.
type EventAdapter interface {
	// Domain returns the immutable tag for every record this adapter serves.
	Domain() EventDomain

	ListEvents(ctx context.Context) ([]Event, error)
	SearchEvents(ctx context.Context, term string) ([]Event, error)
	GetEvent(ctx context.Context, eventID int64) (*Event, error)
	CreateEvent(ctx context.Context, creatorID int64, draft EventDraft) (*Event, error)
	UpdateEvent(ctx context.Context, eventID int64, patch EventPatch, actingUserID int64) (*Event, error)
	DeleteEvent(ctx context.Context, eventID int64, actingUserID int64) error

	// ListParticipants returns the event's participants with display fields
	// enriched via the user directory when the backend omits them.
	ListParticipants(ctx context.Context, eventID int64) ([]Participant, error)
	// UserParticipations returns every participation record for the user in
	// this domain, regardless of participant status.
	UserParticipations(ctx context.Context, userID int64) ([]Participant, error)

	Join(ctx context.Context, userID, eventID int64) (*Participant, error)
	Leave(ctx context.Context, userID, eventID int64) error
	SetParticipantStatus(ctx context.Context, userID, eventID int64, status ParticipantStatus) (*Participant, error)
}
