package domain

import "time"

// ParticipantStatus is the backend's participant lifecycle enumeration.
type ParticipantStatus string

const (
	ParticipantConfirmed ParticipantStatus = "CONFIRMED"
	ParticipantPending   ParticipantStatus = "PENDING"
	ParticipantCancelled ParticipantStatus = "CANCELLED"
)

// NormalizeParticipantStatus coerces a raw status string from the backend
// into the accepted enumeration. Unknown values default to PENDING.
func NormalizeParticipantStatus(raw string) ParticipantStatus {
	switch ParticipantStatus(raw) {
	case ParticipantConfirmed, ParticipantPending, ParticipantCancelled:
		return ParticipantStatus(raw)
	default:
		return ParticipantPending
	}
}

// Participant is one registration of a user for an event within a single
// domain. FirstName, LastName, and Email are denormalized display fields: the
// backend sometimes embeds them, otherwise they are filled in from the user
// directory; when that lookup fails too they stay empty.
// swagger:model Participant
type Participant struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	EventID      int64             `json:"event_id"`
	RegisteredAt time.Time         `json:"registered_at"`
	Status       ParticipantStatus `json:"status"`
	FirstName    string            `json:"first_name,omitempty"`
	LastName     string            `json:"last_name,omitempty"`
	Email        string            `json:"email,omitempty"`
}
