package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// The two backends disagree on field names (older routes kept French names,
// newer ones translated them) and occasionally serialize numbers as strings.
// The wire types below accept every observed variant and collapse them into
// the domain records.

// flexID decodes an identifier that may arrive as a JSON number or a numeric
// string. Null, missing, and non-numeric values decode to zero and are
// discarded by validation.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = flexID(n)
	return nil
}

// flexTime decodes the assortment of timestamp layouts the backends emit.
type flexTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

const wireTimeLayout = "2006-01-02T15:04:05"

// eventPayload is the upstream event shape, accepting both naming variants.
type eventPayload struct {
	ID               flexID   `json:"id"`
	Titre            string   `json:"titre"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Lieu             string   `json:"lieu"`
	Location         string   `json:"location"`
	DateDebut        flexTime `json:"dateDebut"`
	DateFin          flexTime `json:"dateFin"`
	Status           string   `json:"status"`
	CreateurID       flexID   `json:"createurId"`
	CreatorID        flexID   `json:"creatorId"`
	NbParticipants   int      `json:"nbParticipants"`
	ParticipantCount int      `json:"participantCount"`
	Image            string   `json:"image"`
	ClubID           flexID   `json:"clubId"`
	NomClub          string   `json:"nomClub"`
	ClubName         string   `json:"clubName"`
}

func (p eventPayload) toDomain() (domain.Event, error) {
	if p.ID == 0 {
		return domain.Event{}, &domain.ValidationError{Field: "id", Reason: "missing"}
	}
	title := firstNonEmpty(p.Titre, p.Title)
	if title == "" {
		return domain.Event{}, &domain.ValidationError{Field: "title", Reason: "missing"}
	}
	count := p.NbParticipants
	if count == 0 {
		count = p.ParticipantCount
	}
	return domain.Event{
		ID:               int64(p.ID),
		Title:            title,
		Description:      p.Description,
		Venue:            firstNonEmpty(p.Lieu, p.Location),
		StartsAt:         p.DateDebut.Time,
		EndsAt:           p.DateFin.Time,
		Status:           domain.NormalizeEventStatus(p.Status),
		CreatorID:        int64(max64(p.CreateurID, p.CreatorID)),
		ParticipantCount: count,
		Image:            p.Image,
		ClubID:           int64(p.ClubID),
		ClubName:         firstNonEmpty(p.NomClub, p.ClubName),
	}, nil
}

// participantPayload is the upstream participant shape. The university routes
// key the parent event as "evenementId", the club routes as "eventId".
type participantPayload struct {
	ID              flexID   `json:"id"`
	UserID          flexID   `json:"userId"`
	EventID         flexID   `json:"eventId"`
	EvenementID     flexID   `json:"evenementId"`
	DateInscription flexTime `json:"dateInscription"`
	RegisteredAt    flexTime `json:"registeredAt"`
	Status          string   `json:"status"`
	Prenom          string   `json:"prenom"`
	FirstName       string   `json:"firstName"`
	Nom             string   `json:"nom"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
}

func (p participantPayload) toDomain() (domain.Participant, error) {
	if p.UserID == 0 {
		return domain.Participant{}, &domain.ValidationError{Field: "userId", Reason: "missing"}
	}
	eventID := max64(p.EventID, p.EvenementID)
	if eventID == 0 {
		return domain.Participant{}, &domain.ValidationError{Field: "eventId", Reason: "missing"}
	}
	registered := p.DateInscription.Time
	if registered.IsZero() {
		registered = p.RegisteredAt.Time
	}
	return domain.Participant{
		ID:           int64(p.ID),
		UserID:       int64(p.UserID),
		EventID:      int64(eventID),
		RegisteredAt: registered,
		Status:       domain.NormalizeParticipantStatus(p.Status),
		FirstName:    firstNonEmpty(p.Prenom, p.FirstName),
		LastName:     firstNonEmpty(p.Nom, p.LastName),
		Email:        p.Email,
	}, nil
}

// eventDraftPayload is the creation body in the field names the backends
// accept.
type eventDraftPayload struct {
	Titre       string `json:"titre"`
	Description string `json:"description"`
	Lieu        string `json:"lieu"`
	DateDebut   string `json:"dateDebut"`
	DateFin     string `json:"dateFin"`
	Image       string `json:"image,omitempty"`
	ClubID      int64  `json:"clubId,omitempty"`
}

func draftPayload(d domain.EventDraft) eventDraftPayload {
	return eventDraftPayload{
		Titre:       d.Title,
		Description: d.Description,
		Lieu:        d.Venue,
		DateDebut:   d.StartsAt.Format(wireTimeLayout),
		DateFin:     d.EndsAt.Format(wireTimeLayout),
		Image:       d.Image,
		ClubID:      d.ClubID,
	}
}

// eventPatchPayload is the partial-update body; nil fields are omitted.
type eventPatchPayload struct {
	Titre       *string `json:"titre,omitempty"`
	Description *string `json:"description,omitempty"`
	Lieu        *string `json:"lieu,omitempty"`
	DateDebut   *string `json:"dateDebut,omitempty"`
	DateFin     *string `json:"dateFin,omitempty"`
	Status      *string `json:"status,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func patchPayload(p domain.EventPatch) eventPatchPayload {
	out := eventPatchPayload{
		Titre:       p.Title,
		Description: p.Description,
		Lieu:        p.Venue,
		Status:      p.Status,
		Image:       p.Image,
	}
	if p.StartsAt != nil {
		s := p.StartsAt.Format(wireTimeLayout)
		out.DateDebut = &s
	}
	if p.EndsAt != nil {
		s := p.EndsAt.Format(wireTimeLayout)
		out.DateFin = &s
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func max64(a, b flexID) flexID {
	if a != 0 {
		return a
	}
	return b
}
