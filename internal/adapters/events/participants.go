package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// fetchParticipants GETs a participant list route and maps it to domain
// records, dropping (and logging) individually malformed entries.
func (c *Client) fetchParticipants(ctx context.Context, rawURL string) ([]domain.Participant, error) {
	data, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	raws, err := unwrapList(data)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Participant, 0, len(raws))
	for _, raw := range raws {
		var p participantPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			c.logger.Warn("dropping undecodable participant record", "err", err)
			continue
		}
		pt, err := p.toDomain()
		if err != nil {
			c.logger.Warn("dropping malformed participant record", "err", err)
			continue
		}
		out = append(out, pt)
	}
	return out, nil
}

func (c *Client) decodeParticipant(data []byte) (*domain.Participant, error) {
	raw, err := unwrapObject(data)
	if err != nil {
		return nil, err
	}
	var p participantPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode participant: %w", err)
	}
	pt, err := p.toDomain()
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// ListParticipants returns the event's participants. Display fields missing
// from the backend payload are filled in from the user directory; a failed
// lookup leaves that one row's fields empty rather than failing the listing.
func (c *Client) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	ps, err := c.fetchParticipants(ctx, c.buildURL(fmt.Sprintf("%s/%d/participants", c.cfg.EventsPath, eventID), nil))
	if err != nil {
		return nil, err
	}
	c.enrich(ctx, ps)
	return ps, nil
}

// UserParticipations returns the user's participation records in this domain.
// The per-user route is missing on some deployments; scanning the collection
// backs it up.
func (c *Client) UserParticipations(ctx context.Context, userID int64) ([]domain.Participant, error) {
	return runAttempts(ctx, []attempt[[]domain.Participant]{
		{
			name: "user",
			call: func(ctx context.Context) ([]domain.Participant, error) {
				return c.fetchParticipants(ctx, c.buildURL(fmt.Sprintf("%s/user/%d", c.cfg.ParticipantsPath, userID), nil))
			},
		},
		{
			name: "collection-scan",
			call: func(ctx context.Context) ([]domain.Participant, error) {
				all, err := c.fetchParticipants(ctx, c.buildURL(c.cfg.ParticipantsPath, nil))
				if err != nil {
					return nil, err
				}
				mine := make([]domain.Participant, 0, len(all))
				for _, p := range all {
					if p.UserID == userID {
						mine = append(mine, p)
					}
				}
				return mine, nil
			},
		},
	})
}

// Join registers the user for the event. The dedicated join route came and
// went across backend versions; a plain collection POST is the alternate.
func (c *Client) Join(ctx context.Context, userID, eventID int64) (*domain.Participant, error) {
	q := url.Values{
		"userId":  {fmt.Sprint(userID)},
		"eventId": {fmt.Sprint(eventID)},
	}
	return runAttempts(ctx, []attempt[*domain.Participant]{
		{
			name: "join",
			call: func(ctx context.Context) (*domain.Participant, error) {
				data, err := c.do(ctx, http.MethodPost, c.buildURL(c.cfg.ParticipantsPath+"/join", q), nil)
				if err != nil {
					return nil, err
				}
				return c.decodeParticipant(data)
			},
		},
		{
			name: "collection-post",
			call: func(ctx context.Context) (*domain.Participant, error) {
				body := map[string]any{"userId": userID, "eventId": eventID}
				data, err := c.do(ctx, http.MethodPost, c.buildURL(c.cfg.ParticipantsPath, nil), body)
				if err != nil {
					return nil, err
				}
				return c.decodeParticipant(data)
			},
		},
	})
}

// Leave withdraws the user from the event. When the dedicated leave route is
// absent the record is located through the event's participant listing and
// deleted by ID.
func (c *Client) Leave(ctx context.Context, userID, eventID int64) error {
	q := url.Values{
		"userId":  {fmt.Sprint(userID)},
		"eventId": {fmt.Sprint(eventID)},
	}
	_, err := runAttempts(ctx, []attempt[struct{}]{
		{
			name: "leave",
			call: func(ctx context.Context) (struct{}, error) {
				_, err := c.do(ctx, http.MethodDelete, c.buildURL(c.cfg.ParticipantsPath+"/leave", q), nil)
				return struct{}{}, err
			},
		},
		{
			name: "find-delete",
			call: func(ctx context.Context) (struct{}, error) {
				id, err := c.findParticipantID(ctx, userID, eventID)
				if err != nil {
					return struct{}{}, err
				}
				_, err = c.do(ctx, http.MethodDelete, c.buildURL(fmt.Sprintf("%s/%d", c.cfg.ParticipantsPath, id), nil), nil)
				return struct{}{}, err
			},
		},
	})
	return err
}

// SetParticipantStatus applies a moderator status change to the user's
// participation record. The PUT route predates the per-record PATCH; both are
// tried in that order.
func (c *Client) SetParticipantStatus(ctx context.Context, userID, eventID int64, status domain.ParticipantStatus) (*domain.Participant, error) {
	if domain.NormalizeParticipantStatus(string(status)) != status {
		return nil, fmt.Errorf("%w: participant status %q", domain.ErrInvalidInput, status)
	}
	q := url.Values{
		"userId":  {fmt.Sprint(userID)},
		"eventId": {fmt.Sprint(eventID)},
		"status":  {string(status)},
	}
	return runAttempts(ctx, []attempt[*domain.Participant]{
		{
			name: "status-put",
			call: func(ctx context.Context) (*domain.Participant, error) {
				data, err := c.do(ctx, http.MethodPut, c.buildURL(c.cfg.ParticipantsPath+"/status", q), nil)
				if err != nil {
					return nil, err
				}
				return c.decodeParticipant(data)
			},
		},
		{
			name: "status-patch",
			call: func(ctx context.Context) (*domain.Participant, error) {
				id, err := c.findParticipantID(ctx, userID, eventID)
				if err != nil {
					return nil, err
				}
				body := map[string]any{"status": string(status)}
				data, err := c.do(ctx, http.MethodPatch, c.buildURL(fmt.Sprintf("%s/%d/status", c.cfg.ParticipantsPath, id), nil), body)
				if err != nil {
					return nil, err
				}
				return c.decodeParticipant(data)
			},
		},
	})
}

// findParticipantID resolves the record ID for a (user, event) pair via the
// event's participant listing. Used by the by-ID fallback routes.
func (c *Client) findParticipantID(ctx context.Context, userID, eventID int64) (int64, error) {
	ps, err := c.fetchParticipants(ctx, c.buildURL(fmt.Sprintf("%s/%d/participants", c.cfg.EventsPath, eventID), nil))
	if err != nil {
		return 0, err
	}
	for _, p := range ps {
		if p.UserID == userID {
			return p.ID, nil
		}
	}
	return 0, domain.ErrNotFound
}

// enrich fills missing participant display fields from the user directory.
// Lookup failures degrade the single row, never the listing.
func (c *Client) enrich(ctx context.Context, ps []domain.Participant) {
	if c.directory == nil {
		return
	}
	for i := range ps {
		if ps[i].FirstName != "" || ps[i].LastName != "" || ps[i].Email != "" {
			continue
		}
		u, err := c.directory.GetUser(ctx, ps[i].UserID)
		if err != nil {
			c.logger.Debug("participant profile lookup failed", "user_id", ps[i].UserID, "err", err)
			continue
		}
		ps[i].FirstName = u.FirstName
		ps[i].LastName = u.LastName
		ps[i].Email = u.Email
	}
}
