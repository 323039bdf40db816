package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

// Config describes one domain's backend resource family.
type Config struct {
	Domain domain.EventDomain
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string
	// EventsPath is the event collection segment, e.g. "events".
	EventsPath string
	// ParticipantsPath is the participant sub-resource segment, e.g.
	// "participants".
	ParticipantsPath string
}

// Client implements domain.EventAdapter against one backend resource family.
// It owns the route layout, the fallback chains for routes the backend only
// partially implements, and the wire-level normalization.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	directory  domain.UserDirectory
	logger     *slog.Logger
}

// New returns an adapter for the configured domain. directory may be nil, in
// which case participant display fields are never enriched.
func New(cfg Config, httpClient *http.Client, limiter *rate.Limiter, directory domain.UserDirectory, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    limiter,
		directory:  directory,
		logger:     logger.With("domain", cfg.Domain),
	}
}

// NewUniversity returns the adapter for the university-wide event family.
func NewUniversity(baseURL string, httpClient *http.Client, limiter *rate.Limiter, directory domain.UserDirectory, logger *slog.Logger) *Client {
	return New(Config{
		Domain:           domain.DomainUniversity,
		BaseURL:          baseURL,
		EventsPath:       "events",
		ParticipantsPath: "participants",
	}, httpClient, limiter, directory, logger)
}

// NewClub returns the adapter for the club-scoped event family.
func NewClub(baseURL string, httpClient *http.Client, limiter *rate.Limiter, directory domain.UserDirectory, logger *slog.Logger) *Client {
	return New(Config{
		Domain:           domain.DomainClub,
		BaseURL:          baseURL,
		EventsPath:       "club-events",
		ParticipantsPath: "club-participants",
	}, httpClient, limiter, directory, logger)
}

func (c *Client) Domain() domain.EventDomain {
	return c.cfg.Domain
}

// buildURL joins the base URL, a path, and query parameters.
func (c *Client) buildURL(path string, query url.Values) string {
	u := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs one request against the backend, classifying failures into the
// domain error taxonomy. It returns the raw response body on 2xx.
func (c *Client) do(ctx context.Context, method, rawURL string, body any) ([]byte, error) {
	op := method + " " + pathOf(rawURL)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.TransportError{Domain: c.cfg.Domain, Op: op, Err: err}
	}

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = buf
	}

	rq, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}
	rq.Header.Set("Accept", "application/json")

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return nil, &domain.TransportError{Domain: c.cfg.Domain, Op: op, Err: err}
	}
	defer rs.Body.Close()

	data, err := io.ReadAll(rs.Body)
	if err != nil {
		return nil, &domain.TransportError{Domain: c.cfg.Domain, Op: op, Err: err}
	}

	switch {
	case rs.StatusCode >= 200 && rs.StatusCode < 300:
		return data, nil
	case rs.StatusCode == http.StatusConflict:
		return nil, &domain.ConflictError{Op: op, Detail: snippet(data)}
	case transportStatus(rs.StatusCode):
		return nil, &domain.TransportError{Domain: c.cfg.Domain, Op: op, Err: &statusError{code: rs.StatusCode, body: snippet(data)}}
	default:
		return nil, &statusError{code: rs.StatusCode, body: snippet(data)}
	}
}

func pathOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		return u.Path
	}
	return rawURL
}

// fetchEvents GETs an event list route and maps it to domain records,
// dropping (and logging) individually malformed entries.
func (c *Client) fetchEvents(ctx context.Context, rawURL string) ([]domain.Event, error) {
	data, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	raws, err := unwrapList(data)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(raws))
	for _, raw := range raws {
		var p eventPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			c.logger.Warn("dropping undecodable event record", "err", err)
			continue
		}
		ev, err := p.toDomain()
		if err != nil {
			c.logger.Warn("dropping malformed event record", "err", err)
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// decodeEvent maps a single-event response body to a domain record.
func (c *Client) decodeEvent(data []byte) (*domain.Event, error) {
	raw, err := unwrapObject(data)
	if err != nil {
		return nil, err
	}
	var p eventPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	ev, err := p.toDomain()
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListEvents returns the domain's full event listing. Fail-soft: any failure
// is logged and an empty slice returned, so this domain's outage never blanks
// the merged catalog.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	evs, err := c.fetchEvents(ctx, c.buildURL(c.cfg.EventsPath, nil))
	if err != nil {
		c.logger.Warn("event listing unavailable, returning empty", "err", err)
		return []domain.Event{}, nil
	}
	return evs, nil
}

// SearchEvents returns the domain's listing filtered by the backend's search
// route. Fail-soft like ListEvents.
func (c *Client) SearchEvents(ctx context.Context, term string) ([]domain.Event, error) {
	q := url.Values{"search": {term}}
	evs, err := c.fetchEvents(ctx, c.buildURL(c.cfg.EventsPath+"/search", q))
	if err != nil {
		c.logger.Warn("event search unavailable, returning empty", "err", err)
		return []domain.Event{}, nil
	}
	return evs, nil
}

// GetEvent fetches one event. The dedicated route 404s on some deployments,
// so a full-list scan backs it up; an event absent from both is ErrNotFound.
func (c *Client) GetEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	return runAttempts(ctx, []attempt[*domain.Event]{
		{
			name: "get",
			call: func(ctx context.Context) (*domain.Event, error) {
				data, err := c.do(ctx, http.MethodGet, c.buildURL(fmt.Sprintf("%s/%d", c.cfg.EventsPath, eventID), nil), nil)
				if err != nil {
					return nil, err
				}
				return c.decodeEvent(data)
			},
		},
		{
			name: "list-scan",
			call: func(ctx context.Context) (*domain.Event, error) {
				evs, err := c.fetchEvents(ctx, c.buildURL(c.cfg.EventsPath, nil))
				if err != nil {
					return nil, err
				}
				for i := range evs {
					if evs[i].ID == eventID {
						return &evs[i], nil
					}
				}
				return nil, domain.ErrNotFound
			},
		},
	})
}

// CreateEvent creates an event owned by creatorID.
func (c *Client) CreateEvent(ctx context.Context, creatorID int64, draft domain.EventDraft) (*domain.Event, error) {
	q := url.Values{"creatorId": {fmt.Sprint(creatorID)}}
	data, err := c.do(ctx, http.MethodPost, c.buildURL(c.cfg.EventsPath+"/create", q), draftPayload(draft))
	if err != nil {
		return nil, err
	}
	return c.decodeEvent(data)
}

// UpdateEvent applies a partial update on behalf of actingUserID.
func (c *Client) UpdateEvent(ctx context.Context, eventID int64, patch domain.EventPatch, actingUserID int64) (*domain.Event, error) {
	q := url.Values{"creatorId": {fmt.Sprint(actingUserID)}}
	data, err := c.do(ctx, http.MethodPut, c.buildURL(fmt.Sprintf("%s/%d", c.cfg.EventsPath, eventID), q), patchPayload(patch))
	if err != nil {
		return nil, err
	}
	return c.decodeEvent(data)
}

// DeleteEvent removes the event on behalf of actingUserID.
func (c *Client) DeleteEvent(ctx context.Context, eventID int64, actingUserID int64) error {
	q := url.Values{"creatorId": {fmt.Sprint(actingUserID)}}
	_, err := c.do(ctx, http.MethodDelete, c.buildURL(fmt.Sprintf("%s/%d", c.cfg.EventsPath, eventID), q), nil)
	return err
}

var _ domain.EventAdapter = (*Client)(nil)
