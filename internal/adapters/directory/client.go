package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/Najehsaidani/We-Connect-sub000/internal/domain"
)

type httpDirectory struct {
	baseURL string
	client  *http.Client

	mu    sync.Mutex
	cache map[int64]*domain.User
}

// NewHTTPDirectory returns a UserDirectory backed by the account service.
// Profiles are immutable for the lifetime of a session, so successful lookups
// are cached in memory.
func NewHTTPDirectory(baseURL string, client *http.Client) domain.UserDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDirectory{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		cache:   make(map[int64]*domain.User),
	}
}

func (d *httpDirectory) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	d.mu.Lock()
	if u, ok := d.cache[userID]; ok {
		d.mu.Unlock()
		return u, nil
	}
	d.mu.Unlock()

	url := fmt.Sprintf("%s/users/%d", d.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user %d: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user directory returned status: %d", resp.StatusCode)
	}

	var payload struct {
		ID        int64  `json:"id"`
		Prenom    string `json:"prenom"`
		FirstName string `json:"firstName"`
		Nom       string `json:"nom"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}

	u := &domain.User{
		ID:        payload.ID,
		FirstName: pick(payload.Prenom, payload.FirstName),
		LastName:  pick(payload.Nom, payload.LastName),
		Email:     payload.Email,
	}
	if u.ID == 0 {
		u.ID = userID
	}

	d.mu.Lock()
	d.cache[userID] = u
	d.mu.Unlock()
	return u, nil
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
