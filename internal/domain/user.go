package domain

import "context"

// User is the subset of the account profile the event system needs for
// participant display fields.
// swagger:model User
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// UserDirectory resolves user profiles from the account service. Used to
// enrich participant records when the backend omits the denormalized fields.
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (*User, error)
}

// TokenVerifier verifies a session token and returns the authenticated user
// ID. Token issuance belongs to the platform's auth service; this system only
// checks signatures.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
