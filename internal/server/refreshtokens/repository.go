// Package refreshtokens manages the server-side lifecycle of refresh
// tokens: issue on login, consume on refresh, revoke on logout.
package refreshtokens

import (
	"context"
	"time"
)

// RefreshToken is an issued opaque refresh token and its metadata.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Repository defines operations for issuing, retrieving, and revoking
// refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks up a refresh token by its opaque token string.
	// Returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*RefreshToken, error)

	// Delete removes a refresh token. Deleting a non-existent token is not
	// an error.
	Delete(ctx context.Context, token string) error

	// DeleteByUser removes every refresh token issued to userID.
	DeleteByUser(ctx context.Context, userID string) error
}
