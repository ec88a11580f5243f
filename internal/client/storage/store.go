// Package storage implements the client's durable key/value store and the
// typed credential accessors layered on top of it. Values survive process
// restarts; the session manager rehydrates from here at startup.
package storage

import "context"

// Fixed keys for the records the application persists. The auth token is a
// raw string, the user record is serialized JSON; the remaining keys are
// sibling preference records sharing the same store.
const (
	KeyAuthToken           = "auth_token"
	KeyUserData            = "user_data"
	KeyLanguage            = "language"
	KeyTheme               = "theme"
	KeyOnboardingCompleted = "onboarding_completed"
)

// Store is durable string-keyed storage. Get returns nil (without error)
// for a missing key. SetMany and RemoveMany are atomic: either every pair
// is applied or none is.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, pairs map[string][]byte) error
	RemoveMany(ctx context.Context, keys []string) error
	ClearAll(ctx context.Context) error
}
