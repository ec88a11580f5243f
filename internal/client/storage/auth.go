package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// CredentialStore owns the fixed keys of the underlying Store: the bearer
// token, the serialized user record, and the sibling preference records.
// It performs no policy; degradation of failed reads to "no session" is
// the session manager's decision.
type CredentialStore struct {
	store Store
}

func NewCredentialStore(store Store) *CredentialStore {
	return &CredentialStore{store: store}
}

// SaveAuthData persists the token and the user record atomically. The
// refresh token and expiry are deliberately not persisted; rehydration
// synthesizes them.
func (s *CredentialStore) SaveAuthData(ctx context.Context, payload models.AuthPayload) error {
	userJSON, err := json.Marshal(payload.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.store.SetMany(ctx, map[string][]byte{
		KeyAuthToken: []byte(payload.Token),
		KeyUserData:  userJSON,
	})
}

// AuthToken returns the stored bearer token, or "" when absent.
func (s *CredentialStore) AuthToken(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// UserData returns the stored user record, or nil when absent.
func (s *CredentialStore) UserData(ctx context.Context) (*models.User, error) {
	v, err := s.store.Get(ctx, KeyUserData)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &u, nil
}

// UpdateUserData replaces the stored user record, leaving the token alone.
func (s *CredentialStore) UpdateUserData(ctx context.Context, u models.User) error {
	userJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.store.Set(ctx, KeyUserData, userJSON)
}

// ClearAuthData removes the token and user record atomically. Preference
// records are untouched.
func (s *CredentialStore) ClearAuthData(ctx context.Context) error {
	return s.store.RemoveMany(ctx, []string{KeyAuthToken, KeyUserData})
}

// HasSession reports whether a token is currently stored.
func (s *CredentialStore) HasSession(ctx context.Context) (bool, error) {
	token, err := s.AuthToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (s *CredentialStore) Language(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, KeyLanguage)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *CredentialStore) SetLanguage(ctx context.Context, lang string) error {
	return s.store.Set(ctx, KeyLanguage, []byte(lang))
}

func (s *CredentialStore) Theme(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *CredentialStore) SetTheme(ctx context.Context, theme string) error {
	return s.store.Set(ctx, KeyTheme, []byte(theme))
}

// OnboardingCompleted reports the stored onboarding flag; absent means false.
func (s *CredentialStore) OnboardingCompleted(ctx context.Context) (bool, error) {
	v, err := s.store.Get(ctx, KeyOnboardingCompleted)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, nil
	}
	var completed bool
	if err := json.Unmarshal(v, &completed); err != nil {
		return false, fmt.Errorf("failed to decode onboarding flag: %w", err)
	}
	return completed, nil
}

func (s *CredentialStore) SetOnboardingCompleted(ctx context.Context, completed bool) error {
	v, err := json.Marshal(completed)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, KeyOnboardingCompleted, v)
}
