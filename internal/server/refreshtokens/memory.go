package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authshell/internal/common"
)

// MemoryRepository keeps issued refresh tokens in a mutex-guarded map.
// Expired tokens are treated as absent on Find.
type MemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]RefreshToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]RefreshToken)}
}

func (r *MemoryRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(validity),
	}
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, token string) (*RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, common.ErrRefreshTokenExpired
	}
	return &rt, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	return nil
}

func (r *MemoryRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token, rt := range r.tokens {
		if rt.UserID == userID {
			delete(r.tokens, token)
		}
	}
	return nil
}
