package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/identity"
	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// Result is the uniform outcome of every public session operation.
// Error carries a human-readable message when Success is false.
type Result struct {
	Success bool
	Error   string
}

func ok() Result { return Result{Success: true} }

func fail(msg string) Result { return Result{Success: false, Error: msg} }

// Manager reconciles the in-memory session container, the persistent
// credential store and the remote identity service into a single
// consistent authentication signal.
//
// Ordering guarantee: within one operation the store write (on success)
// happens before the container transition, so a listener reacting to the
// transition can assume persisted data is already durable. Operations are
// not mutually exclusive; the calling layer must not start a second
// operation while IsLoading is true.
type Manager struct {
	state  *Container
	store  *storage.CredentialStore
	api    identity.Client
	logger logging.Logger

	initOnce     sync.Once
	initializing atomic.Bool
}

func NewManager(store *storage.CredentialStore, api identity.Client, logger logging.Logger) *Manager {
	m := &Manager{
		state:  NewContainer(),
		store:  store,
		api:    api,
		logger: logger,
	}
	m.initializing.Store(true)
	return m
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	return m.state.Snapshot()
}

// OnChange registers a listener for session transitions; see
// Container.OnChange for the calling contract.
func (m *Manager) OnChange(fn func(Snapshot)) {
	m.state.OnChange(fn)
}

// Initializing reports whether the one-time rehydration has not finished
// yet. It is distinct from Snapshot().IsLoading and never becomes true
// again once false.
func (m *Manager) Initializing() bool {
	return m.initializing.Load()
}

// Initialize rehydrates the session from the credential store. It runs at
// most once; repeated calls are no-ops. It never fails outward: any store
// read failure is logged and treated as "no session found". Token and user
// are read concurrently. The refresh token is synthesized empty and the
// expiry as "now", matching what login persists.
func (m *Manager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		defer m.initializing.Store(false)

		var (
			wg    sync.WaitGroup
			token string
			user  *models.User
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			t, err := m.store.AuthToken(ctx)
			if err != nil {
				m.logger.Warn(ctx, "failed to read stored token", "error", err)
				return
			}
			token = t
		}()
		go func() {
			defer wg.Done()
			u, err := m.store.UserData(ctx)
			if err != nil {
				m.logger.Warn(ctx, "failed to read stored user", "error", err)
				return
			}
			user = u
		}()
		wg.Wait()

		if token == "" || user == nil {
			return
		}

		m.state.LoginSuccess(models.AuthPayload{
			User:         *user,
			Token:        token,
			RefreshToken: "",
			ExpiresAt:    time.Now(),
		})
	})
}

// Login authenticates against the identity service and, on success,
// persists the returned payload before installing it in the container.
// A store write failure fails the whole operation: the session stays
// unauthenticated rather than authenticated-but-not-persisted.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials) Result {
	if err := creds.Validate(); err != nil {
		return fail(err.Error())
	}

	m.state.SetLoading(true)
	m.state.ClearError()
	defer m.state.SetLoading(false)

	payload, err := m.api.Login(ctx, creds)
	if err != nil {
		m.state.LoginFailure(err.Error())
		return fail(err.Error())
	}

	if err := m.store.SaveAuthData(ctx, payload); err != nil {
		m.logger.Error(ctx, "failed to persist auth data", "error", err)
		m.state.LoginFailure(err.Error())
		return fail(err.Error())
	}

	m.state.LoginSuccess(payload)
	return ok()
}

// Register creates an account and logs the new user in; same persistence
// and failure discipline as Login.
func (m *Manager) Register(ctx context.Context, data models.RegisterData) Result {
	if err := data.Validate(); err != nil {
		return fail(err.Error())
	}

	m.state.SetLoading(true)
	m.state.ClearError()
	defer m.state.SetLoading(false)

	payload, err := m.api.Register(ctx, data)
	if err != nil {
		m.state.LoginFailure(err.Error())
		return fail(err.Error())
	}

	if err := m.store.SaveAuthData(ctx, payload); err != nil {
		m.logger.Error(ctx, "failed to persist auth data", "error", err)
		m.state.LoginFailure(err.Error())
		return fail(err.Error())
	}

	m.state.LoginSuccess(payload)
	return ok()
}

// UpdateProfile applies a profile patch under the active token. Without a
// token it fails fast, leaving loading and error state untouched. The
// token is not rotated by this path: on success the session is
// re-assembled from the existing token plus the updated user.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.ProfilePatch) Result {
	token := m.state.Snapshot().Token
	if token == "" {
		return fail("No authentication token")
	}

	m.state.SetLoading(true)
	m.state.ClearError()
	defer m.state.SetLoading(false)

	user, err := m.api.UpdateProfile(ctx, token, patch)
	if err != nil {
		m.state.LoginFailure(err.Error())
		return fail(err.Error())
	}

	if err := m.store.UpdateUserData(ctx, user); err != nil {
		m.logger.Error(ctx, "failed to persist user data", "error", err)
		m.state.LoginFailure(err.Error())
		return fail(err.Error())
	}

	m.state.LoginSuccess(models.AuthPayload{
		User:         user,
		Token:        token,
		RefreshToken: "",
		ExpiresAt:    time.Now(),
	})
	return ok()
}

// FetchProfile retrieves the fresh profile from the identity service and,
// on success, replaces the locally known user record (store first, then
// the UpdateUser transition). The token and authentication status are
// untouched; loading and error state are not involved.
func (m *Manager) FetchProfile(ctx context.Context) (models.User, error) {
	token := m.state.Snapshot().Token
	if token == "" {
		return models.User{}, &identity.ServiceError{Message: "No authentication token"}
	}

	user, err := m.api.Profile(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	if err := m.store.UpdateUserData(ctx, user); err != nil {
		m.logger.Warn(ctx, "failed to persist fetched profile", "error", err)
	} else {
		m.state.UpdateUser(user)
	}

	return user, nil
}

// Logout terminates the session. The remote call is best-effort: its
// failure is logged and swallowed. The local store clear and the container
// reset always run, so logout always succeeds from the user's point of
// view; a failed local clear is still reported to the caller.
func (m *Manager) Logout(ctx context.Context) error {
	token := m.state.Snapshot().Token

	if token != "" {
		if err := m.api.Logout(ctx, token); err != nil {
			m.logger.Warn(ctx, "remote logout failed", "error", err)
		}
	}

	err := m.store.ClearAuthData(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to clear auth data", "error", err)
	}

	m.state.Logout()
	return err
}

// RefreshToken reports whether the session still holds a usable token.
// Without a token it returns false immediately. With one it currently
// reports success without contacting the service; server-side validation
// is not implemented yet. If invalidity were detected here, the session
// would be logged out before reporting failure, so the container never
// retains a token believed invalid.
func (m *Manager) RefreshToken(ctx context.Context) bool {
	token := m.state.Snapshot().Token
	return token != ""
}

// ClearAuthError clears the error field of the session.
func (m *Manager) ClearAuthError() {
	m.state.ClearError()
}
