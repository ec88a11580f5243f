// Package session holds the client's authentication session: a state
// container with a fixed set of atomic transitions, and a manager that
// orchestrates the credential store and the identity service around it.
package session

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// Snapshot is a read-only copy of the session at one point in time.
// IsAuthenticated is true only while both User and Token are present.
// A zero ExpiresAt means "absent".
type Snapshot struct {
	User            *models.User
	Token           string
	RefreshToken    string
	ExpiresAt       time.Time
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Container is the single authoritative in-memory representation of the
// session. It is mutated only through the transition methods below; each
// transition is applied atomically and preserves the invariant
// IsAuthenticated => (User != nil && Token != ""). The container performs
// no I/O.
type Container struct {
	mu        sync.Mutex
	s         Snapshot
	listeners []func(Snapshot)
}

func NewContainer() *Container {
	return &Container{}
}

// Snapshot returns a copy of the current session state. The embedded user
// record is copied so callers cannot mutate shared state.
func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

// OnChange registers a listener invoked after every transition with a
// snapshot of the resulting state. Listeners run synchronously on the
// goroutine that applied the transition and must not call back into the
// container's transition methods.
func (c *Container) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Container) copyLocked() Snapshot {
	s := c.s
	if c.s.User != nil {
		u := *c.s.User
		s.User = &u
	}
	return s
}

// apply runs the mutation under the lock, then notifies listeners with a
// copy of the resulting state outside of it.
func (c *Container) apply(mutate func(*Snapshot)) {
	c.mu.Lock()
	mutate(&c.s)
	snap := c.copyLocked()
	listeners := c.listeners
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// SetLoading sets the loading flag; no other field changes.
func (c *Container) SetLoading(v bool) {
	c.apply(func(s *Snapshot) {
		s.IsLoading = v
	})
}

// LoginSuccess installs the authenticated session from an auth payload.
func (c *Container) LoginSuccess(p models.AuthPayload) {
	c.apply(func(s *Snapshot) {
		u := p.User
		s.User = &u
		s.Token = p.Token
		s.RefreshToken = p.RefreshToken
		s.ExpiresAt = p.ExpiresAt
		s.IsAuthenticated = true
		s.IsLoading = false
		s.Err = ""
	})
}

// LoginFailure clears the identity and records the error message.
func (c *Container) LoginFailure(msg string) {
	c.apply(func(s *Snapshot) {
		s.User = nil
		s.Token = ""
		s.RefreshToken = ""
		s.ExpiresAt = time.Time{}
		s.IsAuthenticated = false
		s.IsLoading = false
		s.Err = msg
	})
}

// Logout resets every field to its zero value.
func (c *Container) Logout() {
	c.apply(func(s *Snapshot) {
		*s = Snapshot{}
	})
}

// UpdateUser replaces the user record only; token and authentication
// status are untouched.
func (c *Container) UpdateUser(u models.User) {
	c.apply(func(s *Snapshot) {
		s.User = &u
	})
}

// ClearError clears the error message only.
func (c *Container) ClearError() {
	c.apply(func(s *Snapshot) {
		s.Err = ""
	})
}
