// Package identity is the stateless RPC facade over the remote identity
// service. It owns the wire contract (JSON envelopes, bearer headers) and
// the error taxonomy; callers never inspect raw transport failures.
package identity

import (
	"context"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// Client defines the identity service operations consumed by the session
// manager and the CLI.
//
// All methods honor context cancellation/timeouts. Failures are always one
// of two tagged variants:
//   - *ServiceError: the endpoint answered with a well-formed rejection
//     (success=false or a non-2xx status with a decodable envelope); the
//     message is server-authored.
//   - *TransportError: the request never produced a usable envelope
//     (network fault, timeout, malformed body).
type Client interface {
	Login(ctx context.Context, creds models.LoginCredentials) (models.AuthPayload, error)
	Register(ctx context.Context, data models.RegisterData) (models.AuthPayload, error)
	Profile(ctx context.Context, token string) (models.User, error)
	UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (models.User, error)
	Logout(ctx context.Context, token string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// ServiceError is a structured rejection from the identity service.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

// TransportError is a network, timeout or parse fault: no well-formed
// answer was obtained from the service.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string { return e.Message }

func (e *TransportError) Unwrap() error { return e.Err }
