// Package models defines the client-side data model: the user identity
// record, the auth payload returned by the identity service, and the
// request shapes for login, registration and profile updates.
package models

import (
	"errors"
	"time"
)

// User is the identity record as served by the identity service.
// It is immutable on the client except via the profile-update flow.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Avatar      string    `json:"avatar,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthPayload is the successful outcome of login/register:
// the user record plus the bearer token and its companions.
type AuthPayload struct {
	User         User      `json:"user"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// LoginCredentials is the request body for POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that the credentials are well-formed enough to send.
// Deeper validation (email format, password policy) belongs to the server.
func (c LoginCredentials) Validate() error {
	if c.Email == "" || c.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

// RegisterData is the request body for POST /auth/register.
type RegisterData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate checks that the registration data is well-formed enough to send.
func (d RegisterData) Validate() error {
	if d.Email == "" || d.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

// ProfilePatch is the request body for PUT /user/profile. Empty fields
// are omitted from the request and left unchanged by the server.
type ProfilePatch struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}
