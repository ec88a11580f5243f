// Package models defines the server-side persistence entities.
package models

import "time"

// User is the server-side account record. PasswordHash is a bcrypt hash;
// the plaintext password never leaves the registration/login handlers.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	Avatar       string
	PhoneNumber  string
	DateOfBirth  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
