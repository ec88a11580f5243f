// Package users implements the account domain of the identity server:
// the repository contract, its in-memory and PostgreSQL implementations,
// and the service with register/login/profile/refresh flows.
package users

import (
	"context"

	"github.com/dmitrijs2005/authshell/internal/server/models"
)

// Repository defines persistence operations for account records.
// Implementations return common.ErrorNotFound for missing records and
// common.ErrorAlreadyExists for duplicate emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
