package users

import (
	"context"

	"github.com/dpetrov/authms/internal/server/models"
)

// Repository is the user record store the auth service runs against.
//
// Create must fail with common.ErrDuplicateAccount when a record with the
// same email already exists; the store's uniqueness constraint is what closes
// the register check-then-create race, so this mapping is mandatory.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
