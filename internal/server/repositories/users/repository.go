package users

import (
	"context"

	"cookenu/internal/server/models"
)

// Repository is the persistence contract for user accounts. Implementations
// map row absence to common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.User, error)
	Search(ctx context.Context, term string) ([]*models.User, error)
}
