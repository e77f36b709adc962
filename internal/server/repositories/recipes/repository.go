package recipes

import (
	"context"

	"cookenu/internal/server/models"
)

// Repository is the persistence contract for recipes. Implementations map
// row absence to common.ErrorNotFound. DeleteByCreator exists so the user
// cascade delete can run as a single statement inside a transaction.
type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id string) error
	DeleteByCreator(ctx context.Context, creatorID string) error
	ListByCreator(ctx context.Context, creatorID string) ([]*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	Search(ctx context.Context, term string) ([]*models.Recipe, error)
}
