package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cookenu/internal/common"
	"cookenu/internal/server/auth"
	"cookenu/internal/server/models"
	"cookenu/internal/server/repositories/repomanager"
)

const (
	minTitleLen       = 3
	minDescriptionLen = 10
)

// RecipeService guards recipe reads and mutations. Edits and deletes are
// allowed to the creator or to an admin; everyone with a verified identity
// may create and list.
type RecipeService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	now   func() time.Time
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{db: db, repos: m, now: time.Now}
}

// Create validates the fields and stores a recipe owned by the caller.
func (s *RecipeService) Create(ctx context.Context, caller auth.Identity, title, description string) (*models.Recipe, error) {
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: Missing params. Insert a title and a description.", common.ErrorValidation)
	}
	if err := checkRecipeFields(title, description); err != nil {
		return nil, err
	}

	created := s.now()
	recipe := &models.Recipe{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   created,
		UpdatedAt:   created,
		CreatorID:   caller.UserID,
	}

	if err := s.repos.Recipes(s.db).Create(ctx, recipe); err != nil {
		return nil, common.ErrorInternal
	}
	return recipe, nil
}

// Edit updates title and/or description of a recipe. Validation runs before
// the lookup so malformed input never touches the database; the lookup runs
// before the policy so 404 and 403 stay deterministic.
func (s *RecipeService) Edit(ctx context.Context, caller auth.Identity, id, title, description string) (*models.Recipe, error) {
	if title == "" && description == "" {
		return nil, fmt.Errorf("%w: Missing params. Insert a title or a description.", common.ErrorValidation)
	}
	if err := checkRecipeFields(title, description); err != nil {
		return nil, err
	}

	repo := s.repos.Recipes(s.db)

	recipe, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: Recipe not found", common.ErrorNotFound)
		}
		return nil, common.ErrorInternal
	}

	if d := auth.CanMutateOwned(caller, recipe.CreatorID); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", common.ErrorForbidden, d.Reason)
	}

	if title != "" {
		recipe.Title = title
	}
	if description != "" {
		recipe.Description = description
	}
	recipe.UpdatedAt = s.now()

	if err := repo.Update(ctx, recipe); err != nil {
		return nil, common.ErrorInternal
	}
	return recipe, nil
}

// Delete removes a recipe after the ownership check.
func (s *RecipeService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	repo := s.repos.Recipes(s.db)

	recipe, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: Recipe not found", common.ErrorNotFound)
		}
		return common.ErrorInternal
	}

	if d := auth.CanMutateOwned(caller, recipe.CreatorID); !d.Allowed {
		return fmt.Errorf("%w: %s", common.ErrorForbidden, d.Reason)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// List returns all recipes, or those matching the search term over title
// and description.
func (s *RecipeService) List(ctx context.Context, caller auth.Identity, term string) ([]*models.Recipe, error) {
	if !auth.CanReadCollection(caller) {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repos.Recipes(s.db)

	var (
		result []*models.Recipe
		err    error
	)
	if term != "" {
		result, err = repo.Search(ctx, term)
	} else {
		result, err = repo.List(ctx)
	}
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// ListMine returns the caller's own recipes.
func (s *RecipeService) ListMine(ctx context.Context, caller auth.Identity) ([]*models.Recipe, error) {
	result, err := s.repos.Recipes(s.db).ListByCreator(ctx, caller.UserID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// checkRecipeFields enforces minimum lengths on whichever fields are set.
func checkRecipeFields(title, description string) error {
	if title != "" && len(title) < minTitleLen {
		return fmt.Errorf("%w: Title must be at least %d characters", common.ErrorValidation, minTitleLen)
	}
	if description != "" && len(description) < minDescriptionLen {
		return fmt.Errorf("%w: Description must be at least %d characters", common.ErrorValidation, minDescriptionLen)
	}
	return nil
}
