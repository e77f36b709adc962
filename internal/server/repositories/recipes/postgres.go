package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cookenu/internal/common"
	"cookenu/internal/dbx"
	"cookenu/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	query :=
		`INSERT INTO recipes (id, title, description, created_at, updated_at, creator_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Title, recipe.Description, recipe.CreatedAt, recipe.UpdatedAt, recipe.CreatorID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	query :=
		`SELECT id, title, description, created_at, updated_at, creator_id FROM recipes
		 WHERE id = $1
		 `

	recipe := &models.Recipe{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&recipe.ID, &recipe.Title, &recipe.Description, &recipe.CreatedAt, &recipe.UpdatedAt, &recipe.CreatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	query :=
		`UPDATE recipes SET title = $2, description = $3, updated_at = $4
		 WHERE id = $1
		 `

	_, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.Title, recipe.Description, recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM recipes WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteByCreator(ctx context.Context, creatorID string) error {
	query := `DELETE FROM recipes WHERE creator_id = $1`

	if _, err := r.db.ExecContext(ctx, query, creatorID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, creatorID string) ([]*models.Recipe, error) {
	query :=
		`SELECT id, title, description, created_at, updated_at, creator_id FROM recipes
		 WHERE creator_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	query := `SELECT id, title, description, created_at, updated_at, creator_id FROM recipes ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *PostgresRepository) Search(ctx context.Context, term string) ([]*models.Recipe, error) {
	query :=
		`SELECT id, title, description, created_at, updated_at, creator_id FROM recipes
		 WHERE title ILIKE $1 OR description ILIKE $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *PostgresRepository) scanAll(rows *sql.Rows) ([]*models.Recipe, error) {
	var result []*models.Recipe
	for rows.Next() {
		recipe := &models.Recipe{}
		if err := rows.Scan(&recipe.ID, &recipe.Title, &recipe.Description,
			&recipe.CreatedAt, &recipe.UpdatedAt, &recipe.CreatorID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
