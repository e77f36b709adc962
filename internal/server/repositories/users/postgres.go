package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (id, nickname, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Nickname, user.Email, user.PasswordHash, string(user.Role))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, nickname, email, password_hash, role FROM users
		 WHERE email = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, nickname, email, password_hash, role FROM users
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, nickname, email, password_hash, role FROM users ORDER BY nickname`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *PostgresRepository) Search(ctx context.Context, term string) ([]*models.User, error) {
	query :=
		`SELECT id, nickname, email, password_hash, role FROM users
		 WHERE nickname ILIKE $1 OR email ILIKE $1
		 ORDER BY nickname
		 `

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var role string
	err := row.Scan(&user.ID, &user.Nickname, &user.Email, &user.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.Role = models.ParseRole(role)
	return user, nil
}

func (r *PostgresRepository) scanAll(rows *sql.Rows) ([]*models.User, error) {
	var result []*models.User
	for rows.Next() {
		user := &models.User{}
		var role string
		if err := rows.Scan(&user.ID, &user.Nickname, &user.Email, &user.PasswordHash, &role); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		user.Role = models.ParseRole(role)
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
