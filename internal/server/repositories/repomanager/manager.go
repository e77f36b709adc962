package repomanager

import (
	"context"
	"database/sql"

	"cookenu/internal/dbx"
	"cookenu/internal/server/repositories/recipes"
	"cookenu/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a specific handle, so a
// service can run the same repository code against *sql.DB or an open
// transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
}
