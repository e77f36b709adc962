package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"cookenu/internal/common"
	"cookenu/internal/dbx"
	"cookenu/internal/server/config"
	"cookenu/internal/server/models"
	recipesrepo "cookenu/internal/server/repositories/recipes"
	usersrepo "cookenu/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
}

// fakeUsersRepo is an in-memory users.Repository keyed by id and email.
// The calls slice records method invocations for ordering assertions.
type fakeUsersRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
	calls   *[]string

	createErr error
	deleteErr error
	listOut   []*models.User
	searchOut []*models.User
}

func newFakeUsersRepo(calls *[]string, users ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{
		byID:    map[string]*models.User{},
		byEmail: map[string]*models.User{},
		calls:   calls,
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsersRepo) record(call string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, call)
	}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	f.record("users.Create")
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.record("users.Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
	return nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	return f.listOut, nil
}

func (f *fakeUsersRepo) Search(ctx context.Context, term string) ([]*models.User, error) {
	f.record("users.Search")
	return f.searchOut, nil
}

// fakeRecipesRepo is an in-memory recipes.Repository.
type fakeRecipesRepo struct {
	byID  map[string]*models.Recipe
	calls *[]string

	createErr          error
	updateErr          error
	deleteErr          error
	deleteByCreatorErr error
	listOut            []*models.Recipe
	searchOut          []*models.Recipe
}

func newFakeRecipesRepo(calls *[]string, recipes ...*models.Recipe) *fakeRecipesRepo {
	f := &fakeRecipesRepo{byID: map[string]*models.Recipe{}, calls: calls}
	for _, r := range recipes {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRecipesRepo) record(call string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, call)
	}
}

func (f *fakeRecipesRepo) Create(ctx context.Context, r *models.Recipe) error {
	f.record("recipes.Create")
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRecipesRepo) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRecipesRepo) Update(ctx context.Context, r *models.Recipe) error {
	f.record("recipes.Update")
	if f.updateErr != nil {
		return f.updateErr
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRecipesRepo) Delete(ctx context.Context, id string) error {
	f.record("recipes.Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRecipesRepo) DeleteByCreator(ctx context.Context, creatorID string) error {
	f.record("recipes.DeleteByCreator")
	if f.deleteByCreatorErr != nil {
		return f.deleteByCreatorErr
	}
	for id, r := range f.byID {
		if r.CreatorID == creatorID {
			delete(f.byID, id)
		}
	}
	return nil
}

func (f *fakeRecipesRepo) ListByCreator(ctx context.Context, creatorID string) ([]*models.Recipe, error) {
	var out []*models.Recipe
	for _, r := range f.byID {
		if r.CreatorID == creatorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipesRepo) List(ctx context.Context) ([]*models.Recipe, error) {
	return f.listOut, nil
}

func (f *fakeRecipesRepo) Search(ctx context.Context, term string) ([]*models.Recipe, error) {
	f.record("recipes.Search")
	return f.searchOut, nil
}

// fakeRepoManager hands out the same fakes regardless of the DB handle, so
// transactional and plain calls hit the same in-memory state.
type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRecipesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }

func (m *fakeRepoManager) Recipes(db dbx.DBTX) recipesrepo.Repository { return m.r }
