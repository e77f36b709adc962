package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"cookenu/internal/logging"
	"cookenu/internal/server/auth"
	"cookenu/internal/server/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUsers and stubRecipes let each test plug in just the behaviour it
// needs; unset funcs panic so a test cannot silently hit the wrong route.
type stubUsers struct {
	signup  func(ctx context.Context, nickname, email, password string) (string, error)
	login   func(ctx context.Context, email, password string) (string, error)
	profile func(ctx context.Context, caller auth.Identity) (*models.User, error)
	list    func(ctx context.Context, caller auth.Identity, term string) ([]*models.User, error)
	delete  func(ctx context.Context, caller auth.Identity, targetID string) error
}

func (s *stubUsers) Signup(ctx context.Context, nickname, email, password string) (string, error) {
	return s.signup(ctx, nickname, email, password)
}

func (s *stubUsers) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

func (s *stubUsers) Profile(ctx context.Context, caller auth.Identity) (*models.User, error) {
	return s.profile(ctx, caller)
}

func (s *stubUsers) List(ctx context.Context, caller auth.Identity, term string) ([]*models.User, error) {
	return s.list(ctx, caller, term)
}

func (s *stubUsers) Delete(ctx context.Context, caller auth.Identity, targetID string) error {
	return s.delete(ctx, caller, targetID)
}

type stubRecipes struct {
	create   func(ctx context.Context, caller auth.Identity, title, description string) (*models.Recipe, error)
	edit     func(ctx context.Context, caller auth.Identity, id, title, description string) (*models.Recipe, error)
	delete   func(ctx context.Context, caller auth.Identity, id string) error
	list     func(ctx context.Context, caller auth.Identity, term string) ([]*models.Recipe, error)
	listMine func(ctx context.Context, caller auth.Identity) ([]*models.Recipe, error)
}

func (s *stubRecipes) Create(ctx context.Context, caller auth.Identity, title, description string) (*models.Recipe, error) {
	return s.create(ctx, caller, title, description)
}

func (s *stubRecipes) Edit(ctx context.Context, caller auth.Identity, id, title, description string) (*models.Recipe, error) {
	return s.edit(ctx, caller, id, title, description)
}

func (s *stubRecipes) Delete(ctx context.Context, caller auth.Identity, id string) error {
	return s.delete(ctx, caller, id)
}

func (s *stubRecipes) List(ctx context.Context, caller auth.Identity, term string) ([]*models.Recipe, error) {
	return s.list(ctx, caller, term)
}

func (s *stubRecipes) ListMine(ctx context.Context, caller auth.Identity) ([]*models.Recipe, error) {
	return s.listMine(ctx, caller)
}

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec([]byte("test-secret"), time.Hour)
}

func newTestServer(users UserService, recipes RecipeService) *Server {
	return NewServer(":0", logging.NewJSON(io.Discard), users, recipes, testCodec())
}

func tokenFor(t *testing.T, s *Server, id auth.Identity) string {
	t.Helper()
	token, err := testCodec().Issue(id.UserID, id.Role)
	require.NoError(t, err)
	return token
}

// doRequest performs an in-memory request against the server's router.
// A non-empty token is sent as a Bearer Authorization header.
func doRequest(t *testing.T, s *Server, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// httptestRequestRawBody sends a request with an arbitrary (possibly
// malformed) body, bypassing JSON marshalling.
func httptestRequestRawBody(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
