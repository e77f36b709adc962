// Package httpapi exposes the user and recipe services over HTTP/JSON.
// It owns request authentication (the token middleware) and the single
// error-kind to status-code mapping; everything behind it deals in
// identities and sentinel errors only.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cookenu/internal/logging"
	"cookenu/internal/server/auth"
	"cookenu/internal/server/models"
)

// UserService is the slice of the user service consumed by the handlers.
type UserService interface {
	Signup(ctx context.Context, nickname, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, caller auth.Identity) (*models.User, error)
	List(ctx context.Context, caller auth.Identity, term string) ([]*models.User, error)
	Delete(ctx context.Context, caller auth.Identity, targetID string) error
}

// RecipeService is the slice of the recipe service consumed by the handlers.
type RecipeService interface {
	Create(ctx context.Context, caller auth.Identity, title, description string) (*models.Recipe, error)
	Edit(ctx context.Context, caller auth.Identity, id, title, description string) (*models.Recipe, error)
	Delete(ctx context.Context, caller auth.Identity, id string) error
	List(ctx context.Context, caller auth.Identity, term string) ([]*models.Recipe, error)
	ListMine(ctx context.Context, caller auth.Identity) ([]*models.Recipe, error)
}

type Server struct {
	addr    string
	logger  logging.Logger
	users   UserService
	recipes RecipeService
	codec   *auth.TokenCodec
	engine  *gin.Engine
}

func NewServer(addr string, logger logging.Logger, users UserService, recipes RecipeService, codec *auth.TokenCodec) *Server {
	s := &Server{
		addr:    addr,
		logger:  logger,
		users:   users,
		recipes: recipes,
		codec:   codec,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/user/signup", s.signup)
	r.POST("/user/login", s.login)

	authed := r.Group("", AuthRequired(s.codec))
	{
		authed.GET("/user/all", s.listUsers)
		authed.GET("/user/profile", s.profile)
		authed.DELETE("/user/:id", s.deleteUser)

		authed.GET("/recipe/all", s.listRecipes)
		authed.GET("/recipe/mine", s.myRecipes)
		authed.POST("/recipe", s.createRecipe)
		authed.PUT("/recipe/:id", s.editRecipe)
		authed.DELETE("/recipe/:id", s.deleteRecipe)
	}

	return r
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
