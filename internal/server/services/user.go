// Package services contains server-side business logic. UserService and
// RecipeService are the guards every mutating request passes through:
// verified identity in, validation, target lookup, policy decision, then
// the mutation against the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cookenu/internal/common"
	"cookenu/internal/dbx"
	"cookenu/internal/server/auth"
	"cookenu/internal/server/config"
	"cookenu/internal/server/models"
	"cookenu/internal/server/repositories/repomanager"
)

// UserService handles signup, login, profile and the admin-only user
// management operations.
type UserService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	codec *auth.TokenCodec
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:    db,
		repos: m,
		codec: auth.NewTokenCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
	}
}

// TokenCodec exposes the codec so the transport layer can share it for
// request authentication.
func (s *UserService) TokenCodec() *auth.TokenCodec {
	return s.codec
}

// Signup validates the input, creates a NORMAL user and returns a fresh
// identity token. A duplicate e-mail yields common.ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, nickname, email, password string) (string, error) {
	if nickname == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: Missing params: nickname, email and/or password", common.ErrorInvalidRequest)
	}
	if len(nickname) < 3 {
		return "", fmt.Errorf("%w: Nickname must have at least 3 characters", common.ErrorInvalidRequest)
	}
	if err := checkCredentialShape(email, password, common.ErrorInvalidRequest); err != nil {
		return "", err
	}

	repo := s.repos.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return "", fmt.Errorf("%w: This e-mail already have an account", common.ErrorAlreadyExists)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Nickname:     nickname,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleNormal,
	}
	if err := repo.Create(ctx, user); err != nil {
		return "", common.ErrorInternal
	}

	token, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Login verifies the credentials and returns an identity token. Unknown
// e-mail and wrong password both map to common.ErrorUnauthorized, with
// distinct messages.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: Missing params: email and/or password", common.ErrorInvalidRequest)
	}
	if err := checkCredentialShape(email, password, common.ErrorInvalidRequest); err != nil {
		return "", err
	}

	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", fmt.Errorf("%w: E-mail doesn't have an account", common.ErrorUnauthorized)
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", fmt.Errorf("%w: Invalid password", common.ErrorUnauthorized)
	}

	token, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Profile returns the caller's own account record.
func (s *UserService) Profile(ctx context.Context, id auth.Identity) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: User not found", common.ErrorNotFound)
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// List returns all users, or those matching the search term over nickname
// and e-mail. Any verified identity may list.
func (s *UserService) List(ctx context.Context, id auth.Identity, term string) ([]*models.User, error) {
	if !auth.CanReadCollection(id) {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repos.Users(s.db)

	var (
		result []*models.User
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

// Delete removes the target user and every recipe they created, in one
// transaction. Lookup runs before the policy so a missing target is always
// 404, never 403. Only admins may delete, and never themselves.
func (s *UserService) Delete(ctx context.Context, caller auth.Identity, targetID string) error {
	if _, err := s.repos.Users(s.db).GetByID(ctx, targetID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: User not found", common.ErrorNotFound)
		}
		return common.ErrorInternal
	}

	if d := auth.CanDeleteUser(caller, targetID); !d.Allowed {
		if caller.UserID == targetID {
			return fmt.Errorf("%w: %s", common.ErrorSelfDelete, d.Reason)
		}
		return fmt.Errorf("%w: %s", common.ErrorForbidden, d.Reason)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Recipes(tx).DeleteByCreator(ctx, targetID); err != nil {
			return err
		}
		return s.repos.Users(tx).Delete(ctx, targetID)
	})
	if err != nil {
		return common.ErrorInternal
	}
	return nil
}

// checkCredentialShape applies the shared e-mail and password checks,
// wrapping violations with the given sentinel.
func checkCredentialShape(email, password string, kind error) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: Password must have at least 6 characters", kind)
	}
	if !validEmail(email) {
		return fmt.Errorf("%w: Insert a valid e-mail", kind)
	}
	return nil
}

// validEmail requires an "@" with a non-empty local part and a dotted,
// non-empty domain. Deliberately loose; there is no sanitization framework.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
