// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/dbx"
	"github.com/talentumplus/talentum/internal/server/auth"
	"github.com/talentumplus/talentum/internal/server/config"
	"github.com/talentumplus/talentum/internal/server/models"
	"github.com/talentumplus/talentum/internal/server/repositories/repomanager"
)

// AuthResult bundles a freshly minted access token with the account it
// belongs to.
type AuthResult struct {
	AccessToken string
	User        *models.User
}

// UserService provides authentication-related operations:
// - Register: create accounts and mint a first token
// - Login: verify credentials and mint tokens
// - Me: resolve the account behind a verified token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// Register creates a new account. Only candidato and empresa roles can be
// self-registered; admin accounts are provisioned out of band. Candidato
// accounts get an empty profile row in the same transaction.
func (s *UserService) Register(ctx context.Context, email, password, nombre, rol string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || nombre == "" {
		return nil, common.ErrorValidation
	}
	if !models.ValidRegistrationRole(rol) {
		return nil, common.ErrorInvalidRole
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: email, PasswordHash: hash, Nombre: nombre, Rol: rol}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		if rol == models.RoleCandidato {
			profile := &models.Profile{Email: email}
			if _, err := s.repomanager.Profiles(tx).Upsert(ctx, profile); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return s.issueToken(user)
}

// Login verifies the credentials and, on success, returns a new token.
// Unknown accounts and bad passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return s.issueToken(user)
}

// Me returns the account for an already-verified identity.
func (s *UserService) Me(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

func (s *UserService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.Email, user.Rol, []byte(s.config.SecretKey), s.config.TokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
