// Package services contains server-side business logic. This file implements
// AuthService, which verifies the admin credentials and mints session JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fahmiks/portfolio-api/internal/common"
	"github.com/fahmiks/portfolio-api/internal/server/auth"
	"github.com/fahmiks/portfolio-api/internal/server/config"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// AuthService handles credential verification and session token issuance.
type AuthService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	jwtSecret           []byte
	accessTokenValidity time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                  db,
		repomanager:         m,
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
	}
}

// Login verifies the email/password pair and returns a signed access token
// with the matching user. An unknown email and a wrong password both collapse
// into common.ErrorUnauthorized so the response never reveals which part
// failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// VerifyToken checks a session token and returns the subject id.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	return auth.GetUserIDFromToken(tokenString, s.jwtSecret)
}

// TokenValidity reports the configured session lifetime, used by the HTTP
// layer for the cookie max-age.
func (s *AuthService) TokenValidity() time.Duration {
	return s.accessTokenValidity
}
