// Package services contains the server-side business logic. This file
// implements AuthService: account registration, login, and session token
// verification. The service keeps no mutable state of its own, so any number
// of requests may run concurrently; the store closes the register race with
// its unique index on email.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrov/authms/internal/common"
	"github.com/dpetrov/authms/internal/server/auth"
	"github.com/dpetrov/authms/internal/server/config"
	"github.com/dpetrov/authms/internal/server/models"
	"github.com/dpetrov/authms/internal/server/password"
	"github.com/dpetrov/authms/internal/server/repositories/users"
)

// AuthResult is the common success payload: the account's public view plus a
// signed session token.
type AuthResult struct {
	User  models.PublicUser
	Token string
}

// AuthService provides the three credential operations:
//   - Register: create an account and issue a first token
//   - Login: verify credentials and issue a token
//   - VerifyToken: validate a token and (by default) renew it
type AuthService struct {
	repo          users.Repository
	hasher        *password.Hasher
	jwtSecret     []byte
	tokenTTL      time.Duration
	renewOnVerify bool
}

// NewAuthService constructs an AuthService from its collaborators and config.
func NewAuthService(repo users.Repository, hasher *password.Hasher, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenTTL:      cfg.TokenTTL,
		renewOnVerify: cfg.RenewOnVerify,
	}
}

// normalizeEmail fixes the email case policy: addresses are compared and
// stored lower-cased, so "Ana@X.com" and "ana@x.com" are the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func claimsOf(u *models.User) auth.UserClaims {
	return auth.UserClaims{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// Register creates a new account and returns it with a freshly issued token.
// An existing account with the same email yields common.ErrDuplicateAccount,
// whether it is caught by the pre-check or by the store's unique constraint
// when two registrations race.
func (s *AuthService) Register(ctx context.Context, name, email, plaintext string) (*AuthResult, error) {
	email = normalizeEmail(email)

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, common.ErrInternal
	}

	user, err := s.repo.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	// The token is signed over the record that was just created, not over
	// the (empty) lookup result above.
	token, err := auth.IssueToken(claimsOf(user), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{User: user.Public(), Token: token}, nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password both yield common.ErrInvalidCredentials, so the response
// never reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(claimsOf(user), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{User: user.Public(), Token: token}, nil
}

// VerifyToken validates a session token and returns the identity it carries.
// With RenewOnVerify on, a fresh token with a new issued-at/expiry is issued
// over the same claims (sliding sessions); otherwise the presented token is
// returned unchanged.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*AuthResult, error) {
	claims, err := auth.VerifyToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	out := token
	if s.renewOnVerify {
		out, err = auth.IssueToken(claims, s.jwtSecret, s.tokenTTL)
		if err != nil {
			return nil, common.ErrInternal
		}
	}

	return &AuthResult{
		User: models.PublicUser{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
		},
		Token: out,
	}, nil
}
