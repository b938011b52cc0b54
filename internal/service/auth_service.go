package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"raccoon/internal/auth"
	apperrors "raccoon/internal/errors"
)

// AuthService verifies username/password credentials and issues bearer tokens.
type AuthService interface {
	// Authenticate returns a signed token and the public identity of the
	// user on success. Wrong username and wrong password are not
	// distinguishable to the caller; the email-verification check runs
	// only after the credentials are confirmed.
	Authenticate(ctx context.Context, username, password string) (string, *auth.Identity, error)
}

type authService struct {
	directory auth.PrincipalDirectory
	codec     *auth.TokenCodec
	now       func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(directory auth.PrincipalDirectory, codec *auth.TokenCodec) AuthService {
	return &authService{
		directory: directory,
		codec:     codec,
		now:       time.Now,
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (string, *auth.Identity, error) {
	principal, err := s.directory.LoadPrincipal(ctx, username)
	if err != nil {
		// Missing user reports the same error as a wrong password.
		if err == apperrors.ErrPrincipalNotFound {
			return "", nil, apperrors.ErrBadCredentials
		}
		return "", nil, fmt.Errorf("load principal: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrBadCredentials
	}

	// Unverified accounts are rejected only after the credentials matched,
	// so the check cannot be used to probe for account state.
	if !principal.EmailVerified {
		return "", nil, apperrors.ErrEmailNotVerified
	}

	identity, err := s.directory.LoadIdentity(ctx, username)
	if err != nil {
		// The principal existed a moment ago; a miss here is an internal
		// inconsistency, not an authentication failure.
		return "", nil, fmt.Errorf("load identity for %q: %w", username, err)
	}

	token, err := s.codec.Issue(principal.Username, s.now())
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, identity, nil
}
