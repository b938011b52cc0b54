package auth

import (
	"context"

	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/repository"
)

// Principal is the authorization view of a user: the stored credential
// hash, the granted roles and the account-state flags the credential
// verifier gates on. It is read-only from the auth layer's perspective.
type Principal struct {
	Username      string
	PasswordHash  string
	Roles         []string
	EmailVerified bool
}

// Identity is the public-safe projection attached to a request after
// successful authentication. It never carries the password hash.
type Identity struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the identity carries the named role.
func (i *Identity) HasRole(name string) bool {
	for _, r := range i.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// PrincipalDirectory resolves usernames to authorization principals.
type PrincipalDirectory interface {
	LoadPrincipal(ctx context.Context, username string) (*Principal, error)
	// LoadIdentity returns the public projection for an authenticated user.
	LoadIdentity(ctx context.Context, username string) (*Identity, error)
}

type principalDirectory struct {
	users repository.UserRepository
}

// NewPrincipalDirectory builds a directory backed by the user store.
func NewPrincipalDirectory(users repository.UserRepository) PrincipalDirectory {
	return &principalDirectory{users: users}
}

func (d *principalDirectory) LoadPrincipal(ctx context.Context, username string) (*Principal, error) {
	user, err := d.users.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPrincipalNotFound
		}
		return nil, err
	}
	return &Principal{
		Username:      user.Username,
		PasswordHash:  user.PasswordHash,
		Roles:         user.RoleNames(),
		EmailVerified: user.EmailVerified,
	}, nil
}

func (d *principalDirectory) LoadIdentity(ctx context.Context, username string) (*Identity, error) {
	user, err := d.users.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPrincipalNotFound
		}
		return nil, err
	}
	return &Identity{
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.RoleNames(),
	}, nil
}
