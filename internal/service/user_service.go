package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
	"raccoon/internal/repository"
)

const bcryptCost = 10

// ConfirmationMailer delivers email confirmation links. Delivery is
// best-effort from the registration flow's point of view.
type ConfirmationMailer interface {
	SendConfirmation(to, username, token string) error
}

// UserService handles registration and email confirmation.
type UserService interface {
	Register(ctx context.Context, username, email, password string, roleNames []string) (*model.User, error)
	ConfirmEmail(ctx context.Context, token string) error
}

type userService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	mailer ConfirmationMailer
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository, mailer ConfirmationMailer) UserService {
	return &userService{users: users, roles: roles, mailer: mailer}
}

// Register creates a user with a hashed password and an email confirmation
// token, then sends the confirmation email. Registration succeeds even if
// the email cannot be delivered; the failure is logged and the user can be
// re-mailed later.
func (s *userService) Register(ctx context.Context, username, email, password string, roleNames []string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	roles, err := s.resolveRoles(ctx, roleNames)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:          username,
		Email:             email,
		PasswordHash:      string(hashedPassword),
		Roles:             roles,
		ConfirmationToken: uuid.New().String(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.mailer.SendConfirmation(user.Email, user.Username, user.ConfirmationToken); err != nil {
		log.Printf("send confirmation email to %s: %v", user.Email, err)
	}

	return user, nil
}

// resolveRoles maps requested role names to stored roles, defaulting to
// ROLE_USER when none are requested.
func (s *userService) resolveRoles(ctx context.Context, roleNames []string) ([]model.Role, error) {
	if len(roleNames) == 0 {
		roleNames = []string{model.RoleUser}
	}
	roles := make([]model.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.ErrRoleNotFound
			}
			return nil, fmt.Errorf("find role %q: %w", name, err)
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

// ConfirmEmail marks the account behind the token as verified and burns
// the token.
func (s *userService) ConfirmEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByConfirmationToken(ctx, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrInvalidConfirmationToken
		}
		return fmt.Errorf("find by confirmation token: %w", err)
	}

	user.EmailVerified = true
	user.ConfirmationToken = ""
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}
	return nil
}
