package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
	"raccoon/internal/repository"
)

// RoleService manages the role reference data.
type RoleService interface {
	CreateRole(ctx context.Context, name string) (*model.Role, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	// EnsureDefaultRoles creates ROLE_USER and ROLE_ADMIN if absent.
	EnsureDefaultRoles(ctx context.Context) error
}

type roleService struct {
	roles repository.RoleRepository
}

// NewRoleService creates a new role service.
func NewRoleService(roles repository.RoleRepository) RoleService {
	return &roleService{roles: roles}
}

func (s *roleService) CreateRole(ctx context.Context, name string) (*model.Role, error) {
	if _, err := s.roles.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrRoleAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check role: %w", err)
	}

	role := &model.Role{Name: name}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roles.List(ctx)
}

func (s *roleService) EnsureDefaultRoles(ctx context.Context) error {
	for _, name := range []string{model.RoleUser, model.RoleAdmin} {
		_, err := s.roles.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check role %q: %w", name, err)
		}
		if err := s.roles.Create(ctx, &model.Role{Name: name}); err != nil {
			return fmt.Errorf("create role %q: %w", name, err)
		}
		log.Printf("role created: %s", name)
	}
	return nil
}
