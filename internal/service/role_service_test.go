package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "raccoon/internal/errors"
	"raccoon/internal/model"
)

func TestRoleService_CreateRole(t *testing.T) {
	roles := new(MockRoleRepository)
	roles.On("FindByName", mock.Anything, "ROLE_MODERATOR").Return(nil, gorm.ErrRecordNotFound)
	roles.On("Create", mock.Anything, mock.AnythingOfType("*model.Role")).Return(nil)

	svc := NewRoleService(roles)
	role, err := svc.CreateRole(context.Background(), "ROLE_MODERATOR")

	require.NoError(t, err)
	assert.Equal(t, "ROLE_MODERATOR", role.Name)
}

func TestRoleService_CreateRoleDuplicate(t *testing.T) {
	roles := new(MockRoleRepository)
	roles.On("FindByName", mock.Anything, model.RoleUser).Return(&model.Role{Name: model.RoleUser}, nil)

	svc := NewRoleService(roles)
	_, err := svc.CreateRole(context.Background(), model.RoleUser)

	assert.ErrorIs(t, err, apperrors.ErrRoleAlreadyExists)
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoleService_EnsureDefaultRoles(t *testing.T) {
	t.Run("creates missing roles", func(t *testing.T) {
		roles := new(MockRoleRepository)
		roles.On("FindByName", mock.Anything, model.RoleUser).Return(nil, gorm.ErrRecordNotFound)
		roles.On("FindByName", mock.Anything, model.RoleAdmin).Return(nil, gorm.ErrRecordNotFound)
		roles.On("Create", mock.Anything, mock.AnythingOfType("*model.Role")).Return(nil)

		require.NoError(t, NewRoleService(roles).EnsureDefaultRoles(context.Background()))
		roles.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("idempotent when roles exist", func(t *testing.T) {
		roles := new(MockRoleRepository)
		roles.On("FindByName", mock.Anything, model.RoleUser).Return(&model.Role{Name: model.RoleUser}, nil)
		roles.On("FindByName", mock.Anything, model.RoleAdmin).Return(&model.Role{Name: model.RoleAdmin}, nil)

		require.NoError(t, NewRoleService(roles).EnsureDefaultRoles(context.Background()))
		roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
