package usecase

import (
	"context"
	"testing"
	"time"

	"find-fuel/internal/data/entity"
	"find-fuel/internal/dto/request"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, repo *fakeUserRepo, usuario, email string, role entity.Role) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword("senha123")
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Usuario:      usuario,
		Nome:         "Nome de " + usuario,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func strptr(s string) *string { return &s }

func TestUpdateUser_ForbiddenForNonOwner(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	owner := seedUser(t, repo, "maria", "maria@example.com", entity.RoleUser)
	intruder := seedUser(t, repo, "joao", "joao@example.com", entity.RoleUser)

	_, err := svc.UpdateUser(context.Background(), intruder.ID, intruder.Role, owner.ID.String(),
		&request.UpdateUserRequest{Nome: strptr("Hacked")})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Record unchanged
	stored, _ := repo.FindByID(context.Background(), owner.ID)
	assert.Equal(t, "Nome de maria", stored.Nome)
}

func TestUpdateUser_AdminMayUpdateAnyone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	target := seedUser(t, repo, "maria", "maria@example.com", entity.RoleUser)
	admin := seedUser(t, repo, "root", "root@example.com", entity.RoleAdmin)

	updated, err := svc.UpdateUser(context.Background(), admin.ID, admin.Role, target.ID.String(),
		&request.UpdateUserRequest{Nome: strptr("Maria Souza")})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.Nome)
}

func TestUpdateUser_PartialKeepsOmittedFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	user := seedUser(t, repo, "maria", "maria@example.com", entity.RoleUser)

	updated, err := svc.UpdateUser(context.Background(), user.ID, user.Role, user.ID.String(),
		&request.UpdateUserRequest{Nome: strptr("Maria Souza")})
	require.NoError(t, err)

	assert.Equal(t, "Maria Souza", updated.Nome)
	assert.Equal(t, "maria", updated.Usuario)
	assert.Equal(t, "maria@example.com", updated.Email)

	// Password untouched
	stored, _ := repo.FindByID(context.Background(), user.ID)
	assert.True(t, utils.CheckPasswordHash("senha123", stored.PasswordHash))
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	user := seedUser(t, repo, "maria", "maria@example.com", entity.RoleUser)

	_, err := svc.UpdateUser(context.Background(), user.ID, user.Role, user.ID.String(),
		&request.UpdateUserRequest{Senha: strptr("nova-senha")})
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), user.ID)
	assert.False(t, utils.CheckPasswordHash("senha123", stored.PasswordHash))
	assert.True(t, utils.CheckPasswordHash("nova-senha", stored.PasswordHash))
}

func TestUpdateUser_EmailConflictLeavesRecordUnmodified(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	user := seedUser(t, repo, "maria", "maria@example.com", entity.RoleUser)
	seedUser(t, repo, "joao", "joao@example.com", entity.RoleUser)

	_, err := svc.UpdateUser(context.Background(), user.ID, user.Role, user.ID.String(),
		&request.UpdateUserRequest{Email: strptr("joao@example.com"), Nome: strptr("Changed")})
	assert.True(t, apperrors.IsConflict(err))

	// Nothing applied, not even the non-conflicting field
	stored, _ := repo.FindByID(context.Background(), user.ID)
	assert.Equal(t, "maria@example.com", stored.Email)
	assert.Equal(t, "Nome de maria", stored.Nome)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	admin := seedUser(t, repo, "root", "root@example.com", entity.RoleAdmin)

	_, err := svc.UpdateUser(context.Background(), admin.ID, admin.Role, uuid.NewString(),
		&request.UpdateUserRequest{Nome: strptr("Nobody")})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetAllUsers_Paginates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	seedUser(t, repo, "a", "a@example.com", entity.RoleUser)
	seedUser(t, repo, "b", "b@example.com", entity.RoleUser)
	seedUser(t, repo, "c", "c@example.com", entity.RoleUser)

	page, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	err := svc.DeleteUser(context.Background(), uuid.NewString())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteUser_RemovesRecord(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	user := seedUser(t, repo, "maria", "maria@example.com", entity.RoleUser)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID.String()))

	count, _ := repo.CountAll(context.Background())
	assert.Equal(t, int64(0), count)
}
