package usecase

import (
	"context"
	"time"

	"find-fuel/internal/data/entity"
	"find-fuel/internal/data/repository"
	"find-fuel/internal/dto/request"
	"find-fuel/internal/dto/response"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUser(ctx context.Context, actorID uuid.UUID, actorRole entity.Role, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperrors.WrapInternal(err, "get profile")
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.NewNotFound("user")
	}

	return us.GetProfile(ctx, id)
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, apperrors.WrapInternal(err, "get users")
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, apperrors.WrapInternal(err, "count users")
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

// UpdateUser applies a partial profile update. Only the owning user or an
// admin may touch a record; handle and email changes are re-checked for
// uniqueness against all other users, and the whole update is atomic.
func (us *userService) UpdateUser(ctx context.Context, actorID uuid.UUID, actorRole entity.Role, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.NewNotFound("user")
	}

	if actorID != id && actorRole != entity.RoleAdmin {
		us.log.Warn("Update denied: not self or admin",
			zap.String("actor_id", actorID.String()),
			zap.String("target_id", id.String()),
		)
		return nil, apperrors.ErrForbidden
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user for update", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.WrapInternal(err, "find user")
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user")
	}

	// Only supplied fields change; omitted ones keep their prior values.
	if req.Usuario != nil {
		user.Usuario = *req.Usuario
	}
	if req.Nome != nil {
		user.Nome = *req.Nome
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Senha != nil {
		hashed, err := utils.HashPassword(*req.Senha)
		if err != nil {
			us.log.Error("Failed to hash new password", zap.Error(err), zap.String("user_id", userID))
			return nil, apperrors.WrapInternal(err, "hash password")
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now()

	if err := us.userRepo.UpdateProfile(ctx, user); err != nil {
		if apperrors.IsConflict(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.WrapInternal(err, "update user")
	}

	us.log.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.String("actor_id", actorID.String()),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.NewNotFound("user")
	}

	if err := us.userRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("id", userID))
		return apperrors.WrapInternal(err, "delete user")
	}

	return nil
}
