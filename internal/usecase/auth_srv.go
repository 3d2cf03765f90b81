package usecase

import (
	"context"
	"time"

	"find-fuel/internal/data/entity"
	"find-fuel/internal/data/repository"
	"find-fuel/internal/dto/request"
	"find-fuel/internal/dto/response"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/token"
	"find-fuel/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// Handle and email are checked separately, both case-sensitive.
	existing, err := s.userRepo.FindByUsuario(ctx, req.Usuario)
	if err != nil {
		s.log.Error("Failed to check usuario", zap.Error(err), zap.String("usuario", req.Usuario))
		return nil, apperrors.WrapInternal(err, "check usuario")
	}
	if existing != nil {
		return nil, apperrors.NewConflict("usuario")
	}

	existing, err = s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperrors.WrapInternal(err, "check email")
	}
	if existing != nil {
		return nil, apperrors.NewConflict("email")
	}

	hashedPassword, err := utils.HashPassword(req.Senha)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.WrapInternal(err, "hash password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Usuario:      req.Usuario,
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("usuario", req.Usuario))
		return nil, apperrors.WrapInternal(err, "create user")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("usuario", user.Usuario))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error) {
	// The username field takes the login handle or the email.
	user, err := s.userRepo.FindByUsuario(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user by usuario", zap.Error(err), zap.String("identifier", req.Username))
		return nil, apperrors.WrapInternal(err, "find user")
	}

	if user == nil {
		user, err = s.userRepo.FindByEmail(ctx, req.Username)
		if err != nil {
			s.log.Error("Failed to find user by email", zap.Error(err), zap.String("identifier", req.Username))
			return nil, apperrors.WrapInternal(err, "find user")
		}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", req.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("usuario", user.Usuario))

	return pair, nil
}

// Refresh validates a refresh token and mints a fresh token pair for its
// subject. Access tokens presented here fail with a wrong-type error.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByUsuario(ctx, claims.Subject)
	if err != nil {
		s.log.Error("Failed to find refresh subject", zap.Error(err), zap.String("sub", claims.Subject))
		return nil, apperrors.WrapInternal(err, "find refresh subject")
	}
	if user == nil {
		s.log.Warn("Refresh subject has no user record", zap.String("sub", claims.Subject))
		return nil, apperrors.ErrUnknownSubject
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("Token pair refreshed", zap.String("user_id", user.ID.String()))

	return pair, nil
}

func (s *authService) issueTokenPair(user *entity.User) (*response.TokenPairResponse, error) {
	access, expiresAt, err := s.tokens.IssueAccess(user.Usuario, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	refresh, _, err := s.tokens.IssueRefresh(user.Usuario)
	if err != nil {
		s.log.Error("Failed to sign refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	return response.TokenPairToResponse(access, refresh, expiresAt, user), nil
}
