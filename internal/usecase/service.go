package usecase

import (
	"find-fuel/internal/data/repository"
	"find-fuel/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
	Fuel FuelService
}

func NewService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, tokens, log),
		User: NewUserService(repo.User, log),
		Fuel: NewFuelService(repo.Fuel, log),
	}
}
