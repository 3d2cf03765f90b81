package repository

import (
	"find-fuel/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
	Fuel FuelPriceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		Fuel: NewFuelPriceRepository(db, log),
	}
}
