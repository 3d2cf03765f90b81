package wire

import (
	"find-fuel/internal/adaptor"
	"find-fuel/internal/data/repository"
	"find-fuel/pkg/middleware"
	"find-fuel/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFuel(
	r chi.Router,
	fuelHandler *adaptor.FuelHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// Any authenticated role may query prices
	r.With(middleware.Authenticate(tokens, repo.User, log)).
		Get("/fuel/prices", fuelHandler.GetNearbyPrices)
}
