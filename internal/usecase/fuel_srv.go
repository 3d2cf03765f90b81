package usecase

import (
	"context"
	"sort"

	"find-fuel/internal/data/repository"
	"find-fuel/internal/dto/request"
	"find-fuel/internal/dto/response"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"go.uber.org/zap"
)

type FuelService interface {
	FindNearby(ctx context.Context, req *request.NearbyRequest) ([]response.FuelPriceResponse, error)
}

type fuelService struct {
	fuelRepo repository.FuelPriceRepository
	log      *zap.Logger
}

func NewFuelService(fuelRepo repository.FuelPriceRepository, log *zap.Logger) FuelService {
	return &fuelService{
		fuelRepo: fuelRepo,
		log:      log,
	}
}

// FindNearby ranks fuel price records by great-circle distance from the
// given coordinate and returns those within the radius, closest first.
// Records without coordinates never match. A store failure surfaces as a
// single query-failed error, no partial results.
func (fs *fuelService) FindNearby(ctx context.Context, req *request.NearbyRequest) ([]response.FuelPriceResponse, error) {
	prices, err := fs.fuelRepo.FindWithCoordinates(ctx)
	if err != nil {
		fs.log.Error("Fuel price query failed",
			zap.Error(err),
			zap.Float64("latitude", req.Latitude),
			zap.Float64("longitude", req.Longitude),
		)
		return nil, apperrors.ErrQueryFailed
	}

	type ranked struct {
		resp     response.FuelPriceResponse
		distance float64
	}

	results := make([]ranked, 0, len(prices))
	for _, price := range prices {
		if price.Latitude == nil || price.Longitude == nil {
			continue
		}

		distance := utils.GreatCircleDistance(req.Latitude, req.Longitude, *price.Latitude, *price.Longitude)
		if distance > req.RaioKm {
			continue
		}

		results = append(results, ranked{
			resp:     response.FuelPriceToResponse(price, utils.RoundKm(distance)),
			distance: distance,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].distance < results[j].distance
	})

	responses := make([]response.FuelPriceResponse, len(results))
	for i, r := range results {
		responses[i] = r.resp
	}

	fs.log.Info("Fuel prices ranked",
		zap.Int("matches", len(responses)),
		zap.Float64("raio_km", req.RaioKm),
	)

	return responses, nil
}
