package adaptor

import (
	"errors"
	"net/http"

	"find-fuel/internal/dto/request"
	"find-fuel/internal/usecase"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"go.uber.org/zap"
)

// Query defaults center on São Paulo, like the ingested dataset.
const (
	defaultLatitude  = -23.55052
	defaultLongitude = -46.633308
	defaultRadiusKm  = 5.0
)

type FuelHandler struct {
	service usecase.FuelService
	log     *zap.Logger
}

func NewFuelHandler(service usecase.FuelService, log *zap.Logger) *FuelHandler {
	return &FuelHandler{
		service: service,
		log:     log,
	}
}

// GetNearbyPrices handles GET /fuel/prices?latitude&longitude&raio_km
func (h *FuelHandler) GetNearbyPrices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.NearbyRequest{
		Latitude:  utils.ParseFloat(query.Get("latitude"), defaultLatitude),
		Longitude: utils.ParseFloat(query.Get("longitude"), defaultLongitude),
		RaioKm:    utils.ParseFloat(query.Get("raio_km"), defaultRadiusKm),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	prices, err := h.service.FindNearby(r.Context(), req)
	if err != nil {
		// A store fault answers 400 with a generic message, no detail.
		if errors.Is(err, apperrors.ErrQueryFailed) {
			utils.ResponseBadRequest(w, "Failed to query fuel prices", nil)
			return
		}
		writeDomainError(w, h.log, err, "query fuel prices")
		return
	}

	utils.ResponseSuccess(w, "Fuel prices retrieved", prices)
}
