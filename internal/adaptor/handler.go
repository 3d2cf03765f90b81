package adaptor

import (
	"find-fuel/internal/usecase"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	Auth *AuthHandler
	User *UserHandler
	Fuel *FuelHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, log),
		User: NewUserHandler(service.User, log),
		Fuel: NewFuelHandler(service.Fuel, log),
	}
}

// writeDomainError maps a domain error onto the HTTP status table. Auth
// failures deliberately share one generic message so callers cannot tell
// which check failed; the detail goes to the log only.
func writeDomainError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case apperrors.IsAuthentication(err):
		log.Warn(operation+" failed - not authenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, "Not authenticated")

	case apperrors.IsForbidden(err):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Insufficient permission")

	case apperrors.IsConflict(err):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case apperrors.IsNotFound(err):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
