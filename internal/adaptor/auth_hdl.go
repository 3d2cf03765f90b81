package adaptor

import (
	"encoding/json"
	"net/http"

	"find-fuel/internal/dto/request"
	"find-fuel/internal/usecase"
	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /usuarios
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeDomainError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "User created", user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pair, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// Bad credentials answer 400, per the login contract.
		if apperrors.IsAuthentication(err) {
			h.log.Warn("Login rejected", zap.Error(err))
			utils.ResponseBadRequest(w, "Invalid username or password", nil)
			return
		}
		writeDomainError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", pair)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeDomainError(w, h.log, err, "refresh")
		return
	}

	utils.ResponseSuccess(w, "Token refreshed", pair)
}
