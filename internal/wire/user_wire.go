package wire

import (
	"find-fuel/internal/adaptor"
	"find-fuel/internal/data/repository"
	"find-fuel/pkg/middleware"
	"find-fuel/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(tokens, repo.User, log)
	admin := middleware.Admin(log)

	// Listing and deletion require the admin role on top of a valid
	// access token
	r.With(auth, admin).Get("/usuarios", userHandler.GetAllUsers)
	r.With(auth, admin).Delete("/usuarios/{id}", userHandler.DeleteUser)

	// Any authenticated user
	r.With(auth).Get("/usuarios/me", userHandler.GetProfile)
	r.With(auth).Get("/usuarios/{id}", userHandler.GetUser)

	// Self-or-admin; the ownership check happens in the service
	r.With(auth).Put("/usuarios/{id}", userHandler.UpdateUser)
}
