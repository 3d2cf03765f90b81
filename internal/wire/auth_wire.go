package wire

import (
	"find-fuel/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes: registration lives under /usuarios, token endpoints
	// under /auth. Refresh carries its own credential in the body.
	r.Post("/usuarios", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/refresh", authHandler.Refresh)
}
