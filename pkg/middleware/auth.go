package middleware

import (
	"net/http"
	"strings"

	"find-fuel/internal/data/entity"
	"find-fuel/internal/data/repository"
	"find-fuel/pkg/token"
	"find-fuel/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer access token and resolves its subject
// against the user store. Every authentication failure collapses to the
// same 401 response; which check failed is only visible in the logs.
func Authenticate(tokens *token.Manager, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			claims, err := tokens.Parse(parts[1], token.TypeAccess)
			if err != nil {
				logger.Warn("Access token rejected",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			user, err := userRepo.FindByUsuario(r.Context(), claims.Subject)
			if err != nil {
				logger.Error("Failed to resolve token subject",
					zap.Error(err),
					zap.String("sub", claims.Subject))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token subject has no user record", zap.String("sub", claims.Subject))
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Usuario, string(user.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates a route on the admin role. Must run after Authenticate.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			if role != string(entity.RoleAdmin) {
				logger.Warn("Non-admin access attempt",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
