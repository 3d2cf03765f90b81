package wire

import (
	"net/http"

	"find-fuel/internal/adaptor"
	"find-fuel/internal/data/repository"
	"find-fuel/internal/usecase"
	"find-fuel/pkg/middleware"
	"find-fuel/pkg/token"
	"find-fuel/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(config.JWT)
	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, tokens, logger)
	wireFuel(r, handler.Fuel, repo, tokens, logger)

	// Service info
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, config.App.Name, map[string]string{
			"service": config.App.Name,
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
