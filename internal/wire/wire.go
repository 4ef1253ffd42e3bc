package wire

import (
	"context"
	"net/http"
	"time"

	"usuarios-admin/internal/adaptor"
	"usuarios-admin/internal/data/repository"
	"usuarios-admin/internal/usecase"
	"usuarios-admin/pkg/database"
	"usuarios-admin/pkg/middleware"
	"usuarios-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of an open pool
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db database.PgxIface,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.AllowedOrigins))
	r.Use(middleware.Metrics)

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUsuario(r, handler.Usuario)

	r.Get("/health", healthCheck(db, logger))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func healthCheck(db database.PgxIface, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "Base de datos no disponible")
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
