package routes

import (
	"log"

	"skillmap/internal/config"
	"skillmap/internal/database"
	"skillmap/internal/delivery/http/handler"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  usecase.ResultCache
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.ResultCache, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: cache, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.db, r.cache, r.logger)
}
