package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/biblioteca-service/internal/service"
	"github.com/rs/zerolog"
)

// NewEngine builds the gin engine with recovery, access logging and CORS in front of all routes.
func NewEngine(logger zerolog.Logger, catalog service.CatalogService) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(logger), RequestLogger(logger), CORS())
	Register(r, catalog)
	return r
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, catalog service.CatalogService) {
	h := NewHealthHandler(catalog)

	// Health probes
	r.GET(LivePath, h.Liveness)
	r.GET(ReadyPath, h.Readiness)

	RegisterDocs(r)

	NewMaterialsHandler(catalog).Register(r)
}
