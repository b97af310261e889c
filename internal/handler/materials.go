package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/biblioteca-service/internal/service"
	"github.com/maxviazov/biblioteca-service/pkg/response"
)

type MaterialsHandler struct {
	svc service.CatalogService
}

func NewMaterialsHandler(svc service.CatalogService) *MaterialsHandler {
	return &MaterialsHandler{svc: svc}
}

func (h *MaterialsHandler) Register(r gin.IRoutes) {
	r.GET(MaterialsPath, h.list)
}

// list answers with the full table; nothing is written unless the whole result is ready.
func (h *MaterialsHandler) list(c *gin.Context) {
	table, err := h.svc.MaterialsTable(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, table)
}
