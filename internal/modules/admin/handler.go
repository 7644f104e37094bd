package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photosite/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/admin/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(c *gin.Context) {
	response.Success(c, http.StatusOK, h.svc.Overview(c.Request.Context()))
}
