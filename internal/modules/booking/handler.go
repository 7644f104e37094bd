package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photosite/internal/domain"
	"photosite/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/bookings", h.Create)
	}
	if protected != nil {
		protected.GET("/bookings", h.List)
		protected.GET("/bookings/stats", h.Stats)
		protected.GET("/bookings/:id", h.GetByID)
		protected.PATCH("/bookings/:id/status", h.SetStatus)
		protected.DELETE("/bookings/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Field+": "+ve.Reason)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to save booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":     b.ID,
		"status": b.Status,
	})
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.svc.List(c.Request.Context()))
}

func (h *Handler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.svc.Stats(c.Request.Context()))
}

func (h *Handler) GetByID(c *gin.Context) {
	b, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be pending, confirmed or cancelled")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
