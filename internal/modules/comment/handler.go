package comment

import (
	"errors"
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

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/photos/:id/comments", h.ListForPhoto)
		public.POST("/photos/:id/comments", h.Add)
	}
	if protected != nil {
		protected.GET("/comments", h.ListAllFlat)
		protected.DELETE("/comments/:id", h.Delete)
	}
}

func (h *Handler) Add(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.svc.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Field+": "+ve.Reason)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to add comment")
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// ListForPhoto returns the comments plus the derived aggregates in one
// response so photo cards need a single request.
func (h *Handler) ListForPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	photoID := c.Param("id")

	comments := h.svc.ListForPhoto(ctx, photoID)

	response.Success(c, http.StatusOK, gin.H{
		"comments":      comments,
		"count":         len(comments),
		"averageRating": h.svc.AverageRating(ctx, photoID),
	})
}

func (h *Handler) ListAllFlat(c *gin.Context) {
	response.Success(c, http.StatusOK, h.svc.ListAllFlat(c.Request.Context()))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete comment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
