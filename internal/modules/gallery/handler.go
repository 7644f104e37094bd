package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photosite/internal/pkg/response"
)

// maxUploadBytes caps a single gallery upload.
const maxUploadBytes = 10 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/photos", h.List)
		public.GET("/photos/latest", h.Latest)
	}
	if protected != nil {
		protected.POST("/photos", h.Add)
		protected.DELETE("/photos/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	photos := h.svc.ListPublic(c.Request.Context(), c.Query("category"))
	response.Success(c, http.StatusOK, photos)
}

func (h *Handler) Latest(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	photos := h.svc.Latest(c.Request.Context(), n)
	if len(photos) == 0 {
		samples := SamplePhotos()
		if n > 0 && n < len(samples) {
			samples = samples[:n]
		}
		photos = samples
	}
	response.Success(c, http.StatusOK, photos)
}

func (h *Handler) Add(c *gin.Context) {
	var req AddPhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid form data")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "image: required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "image: too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "image: unreadable")
		return
	}
	defer file.Close()

	p, err := h.svc.Add(c.Request.Context(), req, file, fileHeader.Filename)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Field+": "+ve.Reason)
		case errors.Is(err, ErrUploadUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "UPLOAD_UNAVAILABLE", "Image hosting is not configured")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to add photo")
		}
		return
	}

	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Photo not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
