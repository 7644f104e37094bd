package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photosite/internal/pkg/response"
	"photosite/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/auth/login", h.Login)
		public.GET("/auth/session", h.Session)
	}
	if protected != nil {
		protected.POST("/auth/logout", h.Logout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to log in")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Logout(c *gin.Context) {
	h.svc.Logout()
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, h.svc.Session())
}
