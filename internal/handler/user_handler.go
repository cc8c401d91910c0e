package handler

import (
	"errors"
	"net/http"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user signup requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, service.ErrInvalidFields.Error())
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFields), errors.Is(err, service.ErrInvalidPassword):
			respondFailed(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			respondFailed(c, http.StatusConflict, err.Error())
		default:
			respondInternal(c, err)
		}
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"user": user})
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/users")
	{
		group.POST("/signup", h.Signup)
	}
}
