package handler

import (
	"errors"
	"net/http"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// SkillHandler handles skill requests
type SkillHandler struct {
	service service.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(s service.SkillService) *SkillHandler {
	return &SkillHandler{service: s}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req model.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, service.ErrInvalidFields.Error())
		return
	}

	skill, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFields):
			respondFailed(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateRecord):
			respondFailed(c, http.StatusConflict, err.Error())
		default:
			respondInternal(c, err)
		}
		return
	}
	respondSuccess(c, http.StatusCreated, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("skillId"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			respondFailed(c, http.StatusBadRequest, err.Error())
		} else {
			respondInternal(c, err)
		}
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// RegisterRoutes registers skill routes
func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/coaches/skill")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.DELETE("/:skillId", h.Delete)
	}
}
