package handler

import (
	"errors"
	"net/http"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreditPackageHandler handles credit package requests
type CreditPackageHandler struct {
	service service.CreditPackageService
}

// NewCreditPackageHandler creates a new CreditPackageHandler
func NewCreditPackageHandler(s service.CreditPackageService) *CreditPackageHandler {
	return &CreditPackageHandler{service: s}
}

func (h *CreditPackageHandler) List(c *gin.Context) {
	packages, err := h.service.List(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, packages)
}

func (h *CreditPackageHandler) Create(c *gin.Context) {
	var req model.CreateCreditPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, service.ErrInvalidFields.Error())
		return
	}

	pkg, err := h.service.Create(c.Request.Context(), req)
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
	respondSuccess(c, http.StatusOK, pkg)
}

func (h *CreditPackageHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("creditPackageId"))
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

// RegisterRoutes registers credit package routes
func (h *CreditPackageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/credit-package")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.DELETE("/:creditPackageId", h.Delete)
	}
}
