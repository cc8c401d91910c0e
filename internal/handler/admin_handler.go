package handler

import (
	"errors"
	"net/http"

	"coaching_marketplace/internal/model"
	"coaching_marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles coach promotion and course management requests
type AdminHandler struct {
	coachService  service.CoachService
	courseService service.CourseService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(coachService service.CoachService, courseService service.CourseService) *AdminHandler {
	return &AdminHandler{coachService: coachService, courseService: courseService}
}

func (h *AdminHandler) PromoteCoach(c *gin.Context) {
	var req model.PromoteCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, service.ErrInvalidFields.Error())
		return
	}

	result, err := h.coachService.Promote(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFields),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrRoleUpdateFailed):
			respondFailed(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAlreadyCoach):
			respondFailed(c, http.StatusConflict, err.Error())
		default:
			respondInternal(c, err)
		}
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}

func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req model.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, service.ErrInvalidFields.Error())
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFields),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrNotACoach),
			errors.Is(err, service.ErrSkillNotFound):
			respondFailed(c, http.StatusBadRequest, err.Error())
		default:
			respondInternal(c, err)
		}
		return
	}
	respondSuccess(c, StatusCourseAccepted, gin.H{"course": course})
}

func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	var req model.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, service.ErrInvalidFields.Error())
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), c.Param("courseId"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFields),
			errors.Is(err, service.ErrCourseNotFound),
			errors.Is(err, service.ErrCourseUpdateFailed):
			respondFailed(c, http.StatusBadRequest, err.Error())
		default:
			respondInternal(c, err)
		}
		return
	}
	respondSuccess(c, StatusCourseAccepted, gin.H{"course": course})
}

// RegisterRoutes registers coach promotion and course routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/coaches")
	{
		group.POST("/courses", h.CreateCourse)
		group.PUT("/courses/:courseId", h.UpdateCourse)
		group.POST("/:userId", h.PromoteCoach)
	}
}
