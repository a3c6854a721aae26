package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/app/services"
	"github.com/faceit/backend/internal/middleware"
)

// ClassController handles class/course operations
type ClassController struct {
	classService services.IClassService
	logger       zerolog.Logger
}

// NewClassController creates a new ClassController
func NewClassController(classService services.IClassService, logger zerolog.Logger) *ClassController {
	return &ClassController{
		classService: classService,
		logger:       logger,
	}
}

// CreateClass handles course creation
// @Summary Create a class
// @Description Creates a course record owned by the authenticated instructor
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateClassResponse} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an instructor"
// @Failure 500 {object} dto.ErrorResponse "Store failure"
// @Security BearerAuth
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	user, ok := middleware.CurrentUserFrom(ctx)
	if !ok {
		// The route group guarantees Authenticate ran first.
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid authentication credentials")))
		return
	}

	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid class creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	response, err := c.classService.CreateClass(ctx.Request.Context(), user.UserID, &req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("instructorId", user.UserID.String()).
			Str("courseCode", req.CourseCode).
			Msg("Class creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: response})
}
