package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/app/services"
	"github.com/jdelacruz/campusrecords/internal/middleware"
)

// EnrollmentController serves the enrollment join and its projections
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetDashboard returns the dashboard view
// @Summary Get dashboard
// @Description Retrieves greeting header data and color-coded enrolled course cards
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardView} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Router /dashboard [get]
func (c *EnrollmentController) GetDashboard(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	dashboard, err := c.enrollmentService.GetDashboard(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// GetSchedule returns the weekly schedule view
// @Summary Get weekly schedule
// @Description Retrieves the weekly class schedule for the authenticated student
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleEntry} "Schedule retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Router /schedule [get]
func (c *EnrollmentController) GetSchedule(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.enrollmentService.GetSchedule(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// ListEnrollments returns the enrollment listing view
// @Summary List enrollments
// @Description Retrieves the authenticated student's enrollments joined with course details
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentRow} "Enrollments retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	rows, err := c.enrollmentService.GetEnrollmentList(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}
