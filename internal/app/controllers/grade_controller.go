package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/app/services"
	"github.com/jdelacruz/campusrecords/internal/middleware"
)

// GradeController serves the grade report
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// GetGradeReport returns the grade report view
// @Summary Get grade report
// @Description Retrieves one row per enrollment with null-safe prelim, midterm and final scores. Unrecorded scores report as "Upcoming".
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeReportRow} "Grade report retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Grade data integrity violation"
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Router /grades [get]
func (c *GradeController) GetGradeReport(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.gradeService.GetGradeReport(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}
