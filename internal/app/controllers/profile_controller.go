package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/app/services"
	"github.com/jdelacruz/campusrecords/internal/middleware"
)

// ProfileController handles a student's own profile
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile returns the authenticated student's profile
// @Summary Get own profile
// @Description Retrieves the profile of the authenticated student
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// UpdateProfile updates the editable profile fields
// @Summary Update own profile
// @Description Updates fullName, course and/or yearLevel on the authenticated student's profile. Student number, email and role cannot be changed.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Editable profile fields"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}
