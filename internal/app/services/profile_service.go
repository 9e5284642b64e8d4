package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
	"github.com/jdelacruz/campusrecords/internal/pkg/validation"
)

// profileService implements ProfileService
type profileService struct {
	profileStore ProfileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileStore ProfileStore) ProfileService {
	return &profileService{
		profileStore: profileStore,
	}
}

// GetProfile retrieves the profile for a resolved identity. The id always
// comes from the session, never from client input.
func (s *profileService) GetProfile(ctx context.Context, studentID int64) (*models.Profile, error) {
	if studentID <= 0 {
		return nil, apperrors.ErrProfileNotFound
	}

	profile, err := s.profileStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile merges the editable fields into the stored profile and
// returns the full updated record. The request shape only admits
// fullName, course and yearLevel; student number, email and role cannot
// change through this path. Validation happens before the store is
// touched, and the request is rejected wholesale on the first bad field.
func (s *profileService) UpdateProfile(ctx context.Context, studentID int64, req dto.UpdateProfileRequest) (*models.Profile, error) {
	if studentID <= 0 {
		return nil, apperrors.ErrProfileNotFound
	}

	if err := validateUpdateRequest(req); err != nil {
		return nil, err
	}

	// Nothing to merge, skip the write transaction entirely.
	if req.Empty() {
		return s.profileStore.GetByID(ctx, studentID)
	}

	updated, err := s.profileStore.UpdateEditable(ctx, studentID, func(profile *models.Profile) error {
		if req.FullName != nil {
			profile.FullName = strings.TrimSpace(*req.FullName)
		}
		if req.Course != nil {
			profile.Course = strings.TrimSpace(*req.Course)
		}
		if req.YearLevel != nil {
			profile.YearLevel = *req.YearLevel
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// validateUpdateRequest checks each supplied field against its domain.
// Absent fields are untouched, not defaulted.
func validateUpdateRequest(req dto.UpdateProfileRequest) error {
	if req.YearLevel != nil && !validation.ValidYearLevel(*req.YearLevel) {
		return apperrors.NewValidationError("yearLevel",
			fmt.Sprintf("year level must be between %d and %d", validation.YearLevelMin, validation.YearLevelMax))
	}

	if req.FullName != nil && !validation.ValidFullName(*req.FullName) {
		return apperrors.NewValidationError("fullName",
			fmt.Sprintf("full name must be %d to %d characters", validation.NameMinLength, validation.NameMaxLength))
	}

	if req.Course != nil && !validation.ValidProgram(*req.Course) {
		return apperrors.NewValidationError("course", "course must be a non-empty program name")
	}

	return nil
}
