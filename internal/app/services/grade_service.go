package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
)

// gradeService implements GradeService
type gradeService struct {
	enrollmentService EnrollmentService
	gradeStore        GradeStore
	logger            zerolog.Logger
}

// NewGradeService creates a new grade service instance. It builds on the
// enrollment service so the grade report rows come from the same join as
// the other views.
func NewGradeService(enrollmentService EnrollmentService, gradeStore GradeStore, logger zerolog.Logger) GradeService {
	return &gradeService{
		enrollmentService: enrollmentService,
		gradeStore:        gradeStore,
		logger:            logger,
	}
}

// GetGradeReport returns one row per enrollment, in enrollment order.
// Grades for the whole enrollment set are fetched in a single batched
// query instead of one lookup per enrollment. An enrollment without a
// grade record reports every component as upcoming; that is a normal
// state for a term in progress, not an error.
func (s *gradeService) GetGradeReport(ctx context.Context, studentID int64) ([]dto.GradeReportRow, error) {
	views, err := s.enrollmentService.ListEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return []dto.GradeReportRow{}, nil
	}

	enrollmentIDs := make([]int64, 0, len(views))
	for _, view := range views {
		enrollmentIDs = append(enrollmentIDs, view.EnrollmentID)
	}

	grades, err := s.gradeStore.ListByEnrollmentIDs(ctx, enrollmentIDs)
	if err != nil {
		return nil, err
	}

	byEnrollment, err := s.indexGrades(grades)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.GradeReportRow, 0, len(views))
	for _, view := range views {
		row := dto.GradeReportRow{
			ExamName:   view.CourseName,
			CourseCode: view.CourseCode,
			CourseType: view.CourseType,
			Units:      view.Units,
			Section:    view.Section,
			Prelim:     dto.NewScoreCell(nil),
			Midterm:    dto.NewScoreCell(nil),
			Final:      dto.NewScoreCell(nil),
		}

		if grade, ok := byEnrollment[view.EnrollmentID]; ok {
			row.Prelim = dto.NewScoreCell(grade.Prelim)
			row.Midterm = dto.NewScoreCell(grade.Midterm)
			row.Final = dto.NewScoreCell(grade.Final)
			row.Remarks = grade.Remarks
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// indexGrades maps grades by enrollment id and enforces the zero-or-one
// cardinality invariant. A duplicate means the store's unique constraint
// has been bypassed somehow; picking one arbitrarily would silently drop
// grade data, so this surfaces as an integrity error instead.
func (s *gradeService) indexGrades(grades []*models.Grade) (map[int64]*models.Grade, error) {
	byEnrollment := make(map[int64]*models.Grade, len(grades))
	for _, grade := range grades {
		if _, exists := byEnrollment[grade.EnrollmentID]; exists {
			s.logger.Error().
				Int64("enrollmentID", grade.EnrollmentID).
				Msg("Multiple grade records found for one enrollment")
			return nil, apperrors.NewIntegrityError(
				fmt.Sprintf("multiple grade records for enrollment %d", grade.EnrollmentID))
		}
		byEnrollment[grade.EnrollmentID] = grade
	}
	return byEnrollment, nil
}
