package services

import (
	"context"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
)

// Store interfaces consumed by the services. The repositories satisfy
// them against Postgres; tests satisfy them in memory.

// ProfileStore provides profile reads and the serialized editable-field merge.
type ProfileStore interface {
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	UpdateEditable(ctx context.Context, id int64, apply func(*models.Profile) error) (*models.Profile, error)
}

// CourseStore provides batched catalog lookups.
type CourseStore interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Course, error)
}

// EnrollmentStore provides student-scoped enrollment reads.
type EnrollmentStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
}

// GradeStore provides batched grade lookups keyed by enrollment.
type GradeStore interface {
	ListByEnrollmentIDs(ctx context.Context, enrollmentIDs []int64) ([]*models.Grade, error)
}

// EnrollmentCache caches the canonical enrollment/course join per student.
type EnrollmentCache interface {
	Get(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error)
	Set(ctx context.Context, studentID int64, views []dto.EnrollmentView) error
}

// ProfileService reads and partially updates a student's own profile.
type ProfileService interface {
	GetProfile(ctx context.Context, studentID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, studentID int64, req dto.UpdateProfileRequest) (*models.Profile, error)
}

// EnrollmentService produces the canonical enrollment/course join and its
// three projections.
type EnrollmentService interface {
	ListEnrollments(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error)
	GetDashboard(ctx context.Context, studentID int64) (*dto.DashboardView, error)
	GetSchedule(ctx context.Context, studentID int64) ([]dto.ScheduleEntry, error)
	GetEnrollmentList(ctx context.Context, studentID int64) ([]dto.EnrollmentRow, error)
}

// GradeService joins enrollments to their at-most-one grade record.
type GradeService interface {
	GetGradeReport(ctx context.Context, studentID int64) ([]dto.GradeReportRow, error)
}
