package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
	"github.com/jdelacruz/campusrecords/internal/pkg/dberrors"
	"github.com/jdelacruz/campusrecords/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db      *pgxpool.Pool
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool, timeout time.Duration) *EnrollmentRepository {
	return &EnrollmentRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: timeout,
	}
}

// ListByStudent retrieves every enrollment for one student, oldest first.
// Every query through here is scoped by student_id; there is no unscoped
// listing on purpose.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Select("id", "student_id", "course_id", "section", "enrolled_at").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("enrolled_at ASC", "id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrollments SQL")
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("enrollment fetch timed out or lost connection")
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{}
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.Section,
			&enrollment.EnrolledAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrollment row")
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("enrollment fetch interrupted")
		}
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// Create inserts an enrollment. Used by seeding; enrollment management
// itself happens out-of-band.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	enrolledAt := enrollment.EnrolledAt
	if enrolledAt.IsZero() {
		enrolledAt = time.Now()
	}

	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "section", "enrolled_at").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.Section, enrolledAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_course_key") {
			return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "student already enrolled in course")
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}
