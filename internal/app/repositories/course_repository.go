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

// CourseRepository handles catalog reads. The catalog is curated
// out-of-band, so there is no update or delete surface here.
type CourseRepository struct {
	db      *pgxpool.Pool
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool, timeout time.Duration) *CourseRepository {
	return &CourseRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: timeout,
	}
}

// GetByIDs fetches all courses for the given id set in one query and
// returns them keyed by id. Missing ids are simply absent from the map.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Course, error) {
	courses := make(map[int64]*models.Course, len(ids))
	if len(ids) == 0 {
		return courses, nil
	}

	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Select("id", "code", "name", "professor", "schedule", "time_slot", "location", "units", "course_type").
		From("courses").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building batch course SQL")
		return nil, fmt.Errorf("failed to build batch course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("course fetch timed out or lost connection")
		}
		logger.Error().Err(err).Msg("Error executing batch course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Professor,
			&course.Schedule,
			&course.TimeSlot,
			&course.Location,
			&course.Units,
			&course.CourseType,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses[course.ID] = course
	}

	if err := rows.Err(); err != nil {
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("course fetch interrupted")
		}
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Create inserts a catalog entry. Used by seeding only.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "professor", "schedule", "time_slot", "location", "units", "course_type").
		Values(course.Code, course.Name, course.Professor, course.Schedule, course.TimeSlot, course.Location, course.Units, course.CourseType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "course code already exists")
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}
