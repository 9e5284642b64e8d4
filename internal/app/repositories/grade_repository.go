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

// GradeRepository handles grade database operations
type GradeRepository struct {
	db      *pgxpool.Pool
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool, timeout time.Duration) *GradeRepository {
	return &GradeRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: timeout,
	}
}

// ListByEnrollmentIDs fetches every grade row for the given enrollment set
// in one query. The caller gets the raw rows, duplicates included, so the
// zero-or-one cardinality check stays with the service instead of being
// silently resolved here.
func (r *GradeRepository) ListByEnrollmentIDs(ctx context.Context, enrollmentIDs []int64) ([]*models.Grade, error) {
	if len(enrollmentIDs) == 0 {
		return []*models.Grade{}, nil
	}

	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Select("id", "enrollment_id", "prelim", "midterm", "final", "remarks").
		From("grades").
		Where(squirrel.Eq{"enrollment_id": enrollmentIDs}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building batch grade SQL")
		return nil, fmt.Errorf("failed to build batch grade query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("grade fetch timed out or lost connection")
		}
		logger.Error().Err(err).Msg("Error executing batch grade query")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []*models.Grade{}
	for rows.Next() {
		grade := &models.Grade{}
		if err := rows.Scan(
			&grade.ID,
			&grade.EnrollmentID,
			&grade.Prelim,
			&grade.Midterm,
			&grade.Final,
			&grade.Remarks,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("grade fetch interrupted")
		}
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}

// Create inserts a grade record. Used by seeding; instructors record
// grades through an external surface.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Insert("grades").
		Columns("enrollment_id", "prelim", "midterm", "final", "remarks").
		Values(grade.EnrollmentID, grade.Prelim, grade.Midterm, grade.Final, grade.Remarks).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "grades_enrollment_id_key") {
			return 0, apperrors.NewIntegrityError("grade already recorded for enrollment")
		}
		logger.Error().Err(err).Msg("Error executing create grade query")
		return 0, fmt.Errorf("error creating grade: %w", err)
	}

	return id, nil
}
