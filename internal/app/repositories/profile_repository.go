package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/db"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
	"github.com/jdelacruz/campusrecords/internal/pkg/dberrors"
	"github.com/jdelacruz/campusrecords/internal/pkg/logger"
)

// profileColumns are the columns scanned into models.Profile, in order.
var profileColumns = []string{"id", "student_id", "full_name", "email", "course", "year_level", "role"}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db      *pgxpool.Pool
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool, timeout time.Duration) *ProfileRepository {
	return &ProfileRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: timeout,
	}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	profile := &models.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.StudentID,
		&profile.FullName,
		&profile.Email,
		&profile.Course,
		&profile.YearLevel,
		&profile.Role,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByID retrieves a profile by its primary key.
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("profile fetch timed out or lost connection")
		}
		logger.Error().Err(err).Int64("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile by ID: %w", err)
	}

	return profile, nil
}

// UpdateEditable merges the editable profile fields inside a transaction.
// The row is locked with FOR UPDATE so concurrent updates to the same
// profile serialize at whole-record granularity, then apply mutates the
// loaded record and the merged result is written back in one statement.
// student_id, email and role are never part of the UPDATE column set.
func (r *ProfileRepository) UpdateEditable(ctx context.Context, id int64, apply func(*models.Profile) error) (*models.Profile, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	var updated *models.Profile
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Select(profileColumns...).
			From("profiles").
			Where(squirrel.Eq{"id": id}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock profile query: %w", err)
		}

		profile, err := scanProfile(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrProfileNotFound
			}
			return fmt.Errorf("error locking profile row: %w", err)
		}

		if err := apply(profile); err != nil {
			return err
		}

		updateSQL, updateArgs, err := r.sb.Update("profiles").
			SetMap(map[string]interface{}{
				"full_name":  profile.FullName,
				"course":     profile.Course,
				"year_level": profile.YearLevel,
			}).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update profile query: %w", err)
		}

		if _, err := tx.Exec(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("error updating profile: %w", err)
		}

		updated = profile
		return nil
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrProfileNotFound, apperrors.ErrValidationFailed) {
			return nil, err
		}
		if dberrors.IsTransient(err) {
			return nil, apperrors.NewStoreUnavailableError("profile update timed out or lost connection")
		}
		logger.Error().Err(err).Int64("profileID", id).Msg("Error executing profile update transaction")
		return nil, err
	}

	return updated, nil
}

// Create inserts a profile. Used by seeding; account creation itself is
// owned by the identity system.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (int64, error) {
	ctx, cancel := boundedContext(ctx, r.timeout)
	defer cancel()

	sql, args, err := r.sb.Insert("profiles").
		Columns("student_id", "full_name", "email", "course", "year_level", "role").
		Values(profile.StudentID, profile.FullName, profile.Email, profile.Course, profile.YearLevel, profile.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create profile query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "student ID or email already exists")
		}
		logger.Error().Err(err).Msg("Error executing create profile query")
		return 0, fmt.Errorf("error creating profile: %w", err)
	}

	return id, nil
}
