package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository    *ProfileRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	GradeRepository      *GradeRepository
}

// NewRepositories initializes all repositories. queryTimeout bounds every
// store call so an unreachable database fails fast instead of hanging.
func NewRepositories(db *pgxpool.Pool, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		ProfileRepository:    NewProfileRepository(db, queryTimeout),
		CourseRepository:     NewCourseRepository(db, queryTimeout),
		EnrollmentRepository: NewEnrollmentRepository(db, queryTimeout),
		GradeRepository:      NewGradeRepository(db, queryTimeout),
	}
}

// boundedContext derives a context bounded by the repository query timeout,
// unless the caller's deadline is already tighter.
func boundedContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= timeout {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
