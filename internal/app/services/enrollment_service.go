package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/pkg/cache"
)

// enrollmentService implements EnrollmentService
type enrollmentService struct {
	enrollmentStore EnrollmentStore
	courseStore     CourseStore
	profileStore    ProfileStore
	viewCache       EnrollmentCache // nil when caching is disabled
	logger          zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance. viewCache
// may be nil, in which case every listing goes to the store.
func NewEnrollmentService(
	enrollmentStore EnrollmentStore,
	courseStore CourseStore,
	profileStore ProfileStore,
	viewCache EnrollmentCache,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentService{
		enrollmentStore: enrollmentStore,
		courseStore:     courseStore,
		profileStore:    profileStore,
		viewCache:       viewCache,
		logger:          logger,
	}
}

// ListEnrollments returns the canonical enrollment/course join for one
// student, ordered by enrollment time. The dashboard, schedule and listing
// projections are all derived from this single join, so the three views can
// never disagree about which courses the student is taking.
func (s *enrollmentService) ListEnrollments(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	if s.viewCache != nil {
		views, err := s.viewCache.Get(ctx, studentID)
		if err == nil {
			return views, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Enrollment cache read failed, falling back to store")
		}
	}

	views, err := s.joinEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if s.viewCache != nil {
		if err := s.viewCache.Set(ctx, studentID, views); err != nil {
			s.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Enrollment cache write failed")
		}
	}

	return views, nil
}

// joinEnrollments fetches the student's enrollments, batch-fetches the
// distinct referenced courses in one query, and attaches each course to
// its enrollment. An enrollment whose course is missing from the catalog
// is dropped from the result with a warning; one bad row must not break
// the student-facing view.
func (s *enrollmentService) joinEnrollments(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	enrollments, err := s.enrollmentStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if len(enrollments) == 0 {
		return []dto.EnrollmentView{}, nil
	}

	seen := make(map[int64]struct{}, len(enrollments))
	courseIDs := make([]int64, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if _, ok := seen[enrollment.CourseID]; ok {
			continue
		}
		seen[enrollment.CourseID] = struct{}{}
		courseIDs = append(courseIDs, enrollment.CourseID)
	}

	courses, err := s.courseStore.GetByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	views := make([]dto.EnrollmentView, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, ok := courses[enrollment.CourseID]
		if !ok {
			s.logger.Warn().
				Int64("enrollmentID", enrollment.ID).
				Int64("courseID", enrollment.CourseID).
				Msg("Enrollment references missing course, dropping from view")
			continue
		}

		views = append(views, dto.EnrollmentView{
			EnrollmentID: enrollment.ID,
			CourseID:     course.ID,
			Section:      enrollment.Section,
			EnrolledAt:   enrollment.EnrolledAt,
			CourseCode:   course.Code,
			CourseName:   course.Name,
			Professor:    course.Professor,
			Schedule:     course.Schedule,
			TimeSlot:     course.TimeSlot,
			Location:     course.Location,
			Units:        course.Units,
			CourseType:   string(course.CourseType),
		})
	}

	return views, nil
}

// GetDashboard returns the greeting header data plus color-coded course cards.
func (s *enrollmentService) GetDashboard(ctx context.Context, studentID int64) (*dto.DashboardView, error) {
	profile, err := s.profileStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	views, err := s.ListEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardView{
		FullName:  profile.FullName,
		StudentID: profile.StudentID,
		Role:      string(profile.Role),
		Courses:   dto.NewDashboardCourses(views),
	}, nil
}

// GetSchedule returns the weekly schedule projection.
func (s *enrollmentService) GetSchedule(ctx context.Context, studentID int64) ([]dto.ScheduleEntry, error) {
	views, err := s.ListEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewScheduleEntries(views), nil
}

// GetEnrollmentList returns the enrollment listing projection.
func (s *enrollmentService) GetEnrollmentList(ctx context.Context, studentID int64) ([]dto.EnrollmentRow, error) {
	views, err := s.ListEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewEnrollmentRows(views), nil
}
