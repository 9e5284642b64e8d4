package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/jdelacruz/campusrecords/internal/app/models"
	appRepos "github.com/jdelacruz/campusrecords/internal/app/repositories"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
)

type courseSpec struct {
	course  appModels.Course
	section string
	graded  *appModels.Grade
}

// CreateDefaultData populates an empty database with a demo student,
// a small course catalog and matching enrollments. Re-running against
// an already seeded database is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	var hasProfiles bool
	if err := dbPool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles)`).Scan(&hasProfiles); err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing seed data")
		return err
	}
	if hasProfiles {
		lgr.Info().Msg("Database already seeded, skipping default data")
		return nil
	}

	lgr.Info().Msg("Creating default data (demo student and course catalog)...")
	var finalErr error

	student := &appModels.Profile{
		StudentID: "2021-00412",
		FullName:  "Juan Dela Cruz",
		Email:     "juan.delacruz@campusrecords.app",
		Course:    "BS Computer Science",
		YearLevel: 3,
		Role:      appModels.RoleStudent,
	}
	studentID, err := repos.ProfileRepository.Create(ctx, student)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			lgr.Error().Err(err).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		}
		return finalErr
	}

	prelim, midterm := 90.0, 85.0
	catalog := []courseSpec{
		{
			course: appModels.Course{
				Code: "CS301", Name: "Data Structures and Algorithms",
				Professor: "Dr. R. Santos", Schedule: "Mon/Wed/Fri", TimeSlot: "8:00 AM - 9:30 AM",
				Location: "Rm 204, CS Building", Units: 3, CourseType: appModels.CourseTypeLecture,
			},
			section: "A",
			graded:  &appModels.Grade{Prelim: &prelim, Midterm: &midterm},
		},
		{
			course: appModels.Course{
				Code: "CS302", Name: "Operating Systems",
				Professor: "Prof. L. Reyes", Schedule: "Tue/Thu", TimeSlot: "10:00 AM - 11:30 AM",
				Location: "Rm 310, CS Building", Units: 3, CourseType: appModels.CourseTypeLecture,
			},
			section: "B",
		},
		{
			course: appModels.Course{
				Code: "CS302L", Name: "Operating Systems Laboratory",
				Professor: "Prof. L. Reyes", Schedule: "Fri", TimeSlot: "1:00 PM - 4:00 PM",
				Location: "CompLab 2", Units: 1, CourseType: appModels.CourseTypeLab,
			},
			section: "B",
		},
		{
			course: appModels.Course{
				Code: "MATH211", Name: "Discrete Mathematics",
				Professor: "Dr. A. Villanueva", Schedule: "Mon/Wed/Fri", TimeSlot: "2:00 PM - 3:30 PM",
				Location: "Rm 105, Science Hall", Units: 3, CourseType: appModels.CourseTypeLecture,
			},
			section: "C",
		},
	}

	for _, spec := range catalog {
		course := spec.course
		courseID, err := repos.CourseRepository.Create(ctx, &course)
		if err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		enrollmentID, err := repos.EnrollmentRepository.Create(ctx, &appModels.Enrollment{
			StudentID:  studentID,
			CourseID:   courseID,
			Section:    spec.section,
			EnrolledAt: time.Now(),
		})
		if err != nil {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error enrolling demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if spec.graded != nil {
			grade := *spec.graded
			grade.EnrollmentID = enrollmentID
			if _, err := repos.GradeRepository.Create(ctx, &grade); err != nil {
				lgr.Error().Err(err).Str("code", course.Code).Msg("Error recording demo grades")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data created successfully")
	}
	return finalErr
}
