package models

import "time"

// Enrollment links one Profile to one Course for a term. EnrolledAt is
// set at creation and never updated; listing order follows it.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"` // FK to profiles.id
	CourseID   int64     `json:"courseId" db:"course_id"`   // FK to courses.id
	Section    string    `json:"section" db:"section" example:"BSCS-3A"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	// Relation (populated by the enrollment join)
	Course *Course `json:"course,omitempty"`
}
