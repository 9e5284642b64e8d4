package models

// Grade holds the scored outcome for one enrollment. At most one grade
// row exists per enrollment; the store enforces this with a unique
// constraint on enrollment_id. A nil component means "not yet recorded",
// which is distinct from a score of zero.
type Grade struct {
	ID           int64    `json:"id" db:"id"`
	EnrollmentID int64    `json:"enrollmentId" db:"enrollment_id"`
	Prelim       *float64 `json:"prelim,omitempty" db:"prelim"`
	Midterm      *float64 `json:"midterm,omitempty" db:"midterm"`
	Final        *float64 `json:"final,omitempty" db:"final"`
	Remarks      *string  `json:"remarks,omitempty" db:"remarks"`
}
