package dto

import (
	"strconv"
)

// Score statuses. A recorded score renders as a success badge with the
// value at one decimal place; a missing score renders as "Upcoming".
const (
	ScoreStatusSuccess  = "success"
	ScoreStatusUpcoming = "upcoming"

	ScoreDisplayUpcoming = "Upcoming"
)

// ScoreCell is the null-safe rendering of one grade component.
type ScoreCell struct {
	Score   *float64 `json:"score,omitempty" example:"88.5"`
	Status  string   `json:"status" example:"success"`
	Display string   `json:"display" example:"88.5"`
}

// NewScoreCell renders a grade component. The mapping depends only on
// whether the score is present and its value, nothing else.
func NewScoreCell(score *float64) ScoreCell {
	if score == nil {
		return ScoreCell{
			Status:  ScoreStatusUpcoming,
			Display: ScoreDisplayUpcoming,
		}
	}
	return ScoreCell{
		Score:   score,
		Status:  ScoreStatusSuccess,
		Display: strconv.FormatFloat(*score, 'f', 1, 64),
	}
}

// GradeReportRow is one row of the grade report table: the enrollment's
// course joined with its at-most-one grade record.
type GradeReportRow struct {
	ExamName   string    `json:"examName" example:"Data Structures and Algorithms"`
	CourseCode string    `json:"courseCode" example:"CS301"`
	CourseType string    `json:"courseType" example:"Lecture"`
	Units      int       `json:"units" example:"3"`
	Section    string    `json:"section" example:"BSCS-3A"`
	Prelim     ScoreCell `json:"prelim"`
	Midterm    ScoreCell `json:"midterm"`
	Final      ScoreCell `json:"final"`
	Remarks    *string   `json:"remarks,omitempty"`
}
