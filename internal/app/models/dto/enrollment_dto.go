package dto

import (
	"time"

	"github.com/jdelacruz/campusrecords/internal/pkg/helpers"
)

// ColorSchemes is the fixed card palette. A dashboard card's scheme is
// chosen by the enrollment's position in the listing modulo the palette
// size, so colors stay stable as long as the ordering does.
var ColorSchemes = []string{"purple", "yellow", "blue", "green", "mint", "pink", "magenta", "lavender"}

// EnrollmentView is one enrollment joined with its course. It is the
// canonical shape the dashboard, schedule and listing projections are
// derived from.
type EnrollmentView struct {
	EnrollmentID int64     `json:"enrollmentId" example:"10"`
	CourseID     int64     `json:"courseId" example:"3"`
	Section      string    `json:"section" example:"BSCS-3A"`
	EnrolledAt   time.Time `json:"enrolledAt" example:"2026-08-15T09:30:00Z"`
	CourseCode   string    `json:"courseCode" example:"CS301"`
	CourseName   string    `json:"courseName" example:"Data Structures and Algorithms"`
	Professor    string    `json:"professor" example:"Dr. R. Villanueva"`
	Schedule     string    `json:"schedule" example:"Mon/Wed"`
	TimeSlot     string    `json:"timeSlot" example:"9:00 AM - 10:30 AM"`
	Location     string    `json:"location" example:"Room 204"`
	Units        int       `json:"units" example:"3"`
	CourseType   string    `json:"courseType" example:"Lecture"`
}

// DashboardCourse is a color-coded course card on the dashboard.
type DashboardCourse struct {
	CourseName  string `json:"courseName"`
	CourseCode  string `json:"courseCode"`
	Professor   string `json:"professor"`
	Schedule    string `json:"schedule"`
	TimeSlot    string `json:"timeSlot"`
	Location    string `json:"location"`
	Section     string `json:"section"`
	ColorScheme string `json:"colorScheme" example:"purple"`
}

// DashboardView is the dashboard payload: greeting header data plus the
// enrolled course cards.
type DashboardView struct {
	FullName  string            `json:"fullName"`
	StudentID string            `json:"studentId"`
	Role      string            `json:"role"`
	Courses   []DashboardCourse `json:"courses"`
}

// ScheduleEntry is one row of the weekly schedule.
type ScheduleEntry struct {
	CourseName string `json:"courseName"`
	CourseCode string `json:"courseCode"`
	Professor  string `json:"professor"`
	Schedule   string `json:"schedule"`
	TimeSlot   string `json:"timeSlot"`
	Location   string `json:"location"`
}

// EnrollmentRow is one row of the enrollment listing.
type EnrollmentRow struct {
	CourseName string `json:"courseName"`
	CourseCode string `json:"courseCode"`
	Professor  string `json:"professor"`
	Units      int    `json:"units"`
	Section    string `json:"section"`
	EnrolledAt string `json:"enrolledAt" example:"Aug 15, 2026"`
	Status     string `json:"status" example:"Active"`
}

// EnrollmentStatusActive is the status marker the listing renders per row.
const EnrollmentStatusActive = "Active"

// NewDashboardCourses projects the canonical join onto dashboard cards.
func NewDashboardCourses(views []EnrollmentView) []DashboardCourse {
	courses := make([]DashboardCourse, 0, len(views))
	for i, v := range views {
		courses = append(courses, DashboardCourse{
			CourseName:  v.CourseName,
			CourseCode:  v.CourseCode,
			Professor:   v.Professor,
			Schedule:    v.Schedule,
			TimeSlot:    v.TimeSlot,
			Location:    v.Location,
			Section:     v.Section,
			ColorScheme: ColorSchemes[i%len(ColorSchemes)],
		})
	}
	return courses
}

// NewScheduleEntries projects the canonical join onto the weekly schedule.
func NewScheduleEntries(views []EnrollmentView) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(views))
	for _, v := range views {
		entries = append(entries, ScheduleEntry{
			CourseName: v.CourseName,
			CourseCode: v.CourseCode,
			Professor:  v.Professor,
			Schedule:   v.Schedule,
			TimeSlot:   v.TimeSlot,
			Location:   v.Location,
		})
	}
	return entries
}

// NewEnrollmentRows projects the canonical join onto the enrollment listing.
func NewEnrollmentRows(views []EnrollmentView) []EnrollmentRow {
	rows := make([]EnrollmentRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, EnrollmentRow{
			CourseName: v.CourseName,
			CourseCode: v.CourseCode,
			Professor:  v.Professor,
			Units:      v.Units,
			Section:    v.Section,
			EnrolledAt: helpers.FormatEnrolledDate(v.EnrolledAt),
			Status:     EnrollmentStatusActive,
		})
	}
	return rows
}
