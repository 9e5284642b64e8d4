package models

// Course represents a catalog entry. The catalog is curated out-of-band
// and read-only to this service.
type Course struct {
	ID         int64      `json:"id" db:"id"`
	Code       string     `json:"code" db:"code" example:"CS301"`
	Name       string     `json:"name" db:"name" example:"Data Structures and Algorithms"`
	Professor  string     `json:"professor" db:"professor" example:"Dr. R. Villanueva"`
	Schedule   string     `json:"schedule" db:"schedule" example:"Mon/Wed"` // Meeting days
	TimeSlot   string     `json:"timeSlot" db:"time_slot" example:"9:00 AM - 10:30 AM"`
	Location   string     `json:"location" db:"location" example:"Room 204"`
	Units      int        `json:"units" db:"units" example:"3"`
	CourseType CourseType `json:"courseType" db:"course_type" example:"Lecture"`
}
