package models

// Profile defines the student account record based on the 'profiles' table.
// StudentID, Email and Role are assigned at creation and never change
// through the self-service update path.
type Profile struct {
	ID        int64    `json:"id" db:"id" example:"1"`
	StudentID string   `json:"studentId" db:"student_id" example:"2021-00451"` // Student number, unique
	FullName  string   `json:"fullName" db:"full_name" example:"Maria Santos"`
	Email     string   `json:"email" db:"email" example:"maria.santos@university.edu"`
	Course    string   `json:"course" db:"course" example:"BS Computer Science"` // Program of study, free text
	YearLevel int      `json:"yearLevel" db:"year_level" example:"3"`            // 1 through 6
	Role      RoleType `json:"role" db:"role" example:"student"`
}
