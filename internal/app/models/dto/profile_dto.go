package dto

// UpdateProfileRequest carries the only fields a student may edit on their
// own profile. Student number, email and role are deliberately absent from
// this shape: payload keys outside it are dropped by binding, so they can
// never reach the store.
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName,omitempty" example:"Maria Santos"`
	Course    *string `json:"course,omitempty" example:"BS Computer Science"`
	YearLevel *int    `json:"yearLevel,omitempty" example:"3"`
}

// Empty reports whether the request changes nothing.
func (r UpdateProfileRequest) Empty() bool {
	return r.FullName == nil && r.Course == nil && r.YearLevel == nil
}
