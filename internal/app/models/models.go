package models

// RoleType defines the account role stored on a profile
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// CourseType distinguishes catalog entry kinds
type CourseType string

const (
	CourseTypeLecture CourseType = "Lecture"
	CourseTypeLab     CourseType = "Laboratory"
)
