package validation

import (
	"strings"
)

// Profile field constraints
var (
	// YearLevelMin/Max bound the academic year level (1st through 6th year)
	YearLevelMin = 1
	YearLevelMax = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Program (course of study) max length
	ProgramMaxLength = 150
)

// ValidYearLevel reports whether a year level falls in the accepted domain.
func ValidYearLevel(level int) bool {
	return level >= YearLevelMin && level <= YearLevelMax
}

// ValidFullName reports whether a full name is acceptable: non-blank and
// within length bounds after trimming.
func ValidFullName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}

// ValidProgram reports whether a free-text program name is acceptable.
func ValidProgram(program string) bool {
	trimmed := strings.TrimSpace(program)
	return trimmed != "" && len(trimmed) <= ProgramMaxLength
}
