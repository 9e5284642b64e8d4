package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidYearLevel(t *testing.T) {
	for level := YearLevelMin; level <= YearLevelMax; level++ {
		assert.True(t, ValidYearLevel(level), "level %d", level)
	}
	for _, level := range []int{0, -3, YearLevelMax + 1, 100} {
		assert.False(t, ValidYearLevel(level), "level %d", level)
	}
}

func TestValidFullName(t *testing.T) {
	assert.True(t, ValidFullName("Juan Dela Cruz"))
	assert.True(t, ValidFullName("  Juan  "), "surrounding whitespace is ignored")
	assert.False(t, ValidFullName(""))
	assert.False(t, ValidFullName("   "))
	assert.False(t, ValidFullName("J"))
	assert.False(t, ValidFullName(strings.Repeat("a", NameMaxLength+1)))
}

func TestValidProgram(t *testing.T) {
	assert.True(t, ValidProgram("BS Computer Science"))
	assert.False(t, ValidProgram(""))
	assert.False(t, ValidProgram("   "))
	assert.False(t, ValidProgram(strings.Repeat("a", ProgramMaxLength+1)))
}
