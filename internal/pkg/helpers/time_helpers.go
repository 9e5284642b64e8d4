package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// EnrolledDateFormat is the human-readable date layout used by the
// enrollment listing view.
const EnrolledDateFormat = "Jan 2, 2006"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatEnrolledDate renders an enrollment timestamp as a display date.
func FormatEnrolledDate(t time.Time) string {
	return t.Format(EnrolledDateFormat)
}
