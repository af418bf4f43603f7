package helpers

import (
	"time"

	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

// DateLayout is the calendar date format used in catalog files and pages.
const DateLayout = "2 Jan 2006"

// ParseDuration parses s, falling back to def when s is empty or malformed.
func ParseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Warn().Err(err).Str("value", s).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}

// FormatDate renders t as a calendar date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
