package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"3s", 3 * time.Second},
		{"", time.Minute},
		{"soon", time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDuration(tt.in, time.Minute), tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "5 Mar 2025", FormatDate(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, FormatDate(time.Time{}))
}
