package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompareDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same day", date(2024, 10, 1), date(2024, 10, 1), 0},
		{"same day different hours", time.Date(2024, 10, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, 10, 1, 0, 1, 0, 0, time.UTC), 0},
		{"earlier day", date(2024, 9, 30), date(2024, 10, 1), -1},
		{"later day", date(2024, 10, 2), date(2024, 10, 1), 1},
		{"earlier month", date(2024, 9, 15), date(2024, 10, 1), -1},
		{"earlier year", date(2023, 12, 31), date(2024, 1, 1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareDay(tt.a, tt.b))
		})
	}
}

func TestOnOrAfterDay(t *testing.T) {
	today := date(2024, 10, 1)

	assert.True(t, onOrAfterDay(date(2024, 10, 1), today), "same day is inclusive")
	assert.True(t, onOrAfterDay(date(2024, 10, 2), today))
	assert.False(t, onOrAfterDay(date(2024, 9, 30), today))
}

func TestFirstOfMonth(t *testing.T) {
	base := date(2024, 10, 15)

	assert.Equal(t, date(2024, 10, 1), firstOfMonth(base, 0))
	assert.Equal(t, date(2024, 11, 1), firstOfMonth(base, 1))

	// Month arithmetic rolls across year boundaries
	assert.Equal(t, date(2025, 1, 1), firstOfMonth(base, 3))
	assert.Equal(t, date(2025, 10, 1), firstOfMonth(base, 12))
}

func TestMonthDiff(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"same month", date(2024, 10, 31), date(2024, 10, 1), 0},
		{"two months ahead", date(2024, 12, 31), date(2024, 10, 1), 2},
		{"across year boundary", date(2025, 2, 1), date(2024, 11, 30), 3},
		{"negative when a is earlier", date(2024, 8, 31), date(2024, 10, 1), -2},
		{"day of month ignored", date(2024, 11, 1), date(2024, 10, 31), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthDiff(tt.a, tt.b))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	may := date(2025, 5, 1)

	assert.Equal(t, "May 2025", monthLabel(may, "en"))
	assert.Equal(t, "2025년 5월", monthLabel(may, "ko"))
	assert.Equal(t, "May 2025", monthLabel(may, "fr"), "unsupported locale falls back to English")
}
