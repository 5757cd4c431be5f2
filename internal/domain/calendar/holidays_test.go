package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupHoliday(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantName string
		wantOK   bool
	}{
		{"new year 2025", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "Tết Dương lịch", true},
		{"tet 2024", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), "Tết Nguyên Đán", true},
		{"tet 2025", time.Date(2025, time.January, 29, 0, 0, 0, 0, time.UTC), "Tết Nguyên Đán", true},
		{"hung kings 2025", time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC), "Giỗ Tổ Hùng Vương", true},
		{"national day 2024", time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC), "Quốc khánh", true},
		{"plain weekday", time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), "", false},
		{"year outside table", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := LookupHoliday(tt.date)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestIsRestDay(t *testing.T) {
	// Sunday without a table entry.
	assert.True(t, IsRestDay(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))
	// Named holiday on a weekday.
	assert.True(t, IsRestDay(time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)))
	// Ordinary Monday.
	assert.False(t, IsRestDay(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
}
