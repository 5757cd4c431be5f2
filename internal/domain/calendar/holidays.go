package calendar

import "time"

// Holiday is one named public holiday entry in the static per-year table.
type Holiday struct {
	Month time.Month
	Day   int
	Name  string
}

// holidayTable lists Vietnamese public holidays per year. The table is data,
// not logic: extend it by appending a new year entry. Years outside the table
// yield no named holidays (Sundays are still flagged by the generator).
var holidayTable = map[int][]Holiday{
	2024: {
		{time.January, 1, "Tết Dương lịch"},
		{time.February, 8, "Tết Nguyên Đán"},
		{time.February, 9, "Tết Nguyên Đán"},
		{time.February, 10, "Tết Nguyên Đán"},
		{time.February, 11, "Tết Nguyên Đán"},
		{time.February, 12, "Tết Nguyên Đán"},
		{time.February, 13, "Tết Nguyên Đán"},
		{time.February, 14, "Tết Nguyên Đán"},
		{time.April, 18, "Giỗ Tổ Hùng Vương"},
		{time.April, 30, "Ngày Giải phóng miền Nam"},
		{time.May, 1, "Ngày Quốc tế Lao động"},
		{time.September, 2, "Quốc khánh"},
		{time.September, 3, "Quốc khánh (nghỉ bù)"},
	},
	2025: {
		{time.January, 1, "Tết Dương lịch"},
		{time.January, 27, "Tết Nguyên Đán"},
		{time.January, 28, "Tết Nguyên Đán"},
		{time.January, 29, "Tết Nguyên Đán"},
		{time.January, 30, "Tết Nguyên Đán"},
		{time.January, 31, "Tết Nguyên Đán"},
		{time.April, 7, "Giỗ Tổ Hùng Vương"},
		{time.April, 30, "Ngày Giải phóng miền Nam"},
		{time.May, 1, "Ngày Quốc tế Lao động"},
		{time.September, 1, "Quốc khánh (nghỉ bù)"},
		{time.September, 2, "Quốc khánh"},
	},
}

// LookupHoliday returns the holiday name for a date, if the date matches an
// entry in the static table for its year.
func LookupHoliday(date time.Time) (string, bool) {
	for _, h := range holidayTable[date.Year()] {
		if h.Month == date.Month() && h.Day == date.Day() {
			return h.Name, true
		}
	}
	return "", false
}

// IsRestDay reports whether a date is a Sunday or a named public holiday.
// Used by background jobs to skip absence marking on non-working days.
func IsRestDay(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return true
	}
	_, ok := LookupHoliday(date)
	return ok
}
