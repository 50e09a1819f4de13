package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestWorkdayService_Weekends(t *testing.T) {
	svc := NewWorkdayService()

	if svc.IsWorkday(date(2025, time.March, 8)) { // Saturday
		t.Error("Saturday should not be a workday")
	}
	if svc.IsWorkday(date(2025, time.March, 9)) { // Sunday
		t.Error("Sunday should not be a workday")
	}
	if !svc.IsWorkday(date(2025, time.March, 10)) { // Monday
		t.Error("Monday should be a workday")
	}
}

func TestWorkdayService_NationalHolidays(t *testing.T) {
	svc := NewWorkdayService()

	tests := []struct {
		name string
		day  time.Time
	}{
		{"Republic Day", date(2026, time.January, 26)},     // Monday
		{"Independence Day", date(2025, time.August, 15)},  // Friday
		{"Gandhi Jayanti", date(2025, time.October, 2)},    // Thursday
	}

	for _, tt := range tests {
		if svc.IsWorkday(tt.day) {
			t.Errorf("%s (%s) should not be a workday", tt.name, tt.day.Format("2006-01-02"))
		}
		if !svc.IsHoliday(tt.day) {
			t.Errorf("%s should be a holiday", tt.name)
		}
	}
}

func TestNextWorkday(t *testing.T) {
	svc := NewWorkdayService()

	// Friday rolls over the weekend to Monday.
	next := svc.NextWorkday(date(2025, time.March, 7))
	if next.Weekday() != time.Monday || next.Day() != 10 {
		t.Errorf("NextWorkday(Fri Mar 7) = %s, expected Mon Mar 10", next.Format("2006-01-02"))
	}
}

func TestExpectedDecisionDate(t *testing.T) {
	svc := NewWorkdayService()

	tests := []struct {
		name      string
		submitted time.Time
		expected  string
	}{
		// Thu -> Fri, Mon, Tue
		{"plain weekday run", date(2025, time.March, 6), "2025-03-11"},
		// Wed -> Thu, (Fri Aug 15 is Independence Day), Mon, Tue
		{"skips a national holiday", date(2025, time.August, 13), "2025-08-19"},
		// Saturday submission starts counting from Monday
		{"weekend submission", date(2025, time.March, 8), "2025-03-12"},
	}

	for _, tt := range tests {
		got := svc.ExpectedDecisionDate(tt.submitted).Format("2006-01-02")
		if got != tt.expected {
			t.Errorf("%s: ExpectedDecisionDate(%s) = %s, expected %s",
				tt.name, tt.submitted.Format("2006-01-02"), got, tt.expected)
		}
	}
}
