package services

import (
	"time"

	"github.com/rickar/cal/v2"
)

// WorkdayService answers business-day questions for the review pipeline.
// Weekends and the Indian national holidays below are non-working days.
type WorkdayService struct {
	calendar *cal.BusinessCalendar
}

// DecisionWorkdays is how many working days a reviewer has to reach a
// first decision on a new application.
const DecisionWorkdays = 3

var nationalHolidays = []*cal.Holiday{
	{
		Name:  "Republic Day",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   26,
		Func:  cal.CalcDayOfMonth,
	},
	{
		Name:  "Independence Day",
		Type:  cal.ObservancePublic,
		Month: time.August,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	},
	{
		Name:  "Gandhi Jayanti",
		Type:  cal.ObservancePublic,
		Month: time.October,
		Day:   2,
		Func:  cal.CalcDayOfMonth,
	},
}

func NewWorkdayService() *WorkdayService {
	c := cal.NewBusinessCalendar()
	c.Name = "India"
	c.AddHoliday(nationalHolidays...)
	return &WorkdayService{calendar: c}
}

func (s *WorkdayService) IsWorkday(t time.Time) bool {
	return s.calendar.IsWorkday(t)
}

func (s *WorkdayService) IsHoliday(t time.Time) bool {
	return !s.calendar.IsWorkday(t)
}

// NextWorkday returns the first working day strictly after t.
func (s *WorkdayService) NextWorkday(t time.Time) time.Time {
	return s.calendar.WorkdaysFrom(t, 1)
}

// ExpectedDecisionDate returns the working day by which a submission made
// at submittedAt should have a first decision.
func (s *WorkdayService) ExpectedDecisionDate(submittedAt time.Time) time.Time {
	return s.calendar.WorkdaysFrom(submittedAt, DecisionWorkdays)
}
