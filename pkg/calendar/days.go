package calendar

import (
	"strings"
	"time"
)

// Days is a day of week mask, index 0 is Monday and 6 is Sunday
type Days [7]bool

var daysOfWeekIndex = map[string]Days{
	"MondayToFriday":   {true, true, true, true, true, false, false},
	"MondayToSaturday": {true, true, true, true, true, true, false},
	"MondayToSunday":   {true, true, true, true, true, true, true},
	"NotSaturday":      {true, true, true, true, true, false, true},
	"Weekend":          {false, false, false, false, false, true, true},
	"Monday":           {true, false, false, false, false, false, false},
	"Tuesday":          {false, true, false, false, false, false, false},
	"Wednesday":        {false, false, true, false, false, false, false},
	"Thursday":         {false, false, false, true, false, false, false},
	"Friday":           {false, false, false, false, true, false, false},
	"Saturday":         {false, false, false, false, false, true, false},
	"Sunday":           {false, false, false, false, false, false, true},
}

// DaysOf returns the mask for a single named day pattern. Unknown names run on no days.
func DaysOf(name string) Days {
	return daysOfWeekIndex[name]
}

// MergeDays ORs together every named day pattern
func MergeDays(names []string) Days {
	var days Days
	for _, name := range names {
		days = days.Merge(DaysOf(name))
	}
	return days
}

func (d Days) Merge(other Days) Days {
	var merged Days
	for i := range d {
		merged[i] = d[i] || other[i]
	}
	return merged
}

func (d Days) RunsOn(weekday time.Weekday) bool {
	return d[(int(weekday)+6)%7]
}

func (d Days) IsZero() bool {
	return d == Days{}
}

// String renders the mask as seven 0/1 digits, Monday first
func (d Days) String() string {
	var builder strings.Builder
	for _, day := range d {
		if day {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}
