package calendar

import (
	"time"

	"github.com/travigo/txc2gtfs/pkg/schedule"
)

// BankHolidays maps a TransXChange holiday name (eg. ChristmasDay, SpringBank) to the dates it falls on.
// It is built once and only read afterwards so it can be shared between workers.
type BankHolidays map[string][]time.Time

// Dates returns the dates a holiday from an operating profile falls on
func (b BankHolidays) Dates(holiday schedule.Holiday) []time.Time {
	if !holiday.Date.IsZero() {
		return []time.Time{holiday.Date}
	}

	return b[holiday.Name]
}
