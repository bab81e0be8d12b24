package calendar

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"golang.org/x/exp/slices"
)

const (
	// Non-operation ranges ending in or after this year are treated as running forever
	openEndedYear = 2037

	// Non-operation ranges at least this many days long are not expanded into excluded dates
	maxExpandedRangeDays = 92
)

// Calendar is a deduplicated set of service days
type Calendar struct {
	ID        int
	StartDate time.Time
	EndDate   time.Time
	Days      Days
	Includes  []time.Time
	Excludes  []time.Time
}

// Builder turns operating profiles into calendars for a single document.
// It is not safe for concurrent use, each document gets its own.
type Builder struct {
	holidays BankHolidays

	calendars map[string]*Calendar
	ordered   []*Calendar
}

func NewBuilder(holidays BankHolidays) *Builder {
	return &Builder{
		holidays:  holidays,
		calendars: map[string]*Calendar{},
	}
}

// Build returns the calendar for a journey running to profile within the service's operating period.
// Equivalent calendars share one instance and ID.
func (b *Builder) Build(profile *schedule.OperatingProfile, service *schedule.Service) *Calendar {
	var days Days
	if !profile.RegularDayType.HolidaysOnly {
		days = MergeDays(profile.RegularDayType.DaysOfWeek)
	}

	startDate := service.OperatingPeriod.Start
	endDate := service.OperatingPeriod.End
	var includes []time.Time
	var excludes []time.Time

	for _, dates := range profile.SpecialDaysOperation.DaysOfNonOperation {
		switch {
		case !dates.Start.After(startDate):
			startDate = dates.End.AddDate(0, 0, 1)
		case !dates.End.Before(endDate) || dates.End.Year() >= openEndedYear:
			endDate = dates.Start.AddDate(0, 0, -1)
		case daysBetween(dates.Start, dates.End) < maxExpandedRangeDays:
			excludes = append(excludes, datesInRange(dates.Start, dates.End, days)...)
		default:
			log.Warn().
				Str("service", service.ServiceCode).
				Str("start", dates.Start.Format(schedule.DateFormat)).
				Str("end", dates.End.Format(schedule.DateFormat)).
				Msg("Ignored extra long break in service")
		}
	}

	if len(profile.SpecialDaysOperation.DaysOfOperation) > 0 {
		log.Debug().
			Str("service", service.ServiceCode).
			Int("ranges", len(profile.SpecialDaysOperation.DaysOfOperation)).
			Msg("Special days of operation are not applied to calendars")
	}

	for _, holiday := range profile.BankHolidayOperation.DaysOfNonOperation {
		excludes = append(excludes, b.holidayDates(holiday, startDate)...)
	}
	for _, holiday := range profile.BankHolidayOperation.DaysOfOperation {
		includes = append(includes, b.holidayDates(holiday, startDate)...)
	}

	// The window has been truncated away entirely so nothing runs
	if startDate.After(endDate) {
		days = Days{}
		endDate = startDate
		includes = nil
		excludes = nil
	}

	includes = sortedDates(includes)
	excludes = sortedDates(excludes)

	key := calendarKey(days, startDate, endDate, includes, excludes)
	if calendar, exists := b.calendars[key]; exists {
		return calendar
	}

	calendar := &Calendar{
		ID:        len(b.ordered) + 1,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		Includes:  includes,
		Excludes:  excludes,
	}
	b.calendars[key] = calendar
	b.ordered = append(b.ordered, calendar)

	return calendar
}

// Calendars returns every calendar built so far in ID order
func (b *Builder) Calendars() []*Calendar {
	return slices.Clone(b.ordered)
}

func (b *Builder) holidayDates(holiday schedule.Holiday, startDate time.Time) []time.Time {
	var dates []time.Time
	for _, date := range b.holidays.Dates(holiday) {
		if date.After(startDate) {
			dates = append(dates, date)
		}
	}
	return dates
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// datesInRange lists every date from..to inclusive that days runs on
func datesInRange(from time.Time, to time.Time, days Days) []time.Time {
	var dates []time.Time
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if days.RunsOn(date.Weekday()) {
			dates = append(dates, date)
		}
	}
	return dates
}

func sortedDates(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return nil
	}

	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, func(a time.Time, b time.Time) int {
		return a.Compare(b)
	})

	return slices.CompactFunc(sorted, func(a time.Time, b time.Time) bool {
		return a.Equal(b)
	})
}

func calendarKey(days Days, startDate time.Time, endDate time.Time, includes []time.Time, excludes []time.Time) string {
	return strings.Join([]string{
		days.String(),
		startDate.Format(schedule.DateFormat),
		endDate.Format(schedule.DateFormat),
		joinDates(includes),
		joinDates(excludes),
	}, "_")
}

func joinDates(dates []time.Time) string {
	formatted := make([]string, 0, len(dates))
	for _, date := range dates {
		formatted = append(formatted, date.Format(schedule.DateFormat))
	}
	return strings.Join(formatted, ",")
}
