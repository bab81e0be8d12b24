package holidays

import (
	"time"

	"github.com/travigo/txc2gtfs/pkg/calendar"
	"golang.org/x/exp/slices"
)

const DefaultURL = "https://www.gov.uk/bank-holidays.json"

// Days that fall on the same date every year, whether or not they are a bank holiday that year
var fixedDays = map[string]struct {
	month time.Month
	day   int
}{
	"ChristmasEve":   {time.December, 24},
	"ChristmasDay":   {time.December, 25},
	"BoxingDay":      {time.December, 26},
	"NewYearsEve":    {time.December, 31},
	"NewYearsDay":    {time.January, 1},
	"Jan2ndScotland": {time.January, 2},
	"StAndrewsDay":   {time.November, 30},
}

var groups = map[string][]string{
	"Christmas":   {"ChristmasDay", "BoxingDay"},
	"EarlyRunOff": {"ChristmasEve", "NewYearsEve"},
	"HolidayMondays": {
		"EasterMonday", "MayDay", "SpringBank",
		"LateSummerBankHolidayNotScotland", "AugustBankHolidayScotland",
	},
	"DisplacementHolidays": {
		"ChristmasDayHoliday", "BoxingDayHoliday", "NewYearsDayHoliday",
		"Jan2ndScotlandHoliday", "StAndrewsDayHoliday",
	},
	"AllHolidaysExceptChristmas": {
		"NewYearsDay", "Jan2ndScotland", "GoodFriday", "EasterMonday", "MayDay", "SpringBank",
		"LateSummerBankHolidayNotScotland", "AugustBankHolidayScotland", "StAndrewsDay",
	},
	"AllBankHolidays": {
		"ChristmasDay", "BoxingDay", "NewYearsDay", "Jan2ndScotland", "GoodFriday", "EasterMonday", "MayDay",
		"SpringBank", "LateSummerBankHolidayNotScotland", "AugustBankHolidayScotland", "StAndrewsDay",
		"ChristmasDayHoliday", "BoxingDayHoliday", "NewYearsDayHoliday", "Jan2ndScotlandHoliday", "StAndrewsDayHoliday",
	},
}

// builder accumulates dates per holiday name before they are frozen into a calendar.BankHolidays
type builder map[string][]time.Time

func (b builder) add(name string, date time.Time) {
	b[name] = append(b[name], date)
}

// addFixedDays adds the fixed date holidays for every year any holiday already falls in
func (b builder) addFixedDays() {
	years := map[int]bool{}
	for _, dates := range b {
		for _, date := range dates {
			years[date.Year()] = true
		}
	}

	for year := range years {
		for name, day := range fixedDays {
			b.add(name, time.Date(year, day.month, day.day, 0, 0, 0, 0, time.UTC))
		}
	}
}

// addGroups fills in the holiday groups that were not given explicitly
func (b builder) addGroups() {
	for group, members := range groups {
		if _, exists := b[group]; exists {
			continue
		}

		var dates []time.Time
		for _, member := range members {
			dates = append(dates, b[member]...)
		}
		if len(dates) > 0 {
			b[group] = dates
		}
	}
}

func (b builder) freeze() calendar.BankHolidays {
	holidays := calendar.BankHolidays{}

	for name, dates := range b {
		sorted := slices.Clone(dates)
		slices.SortFunc(sorted, func(a, b time.Time) int { return a.Compare(b) })
		holidays[name] = slices.CompactFunc(sorted, func(a, b time.Time) bool { return a.Equal(b) })
	}

	return holidays
}
