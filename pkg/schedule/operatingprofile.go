package schedule

import "time"

type OperatingProfile struct {
	RegularDayType       RegularDayType
	BankHolidayOperation BankHolidayOperation
	SpecialDaysOperation SpecialDaysOperation
}

// RegularDayType is either a union of named day patterns (eg. MondayToFriday, Saturday) or holidays only
type RegularDayType struct {
	HolidaysOnly bool
	DaysOfWeek   []string
}

type BankHolidayOperation struct {
	DaysOfOperation    []Holiday
	DaysOfNonOperation []Holiday
}

type SpecialDaysOperation struct {
	DaysOfOperation    []DateRange
	DaysOfNonOperation []DateRange
}

// Holiday is a named bank holiday. OtherPublicHoliday entries carry their own date.
type Holiday struct {
	Name        string
	Description string
	Date        time.Time
}
