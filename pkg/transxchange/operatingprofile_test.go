package transxchange

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/txc2gtfs/pkg/schedule"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestOperatingProfileParse(t *testing.T) {
	for _, tc := range []struct {
		name     string
		xml      string
		expected *schedule.OperatingProfile
	}{
		{
			name: "days of week union",
			xml:  `<RegularDayType><DaysOfWeek><MondayToFriday /><Saturday /></DaysOfWeek></RegularDayType>`,
			expected: &schedule.OperatingProfile{
				RegularDayType: schedule.RegularDayType{DaysOfWeek: []string{"MondayToFriday", "Saturday"}},
			},
		},
		{
			name: "holidays only",
			xml:  `<RegularDayType><HolidaysOnly /></RegularDayType><BankHolidayOperation><DaysOfOperation><ChristmasDay /></DaysOfOperation></BankHolidayOperation>`,
			expected: &schedule.OperatingProfile{
				RegularDayType: schedule.RegularDayType{HolidaysOnly: true},
				BankHolidayOperation: schedule.BankHolidayOperation{
					DaysOfOperation: []schedule.Holiday{{Name: "ChristmasDay"}},
				},
			},
		},
		{
			name: "empty days of week runs on no days",
			xml:  `<RegularDayType><DaysOfWeek /></RegularDayType>`,
			expected: &schedule.OperatingProfile{
				RegularDayType: schedule.RegularDayType{},
			},
		},
		{
			name: "bank holidays",
			xml: `<RegularDayType><DaysOfWeek><Sunday /></DaysOfWeek></RegularDayType>
<BankHolidayOperation>
  <DaysOfOperation><GoodFriday /><OtherPublicHoliday><Description>Coronation</Description><Date>2023-05-08</Date></OtherPublicHoliday><EasterMonday /></DaysOfOperation>
  <DaysOfNonOperation><ChristmasDay /><BoxingDay /></DaysOfNonOperation>
</BankHolidayOperation>`,
			expected: &schedule.OperatingProfile{
				RegularDayType: schedule.RegularDayType{DaysOfWeek: []string{"Sunday"}},
				BankHolidayOperation: schedule.BankHolidayOperation{
					DaysOfOperation: []schedule.Holiday{
						{Name: "GoodFriday"},
						{Name: "OtherPublicHoliday", Description: "Coronation", Date: date(2023, time.May, 8)},
						{Name: "EasterMonday"},
					},
					DaysOfNonOperation: []schedule.Holiday{{Name: "ChristmasDay"}, {Name: "BoxingDay"}},
				},
			},
		},
		{
			name: "special days",
			xml: `<RegularDayType><DaysOfWeek><MondayToFriday /></DaysOfWeek></RegularDayType>
<SpecialDaysOperation>
  <DaysOfNonOperation>
    <DateRange><StartDate>2024-03-01</StartDate><EndDate>2024-03-03</EndDate></DateRange>
    <DateRange><StartDate>2024-08-01</StartDate></DateRange>
  </DaysOfNonOperation>
  <DaysOfOperation>
    <DateRange><StartDate>2024-12-27</StartDate><EndDate>2024-12-27</EndDate></DateRange>
  </DaysOfOperation>
</SpecialDaysOperation>`,
			expected: &schedule.OperatingProfile{
				RegularDayType: schedule.RegularDayType{DaysOfWeek: []string{"MondayToFriday"}},
				SpecialDaysOperation: schedule.SpecialDaysOperation{
					DaysOfNonOperation: []schedule.DateRange{
						{Start: date(2024, time.March, 1), End: date(2024, time.March, 3)},
						{Start: date(2024, time.August, 1), End: date(2099, time.December, 31)},
					},
					DaysOfOperation: []schedule.DateRange{
						{Start: date(2024, time.December, 27), End: date(2024, time.December, 27)},
					},
				},
			},
		},
		{
			name: "serviced organisations are ignored",
			xml: `<RegularDayType><DaysOfWeek><MondayToFriday /></DaysOfWeek></RegularDayType>
<ServicedOrganisationDayType><DaysOfOperation><WorkingDays><ServicedOrganisationRef>SCH1</ServicedOrganisationRef></WorkingDays></DaysOfOperation></ServicedOrganisationDayType>`,
			expected: &schedule.OperatingProfile{
				RegularDayType: schedule.RegularDayType{DaysOfWeek: []string{"MondayToFriday"}},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			profile := OperatingProfile{XMLValue: tc.xml}

			parsed, err := profile.Parse()

			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestOperatingProfileParseInvalidDate(t *testing.T) {
	profile := OperatingProfile{XMLValue: `<RegularDayType><DaysOfWeek><Monday /></DaysOfWeek></RegularDayType>
<SpecialDaysOperation><DaysOfNonOperation><DateRange><StartDate>01/03/2024</StartDate></DateRange></DaysOfNonOperation></SpecialDaysOperation>`}

	_, err := profile.Parse()

	var malformed *schedule.MalformedScheduleError
	assert.True(t, errors.As(err, &malformed))
}
