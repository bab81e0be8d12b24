package holidays

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/util"
)

var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

type govUKEvent struct {
	Title string
	Date  string
}

type govUKDivision struct {
	Division string
	Events   []govUKEvent
}

type govUKBankHolidays struct {
	EnglandAndWales govUKDivision `json:"england-and-wales"`
	Scotland        govUKDivision `json:"scotland"`
	NorthernIreland govUKDivision `json:"northern-ireland"`
}

// gov.uk event titles to TransXChange holiday names. The dates are the observed bank holidays so
// a Christmas Day falling on a weekend maps to the substitute day.
var govUKTitles = map[string]string{
	"Christmas Day":          "ChristmasDayHoliday",
	"Boxing Day":             "BoxingDayHoliday",
	"New Year’s Day":         "NewYearsDayHoliday",
	"New Year's Day":         "NewYearsDayHoliday",
	"Good Friday":            "GoodFriday",
	"Easter Monday":          "EasterMonday",
	"Early May bank holiday": "MayDay",
	"Spring bank holiday":    "SpringBank",
	"St Andrew's Day":        "StAndrewsDayHoliday",
	"St Andrew’s Day":        "StAndrewsDayHoliday",
	"2nd January":            "Jan2ndScotlandHoliday",
}

// FetchGovUK downloads the gov.uk bank holiday feed and converts it
func FetchGovUK(ctx context.Context, url string) (calendar.BankHolidays, error) {
	body, err := util.Download(ctx, url)
	if err != nil {
		return nil, err
	}

	return ParseGovUK(body)
}

// ParseGovUK converts the gov.uk bank-holidays.json document into bank holidays keyed by TransXChange name
func ParseGovUK(body []byte) (calendar.BankHolidays, error) {
	var raw govUKBankHolidays
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding bank holidays")
	}

	holidays := builder{}

	for _, division := range []govUKDivision{raw.EnglandAndWales, raw.Scotland, raw.NorthernIreland} {
		for _, event := range division.Events {
			eventDate, err := time.Parse(schedule.DateFormat, event.Date)
			if err != nil {
				return nil, errors.Wrapf(err, "bank holiday %s", event.Title)
			}

			holidays.add(holidayName(division.Division, event.Title), eventDate)
		}
	}

	holidays.addFixedDays()
	holidays.addGroups()

	bankHolidays := holidays.freeze()
	log.Debug().Int("holidays", len(bankHolidays)).Msg("Loaded gov.uk bank holidays")

	return bankHolidays, nil
}

func holidayName(division string, title string) string {
	// The summer bank holiday is at the start of August in Scotland and the end everywhere else
	if title == "Summer bank holiday" {
		if division == "scotland" {
			return "AugustBankHolidayScotland"
		}
		return "LateSummerBankHolidayNotScotland"
	}

	if name, exists := govUKTitles[title]; exists {
		return name
	}

	name := nonAlphanumericRegex.ReplaceAllString(title, "")
	log.Debug().Str("title", title).Str("name", name).Msg("Unknown bank holiday")

	return name
}
