package transxchange

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/schedule"
)

type OperatingProfile struct {
	XMLValue string `xml:",innerxml" json:"-"`
}

var openEndedDate = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// Parse walks the raw profile element by element, the schema nests day names as empty elements
// so decoding straight into a struct loses them
func (operatingProfile *OperatingProfile) Parse() (*schedule.OperatingProfile, error) {
	profile := &schedule.OperatingProfile{}

	elementChain := []string{}
	seenDaysOfWeek := false

	d := xml.NewDecoder(strings.NewReader(operatingProfile.XMLValue))
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			return nil, &schedule.MalformedScheduleError{Section: "OperatingProfile", Reason: err.Error()}
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			elementChain = append(elementChain, ty.Name.Local)

			switch elementChain[0] {
			case "RegularDayType":
				if len(elementChain) == 2 && elementChain[1] == "DaysOfWeek" {
					seenDaysOfWeek = true
				}
				if len(elementChain) == 2 && elementChain[1] == "HolidaysOnly" {
					profile.RegularDayType.HolidaysOnly = true
				}
				if len(elementChain) == 3 && elementChain[1] == "DaysOfWeek" {
					profile.RegularDayType.DaysOfWeek = append(profile.RegularDayType.DaysOfWeek, elementChain[2])
				}
			case "BankHolidayOperation":
				if len(elementChain) != 3 {
					break
				}

				var holiday schedule.Holiday
				if elementChain[2] == "OtherPublicHoliday" {
					var otherPublicHoliday struct {
						Description string
						Date        string
					}
					if err = d.DecodeElement(&otherPublicHoliday, &ty); err != nil {
						return nil, &schedule.MalformedScheduleError{Section: "OperatingProfile", Reason: err.Error()}
					}
					// DecodeElement consumed the end element
					elementChain = elementChain[:len(elementChain)-1]

					date, ok := parseDate(otherPublicHoliday.Date)
					if !ok {
						return nil, &schedule.MalformedScheduleError{
							Section: "OperatingProfile",
							Reason:  fmt.Sprintf("has invalid public holiday date %q", otherPublicHoliday.Date),
						}
					}
					holiday = schedule.Holiday{Name: "OtherPublicHoliday", Description: otherPublicHoliday.Description, Date: date}
				} else {
					holiday = schedule.Holiday{Name: elementChain[2]}
				}

				switch elementChain[1] {
				case "DaysOfOperation":
					profile.BankHolidayOperation.DaysOfOperation = append(profile.BankHolidayOperation.DaysOfOperation, holiday)
				case "DaysOfNonOperation":
					profile.BankHolidayOperation.DaysOfNonOperation = append(profile.BankHolidayOperation.DaysOfNonOperation, holiday)
				}
			case "SpecialDaysOperation":
				if len(elementChain) != 3 || elementChain[2] != "DateRange" {
					break
				}

				var dateRange DateRange
				if err = d.DecodeElement(&dateRange, &ty); err != nil {
					return nil, &schedule.MalformedScheduleError{Section: "OperatingProfile", Reason: err.Error()}
				}
				elementChain = elementChain[:len(elementChain)-1]

				parsed, err := dateRange.toSchedule()
				if err != nil {
					return nil, err
				}

				switch elementChain[1] {
				case "DaysOfOperation":
					profile.SpecialDaysOperation.DaysOfOperation = append(profile.SpecialDaysOperation.DaysOfOperation, parsed)
				case "DaysOfNonOperation":
					profile.SpecialDaysOperation.DaysOfNonOperation = append(profile.SpecialDaysOperation.DaysOfNonOperation, parsed)
				}
			case "PeriodicDayType", "ServicedOrganisationDayType":
				if len(elementChain) == 1 {
					log.Debug().Msgf("Ignoring unsupported OperatingProfile type %s", elementChain[0])
				}
			}
		case xml.EndElement:
			elementChain = elementChain[:len(elementChain)-1]
		}
	}

	// A regular day type without any days of week means the journey only runs on the listed holidays
	if !seenDaysOfWeek {
		profile.RegularDayType.HolidaysOnly = true
	}

	return profile, nil
}

func (dateRange DateRange) toSchedule() (schedule.DateRange, error) {
	start, ok := parseDate(dateRange.StartDate)
	if !ok {
		return schedule.DateRange{}, &schedule.MalformedScheduleError{
			Section: "DateRange",
			Reason:  fmt.Sprintf("has invalid start date %q", dateRange.StartDate),
		}
	}

	end := openEndedDate
	if strings.TrimSpace(dateRange.EndDate) != "" {
		end, ok = parseDate(dateRange.EndDate)
		if !ok {
			return schedule.DateRange{}, &schedule.MalformedScheduleError{
				Section: "DateRange",
				Reason:  fmt.Sprintf("has invalid end date %q", dateRange.EndDate),
			}
		}
	}

	return schedule.DateRange{Start: start, End: end}, nil
}
