package transxchange

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/schedule"
)

type VehicleJourney struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`
	SequenceNumber       string `xml:",attr"`

	PrivateCode        string
	OperatorRef        string
	Direction          string
	GarageRef          string
	VehicleJourneyCode string
	VehicleJourneyRef  string
	ServiceRef         string
	LineRef            string
	JourneyPatternRef  string
	DepartureTime      string
	DestinationDisplay string

	Frequency *struct {
		EndTime  string
		Interval *struct {
			ScheduledFrequency string
		}
	}

	Operational struct {
		TicketMachine struct {
			TicketMachineServiceCode string
			JourneyCode              string
		}
		Block struct {
			BlockNumber string
		}
	}

	VehicleJourneyTimingLinks []VehicleJourneyTimingLink `xml:"VehicleJourneyTimingLink"`

	OperatingProfile *OperatingProfile
}

type VehicleJourneyTimingLink struct {
	ID string `xml:"id,attr"`

	JourneyPatternTimingLinkRef string
	RunTime                     string

	From JourneyPatternTimingLinkPoint
	To   JourneyPatternTimingLinkPoint
}

const clockFormat = "15:04:05"

// expandFrequencies turns every frequency based journey into one journey per interval up to its end time.
// Copies are placed straight after the journey they came from.
func expandFrequencies(vehicleJourneys []*VehicleJourney) ([]*VehicleJourney, error) {
	expanded := make([]*VehicleJourney, 0, len(vehicleJourneys))

	for _, txcJourney := range vehicleJourneys {
		expanded = append(expanded, txcJourney)

		if txcJourney.Frequency == nil || txcJourney.Frequency.Interval == nil {
			continue
		}

		departureTime, err := time.Parse(clockFormat, txcJourney.DepartureTime)
		if err != nil {
			return nil, &schedule.MalformedScheduleError{
				Section: fmt.Sprintf("VehicleJourney %s", txcJourney.VehicleJourneyCode),
				Reason:  fmt.Sprintf("has invalid departure time %q", txcJourney.DepartureTime),
			}
		}
		endTime, err := time.Parse(clockFormat, txcJourney.Frequency.EndTime)
		if err != nil {
			return nil, &schedule.MalformedScheduleError{
				Section: fmt.Sprintf("VehicleJourney %s", txcJourney.VehicleJourneyCode),
				Reason:  fmt.Sprintf("has invalid frequency end time %q", txcJourney.Frequency.EndTime),
			}
		}
		interval, err := parseDuration(txcJourney.Frequency.Interval.ScheduledFrequency, "ScheduledFrequency")
		if err != nil {
			return nil, err
		}
		if interval <= 0 {
			return nil, &schedule.InvalidDurationError{Value: txcJourney.Frequency.Interval.ScheduledFrequency, Field: "ScheduledFrequency"}
		}

		for newDepartureTime := departureTime.Add(interval); !newDepartureTime.After(endTime); newDepartureTime = newDepartureTime.Add(interval) {
			var copiedJourney VehicleJourney
			err := copier.CopyWithOption(&copiedJourney, *txcJourney, copier.Option{IgnoreEmpty: true, DeepCopy: true})
			if err != nil {
				return nil, err
			}

			copiedJourney.Frequency = nil
			copiedJourney.DepartureTime = newDepartureTime.Format(clockFormat)
			copiedJourney.VehicleJourneyCode = fmt.Sprintf("%s-%s", txcJourney.VehicleJourneyCode, copiedJourney.DepartureTime)

			expanded = append(expanded, &copiedJourney)
		}

		log.Debug().
			Str("vehiclejourney", txcJourney.VehicleJourneyCode).
			Str("interval", txcJourney.Frequency.Interval.ScheduledFrequency).
			Msg("Expanded frequency based journey")
	}

	return expanded, nil
}
