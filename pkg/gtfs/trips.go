package gtfs

import (
	"fmt"
	"time"

	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/journeys"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/stoptimes"
)

const gtfsDateFormat = "20060102"

func documentID(key string, id int) string {
	if key == "" {
		return fmt.Sprint(id)
	}
	return fmt.Sprintf("%s_%d", key, id)
}

func flag(value bool) int {
	if value {
		return 1
	}
	return 0
}

// boardingType is the GTFS pickup_type/drop_off_type: 0 for a regular stop, 1 when it is not possible
func boardingType(allowed bool) int {
	return 1 - flag(allowed)
}

func directionID(direction schedule.Direction) int {
	if direction == schedule.DirectionInbound {
		return 1
	}
	return 0
}

func (f *Feed) addCalendars(key string, calendars []*calendar.Calendar) {
	for _, journeyCalendar := range calendars {
		serviceID := documentID(key, journeyCalendar.ID)
		days := journeyCalendar.Days

		f.Calendars = append(f.Calendars, Calendar{
			ServiceID: serviceID,
			Monday:    flag(days[0]),
			Tuesday:   flag(days[1]),
			Wednesday: flag(days[2]),
			Thursday:  flag(days[3]),
			Friday:    flag(days[4]),
			Saturday:  flag(days[5]),
			Sunday:    flag(days[6]),
			Start:     journeyCalendar.StartDate.Format(gtfsDateFormat),
			End:       journeyCalendar.EndDate.Format(gtfsDateFormat),
		})

		f.addCalendarDates(serviceID, journeyCalendar.Includes, ExceptionAdded)
		f.addCalendarDates(serviceID, journeyCalendar.Excludes, ExceptionRemoved)
	}
}

func (f *Feed) addCalendarDates(serviceID string, dates []time.Time, exceptionType int) {
	for _, date := range dates {
		f.CalendarDates = append(f.CalendarDates, CalendarDate{
			ServiceID:     serviceID,
			Date:          date.Format(gtfsDateFormat),
			ExceptionType: exceptionType,
		})
	}
}

func (f *Feed) addTrips(key string, documentJourneys []journeys.Journey) {
	for _, journey := range documentJourneys {
		tripID := documentID(key, journey.Trip.ID)

		f.Trips = append(f.Trips, Trip{
			RouteID:     journey.Route,
			ServiceID:   documentID(key, journey.Calendar.ID),
			ID:          tripID,
			Headsign:    journey.Trip.ShortName,
			Name:        journey.Trip.Code,
			DirectionID: directionID(journey.Trip.Direction),
			BlockID:     journey.BlockID,
			ShapeID:     journey.ShapeID,
		})

		for i, stopTime := range journey.Stops {
			f.StopTimes = append(f.StopTimes, StopTime{
				TripID:        tripID,
				ArrivalTime:   stoptimes.FormatTime(stopTime.ArrivalTime),
				DepartureTime: stoptimes.FormatTime(stopTime.DepartureTime),
				StopID:        stopTime.Stop,
				StopSequence:  i + 1,
				PickupType:    boardingType(stopTime.Pickup),
				DropOffType:   boardingType(stopTime.Dropoff),
				Timepoint:     flag(stopTime.ExactTime),
			})
		}
	}
}
