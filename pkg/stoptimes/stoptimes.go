package stoptimes

import (
	"fmt"
	"time"

	"github.com/travigo/txc2gtfs/pkg/schedule"
)

type StopTime struct {
	Stop          string
	ArrivalTime   time.Duration
	DepartureTime time.Duration
	Pickup        bool
	Dropoff       bool
	ExactTime     bool
}

// Build works out the time a journey leaving at departureTime calls at every stop of its timing links.
// Times are offsets from midnight of the service day.
func Build(timingLinks []schedule.TimingLink, departureTime time.Duration) ([]StopTime, error) {
	if len(timingLinks) == 0 {
		return nil, &schedule.MalformedScheduleError{Section: "JourneyPattern", Reason: "has no timing links"}
	}
	for _, link := range timingLinks {
		if link.RunTime < 0 || link.From.WaitTime < 0 || link.To.WaitTime < 0 {
			return nil, &schedule.MalformedScheduleError{
				Section: fmt.Sprintf("JourneyPatternTimingLink %s", link.ID),
				Reason:  "has a negative run or wait time",
			}
		}
	}

	stopTimes := make([]StopTime, 0, len(timingLinks)+1)

	first := timingLinks[0]
	currentDepartureTime := departureTime + first.From.WaitTime

	stopTimes = append(stopTimes, StopTime{
		Stop:          first.From.StopRef,
		ArrivalTime:   currentDepartureTime,
		DepartureTime: currentDepartureTime,
		Pickup:        true,
		Dropoff:       false,
		ExactTime:     first.From.IsTimingPoint(),
	})

	for i := 1; i < len(timingLinks); i++ {
		previous := timingLinks[i-1]
		current := timingLinks[i]

		arrivalTime := currentDepartureTime + previous.RunTime + previous.To.WaitTime
		currentDepartureTime = arrivalTime + current.From.WaitTime

		stopTimes = append(stopTimes, callingAt(previous.To, arrivalTime, currentDepartureTime))
	}

	// Nothing leaves the last stop so there is no origin wait to add
	last := timingLinks[len(timingLinks)-1]
	arrivalTime := currentDepartureTime + last.RunTime + last.To.WaitTime
	stopTimes = append(stopTimes, callingAt(last.To, arrivalTime, arrivalTime))

	return stopTimes, nil
}

func callingAt(stop schedule.JourneyStop, arrivalTime time.Duration, departureTime time.Duration) StopTime {
	return StopTime{
		Stop:          stop.StopRef,
		ArrivalTime:   arrivalTime,
		DepartureTime: departureTime,
		Pickup:        stop.Activity.Pickup(),
		Dropoff:       stop.Activity.Dropoff(),
		ExactTime:     stop.IsTimingPoint(),
	}
}

// FormatTime renders an offset from midnight as HH:MM:SS. Hours keep counting past 24
// for journeys running after midnight.
func FormatTime(offset time.Duration) string {
	seconds := int64(offset / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
