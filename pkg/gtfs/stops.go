package gtfs

import (
	"strings"

	"github.com/travigo/txc2gtfs/pkg/naptan"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/util"
)

// Stop names containing one of these already say which street they are on
var streetBlacklist = []string{"Road", "Street", "Lane", "Avenue"}

// shouldAddStreet is true when the street says something the stop name does not
func shouldAddStreet(name string, street string) bool {
	if len(street) <= 1 || name == street || street == "---" {
		return false
	}

	for _, word := range streetBlacklist {
		if strings.Contains(name, word) {
			return false
		}
	}

	return true
}

func naptanStopName(stop *naptan.Stop) string {
	var name strings.Builder
	name.WriteString(stop.CommonName)

	if stop.Indicator != "" {
		name.WriteString(" (" + strings.ReplaceAll(stop.Indicator, "->", "") + ")")
	}
	if shouldAddStreet(stop.CommonName, stop.Street) {
		name.WriteString(", " + stop.Street)
	}
	name.WriteString(", " + stop.City())

	return name.String()
}

func naptanStop(stop *naptan.Stop, fallback schedule.StopPoint) Stop {
	longitude, latitude, ok := stop.Coordinates()
	if !ok {
		longitude, latitude = fallback.Location.WGS84()
	}

	return Stop{
		ID:          stop.AtcoCode,
		Code:        stop.NaptanCode,
		Name:        naptanStopName(stop),
		Description: stop.CommonName,
		Latitude:    latitude,
		Longitude:   longitude,
	}
}

func documentStop(stopPoint schedule.StopPoint) Stop {
	longitude, latitude := stopPoint.Location.WGS84()

	return Stop{
		ID:        stopPoint.Ref,
		Code:      stopPoint.Ref,
		Name:      util.JoinNonEmpty(", ", stopPoint.CommonName, stopPoint.LocalityQualifier),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func (f *Feed) addStops(doc *schedule.Schedule) {
	for _, stopPoint := range doc.StopPoints {
		if f.seenStops[stopPoint.Ref] {
			continue
		}
		f.seenStops[stopPoint.Ref] = true

		if naptanRow, exists := f.options.NaPTAN.Lookup(stopPoint.Ref); exists {
			f.Stops = append(f.Stops, naptanStop(naptanRow, stopPoint))
		} else {
			f.Stops = append(f.Stops, documentStop(stopPoint))
		}
	}
}
