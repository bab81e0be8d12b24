package transxchange

import (
	"strconv"
	"strings"

	"github.com/travigo/txc2gtfs/pkg/geo"
	"github.com/travigo/txc2gtfs/pkg/schedule"
)

// Documents come in a handful of shapes. Each is picked once when normalising starts
// and resolved by its own type.

type stopSource interface {
	stopPoints() []schedule.StopPoint
}

type annotatedStops []*AnnotatedStopPointRef

func (stops annotatedStops) stopPoints() []schedule.StopPoint {
	stopPoints := make([]schedule.StopPoint, 0, len(stops))
	for _, stop := range stops {
		stopPoints = append(stopPoints, schedule.StopPoint{
			Ref:               strings.TrimSpace(stop.StopPointRef),
			CommonName:        stop.CommonName,
			LocalityName:      stop.LocalityName,
			LocalityQualifier: stop.LocalityQualifier,
			Location:          resolveLocation(stop.Location),
		})
	}
	return stopPoints
}

type fullStops []*StopPoint

func (stops fullStops) stopPoints() []schedule.StopPoint {
	stopPoints := make([]schedule.StopPoint, 0, len(stops))
	for _, stop := range stops {
		qualifier := stop.Suburb
		if qualifier == "" {
			qualifier = stop.Town
		}

		stopPoints = append(stopPoints, schedule.StopPoint{
			Ref:               strings.TrimSpace(stop.AtcoCode),
			CommonName:        stop.CommonName,
			LocalityName:      stop.NptgLocalityRef,
			LocalityQualifier: qualifier,
			Location:          resolveLocation(stop.Location),
		})
	}
	return stopPoints
}

func stopSourceOf(doc *TransXChange) stopSource {
	if len(doc.AnnotatedStopPointRefs) > 0 {
		return annotatedStops(doc.AnnotatedStopPointRefs)
	}
	return fullStops(doc.StopPoints)
}

type operatorSource interface {
	operators() map[string]schedule.Operator
}

type plainOperators []*Operator

func (o plainOperators) operators() map[string]schedule.Operator {
	return operatorTable(o)
}

// Licensed operators carry the same fields, only the container differs
type licensedOperators []*Operator

func (o licensedOperators) operators() map[string]schedule.Operator {
	return operatorTable(o)
}

func operatorTable(txcOperators []*Operator) map[string]schedule.Operator {
	operators := map[string]schedule.Operator{}
	for _, operator := range txcOperators {
		scheduleOperator := schedule.Operator{
			ID:                   operator.ID,
			Code:                 strings.TrimSpace(operator.OperatorCode),
			NationalOperatorCode: strings.TrimSpace(operator.NationalOperatorCode),
			ShortName:            strings.TrimSpace(operator.OperatorShortName),
			NameOnLicence:        strings.TrimSpace(operator.OperatorNameOnLicence),
		}
		if scheduleOperator.Code == "" {
			scheduleOperator.Code = scheduleOperator.NationalOperatorCode
		}
		operators[operator.ID] = scheduleOperator
	}
	return operators
}

func operatorSourceOf(doc *TransXChange) operatorSource {
	if len(doc.Operators) > 0 {
		return plainOperators(doc.Operators)
	}
	return licensedOperators(doc.LicensedOperators)
}

// patternIndex maps a vehicle journey code to the journey pattern it explicitly references
type patternIndex map[string]string

type patternRef interface {
	resolve(index patternIndex) (string, bool)
	String() string
}

type directPatternRef string

func (ref directPatternRef) resolve(patternIndex) (string, bool) {
	return string(ref), true
}

func (ref directPatternRef) String() string {
	return string(ref)
}

// indexedPatternRef borrows the pattern of the sibling journey it names
type indexedPatternRef string

func (ref indexedPatternRef) resolve(index patternIndex) (string, bool) {
	pattern, ok := index[string(ref)]
	return pattern, ok
}

func (ref indexedPatternRef) String() string {
	return string(ref)
}

func patternRefOf(vehicleJourney *VehicleJourney) patternRef {
	if vehicleJourney.JourneyPatternRef != "" {
		return directPatternRef(vehicleJourney.JourneyPatternRef)
	}
	return indexedPatternRef(vehicleJourney.VehicleJourneyRef)
}

func buildPatternIndex(vehicleJourneys []*VehicleJourney) patternIndex {
	index := patternIndex{}
	for _, vehicleJourney := range vehicleJourneys {
		if vehicleJourney.JourneyPatternRef != "" {
			index[vehicleJourney.VehicleJourneyCode] = vehicleJourney.JourneyPatternRef
		}
	}
	return index
}

// resolveLocation prefers native lon/lat, then the translation lon/lat, then either easting/northing pair
func resolveLocation(location *Location) schedule.Location {
	if location == nil {
		return schedule.Location{}
	}

	candidates := []*LocationInner{&location.LocationInner}
	if location.Translation != nil {
		candidates = append(candidates, location.Translation)
	}

	for _, candidate := range candidates {
		longitude, lonErr := strconv.ParseFloat(strings.TrimSpace(candidate.Longitude), 64)
		latitude, latErr := strconv.ParseFloat(strings.TrimSpace(candidate.Latitude), 64)
		if lonErr == nil && latErr == nil {
			return schedule.LonLat(longitude, latitude)
		}
	}

	for _, candidate := range candidates {
		easting := strings.TrimSpace(candidate.Easting)
		northing := strings.TrimSpace(candidate.Northing)
		if easting == "" || northing == "" {
			continue
		}

		eastingValue, eastingErr := strconv.ParseFloat(easting, 64)
		northingValue, northingErr := strconv.ParseFloat(northing, 64)
		if eastingErr == nil && northingErr == nil {
			return schedule.Grid(eastingValue, northingValue)
		}

		// Some exports put lettered grid references in here
		longitude, latitude, err := geo.FromGridReference(easting + " " + northing)
		if err == nil {
			return schedule.LonLat(longitude, latitude)
		}
	}

	return schedule.Location{}
}
