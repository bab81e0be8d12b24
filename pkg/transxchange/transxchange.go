package transxchange

import (
	"github.com/travigo/txc2gtfs/pkg/schedule"
)

const (
	SectionStopPoints             = "StopPoints"
	SectionOperators              = "Operators"
	SectionRoutes                 = "Routes"
	SectionRouteSections          = "RouteSections"
	SectionJourneyPatternSections = "JourneyPatternSections"
	SectionServices               = "Services"
	SectionVehicleJourneys        = "VehicleJourneys"
)

type TransXChange struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`
	SchemaVersion        string `xml:",attr"`
	FileName             string `xml:",attr"`

	AnnotatedStopPointRefs []*AnnotatedStopPointRef
	StopPoints             []*StopPoint

	Operators         []*Operator
	LicensedOperators []*Operator

	Routes                 []*Route
	Services               []*Service
	JourneyPatternSections []*JourneyPatternSection
	RouteSections          []*RouteSection
	VehicleJourneys        []*VehicleJourney

	// Top level container elements seen while parsing
	Sections map[string]bool
}

// Validate checks every section the normaliser cannot work without is present and populated
func (doc *TransXChange) Validate() error {
	required := []struct {
		name  string
		count int
	}{
		{SectionStopPoints, len(doc.AnnotatedStopPointRefs) + len(doc.StopPoints)},
		{SectionJourneyPatternSections, len(doc.JourneyPatternSections)},
		{SectionServices, len(doc.Services)},
		{SectionVehicleJourneys, len(doc.VehicleJourneys)},
		{SectionRouteSections, len(doc.RouteSections)},
	}

	for _, section := range required {
		if !doc.Sections[section.name] {
			return &schedule.MalformedScheduleError{Section: section.name}
		}
		if section.count == 0 {
			return &schedule.MalformedScheduleError{Section: section.name, Reason: "is empty"}
		}
	}

	return nil
}
