package journeys

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/stoptimes"
	"golang.org/x/exp/slices"
)

type Trip struct {
	ID        int
	Code      string
	ShortName string
	Direction schedule.Direction
}

// Journey is one vehicle journey ready to be written out as a trip
type Journey struct {
	Calendar *calendar.Calendar
	Stops    []stoptimes.StopTime
	Trip     Trip
	Route    string
	ShapeID  string
	BlockID  string
}

// Processor holds the state that lives for the processing of one document.
// Calendar and trip IDs start again from 1 with every new Processor.
type Processor struct {
	calendars *calendar.Builder
	tripID    int
}

func NewProcessor(holidays calendar.BankHolidays) *Processor {
	return &Processor{
		calendars: calendar.NewBuilder(holidays),
	}
}

func (p *Processor) Process(doc *schedule.Schedule) ([]Journey, error) {
	var journeys []Journey

	for _, vehicleJourney := range doc.VehicleJourneys {
		source := fmt.Sprintf("VehicleJourney %s", vehicleJourney.VehicleJourneyCode)

		service, ok := doc.Services[vehicleJourney.ServiceRef]
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{Kind: "service", Ref: vehicleJourney.ServiceRef, From: source}
		}
		journeyPattern, ok := service.StandardService[vehicleJourney.JourneyPatternRef]
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{Kind: "journey pattern", Ref: vehicleJourney.JourneyPatternRef, From: source}
		}

		timingLinks, err := journeyTimingLinks(doc, journeyPattern, vehicleJourney)
		if err != nil {
			return nil, err
		}
		if len(timingLinks) == 0 {
			log.Debug().Str("vehiclejourney", vehicleJourney.VehicleJourneyCode).Msg("Skipping journey with no timing links")
			continue
		}

		journeyCalendar := p.calendars.Build(vehicleJourney.OperatingProfile, service)

		stops, err := stoptimes.Build(timingLinks, vehicleJourney.DepartureTime)
		if err != nil {
			return nil, errors.Wrapf(err, "vehicle journey %s", vehicleJourney.VehicleJourneyCode)
		}

		shapeID, err := resolveShapeID(doc, journeyPattern.RouteRef)
		if err != nil {
			return nil, errors.Wrapf(err, "vehicle journey %s", vehicleJourney.VehicleJourneyCode)
		}

		p.tripID++

		journeys = append(journeys, Journey{
			Calendar: journeyCalendar,
			Stops:    stops,
			Trip: Trip{
				ID:        p.tripID,
				Code:      tripCode(vehicleJourney),
				ShortName: service.Destination,
				Direction: journeyPattern.Direction,
			},
			Route:   vehicleJourney.ServiceRef,
			ShapeID: shapeID,
			BlockID: vehicleJourney.OperationalBlockNumber,
		})
	}

	return journeys, nil
}

// Calendars returns every calendar used by the journeys processed so far
func (p *Processor) Calendars() []*calendar.Calendar {
	return p.calendars.Calendars()
}

func journeyTimingLinks(doc *schedule.Schedule, journeyPattern *schedule.JourneyPattern, vehicleJourney *schedule.VehicleJourney) ([]schedule.TimingLink, error) {
	var timingLinks []schedule.TimingLink

	for _, sectionRef := range journeyPattern.Sections {
		section, ok := doc.JourneySections[sectionRef]
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{
				Kind: "journey pattern section",
				Ref:  sectionRef,
				From: fmt.Sprintf("JourneyPattern %s", journeyPattern.ID),
			}
		}

		for _, link := range section {
			if override, exists := vehicleJourney.TimingLinkOverrides[link.ID]; exists && link.ID != "" {
				link = override
			}
			timingLinks = append(timingLinks, link)
		}
	}

	return timingLinks, nil
}

// resolveShapeID is the first route section of the route matching routeRef by ID or private code
func resolveShapeID(doc *schedule.Schedule, routeRef string) (string, error) {
	route, ok := doc.Routes[routeRef]
	if !ok {
		routeIDs := make([]string, 0, len(doc.Routes))
		for id := range doc.Routes {
			routeIDs = append(routeIDs, id)
		}
		slices.Sort(routeIDs)

		for _, id := range routeIDs {
			if doc.Routes[id].PrivateCode != "" && doc.Routes[id].PrivateCode == routeRef {
				route, ok = doc.Routes[id], true
				break
			}
		}
	}

	if !ok || len(route.SectionRefs) == 0 {
		return "", &schedule.UnresolvedReferenceError{Kind: "route", Ref: routeRef, From: "JourneyPattern"}
	}

	return route.SectionRefs[0], nil
}

func tripCode(vehicleJourney *schedule.VehicleJourney) string {
	return fmt.Sprintf("%s-%s-%s",
		vehicleJourney.TicketMachineServiceCode,
		vehicleJourney.TicketMachineJourneyCode,
		strings.ReplaceAll(vehicleJourney.PrivateCode, ":", ""),
	)
}
