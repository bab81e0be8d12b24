package transxchange

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/util"
)

// Normalize resolves a parsed document into a Schedule
func Normalize(doc *TransXChange) (*schedule.Schedule, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	stopPoints := stopSourceOf(doc).stopPoints()
	stopRefs := map[string]bool{}
	for _, stopPoint := range stopPoints {
		stopRefs[stopPoint.Ref] = true
	}

	journeySections, timingLinks, err := normalizeJourneySections(doc.JourneyPatternSections, stopRefs)
	if err != nil {
		return nil, err
	}

	services, err := normalizeServices(doc.Services)
	if err != nil {
		return nil, err
	}

	txcJourneys, err := expandFrequencies(doc.VehicleJourneys)
	if err != nil {
		return nil, err
	}

	vehicleJourneys, err := normalizeVehicleJourneys(txcJourneys, services, timingLinks)
	if err != nil {
		return nil, err
	}

	routes := map[string]schedule.Route{}
	for _, route := range doc.Routes {
		sectionRefs := make([]string, 0, len(route.RouteSectionRef))
		for _, ref := range route.RouteSectionRef {
			sectionRefs = append(sectionRefs, strings.TrimSpace(ref))
		}

		routes[route.ID] = schedule.Route{
			ID:          route.ID,
			PrivateCode: strings.TrimSpace(route.PrivateCode),
			SectionRefs: sectionRefs,
		}
	}

	normalized := &schedule.Schedule{
		StopPoints:      stopPoints,
		Operators:       operatorSourceOf(doc).operators(),
		Services:        services,
		JourneySections: journeySections,
		VehicleJourneys: vehicleJourneys,
		Routes:          routes,
		RouteLinks:      flattenRouteLinks(doc.RouteSections),
	}

	log.Debug().
		Int("stops", len(normalized.StopPoints)).
		Int("services", len(normalized.Services)).
		Int("vehiclejourneys", len(normalized.VehicleJourneys)).
		Int("routelinks", len(normalized.RouteLinks)).
		Msg("Normalised document")

	return normalized, nil
}

func normalizeJourneySections(sections []*JourneyPatternSection, stopRefs map[string]bool) (map[string][]schedule.TimingLink, map[string]schedule.TimingLink, error) {
	journeySections := map[string][]schedule.TimingLink{}
	timingLinks := map[string]schedule.TimingLink{}

	for _, section := range sections {
		links := make([]schedule.TimingLink, 0, len(section.JourneyPatternTimingLinks))

		for _, txcLink := range section.JourneyPatternTimingLinks {
			link, err := normalizeTimingLink(txcLink)
			if err != nil {
				return nil, nil, err
			}

			for _, stopRef := range []string{link.From.StopRef, link.To.StopRef} {
				if !stopRefs[stopRef] {
					return nil, nil, &schedule.UnresolvedReferenceError{
						Kind: "stop",
						Ref:  stopRef,
						From: fmt.Sprintf("JourneyPatternSection %s", section.ID),
					}
				}
			}

			links = append(links, link)
			if link.ID != "" {
				timingLinks[link.ID] = link
			}
		}

		journeySections[section.ID] = links
	}

	return journeySections, timingLinks, nil
}

func normalizeTimingLink(txcLink JourneyPatternTimingLink) (schedule.TimingLink, error) {
	runTime, err := parseDuration(txcLink.RunTime, "RunTime")
	if err != nil {
		return schedule.TimingLink{}, err
	}

	from, err := normalizeJourneyStop(txcLink.From)
	if err != nil {
		return schedule.TimingLink{}, err
	}
	to, err := normalizeJourneyStop(txcLink.To)
	if err != nil {
		return schedule.TimingLink{}, err
	}

	return schedule.TimingLink{
		ID:      txcLink.ID,
		From:    from,
		To:      to,
		RunTime: runTime,
	}, nil
}

func normalizeJourneyStop(point JourneyPatternTimingLinkPoint) (schedule.JourneyStop, error) {
	waitTime, err := parseOptionalDuration(point.WaitTime, "WaitTime")
	if err != nil {
		return schedule.JourneyStop{}, err
	}

	return schedule.JourneyStop{
		StopRef:      strings.TrimSpace(point.StopPointRef),
		Activity:     schedule.ParseActivity(point.Activity),
		TimingStatus: strings.TrimSpace(point.TimingStatus),
		WaitTime:     waitTime,
	}, nil
}

func normalizeServices(txcServices []*Service) (map[string]*schedule.Service, error) {
	services := map[string]*schedule.Service{}

	for _, txcService := range txcServices {
		operatingPeriod, err := txcService.OperatingPeriod.toSchedule()
		if err != nil {
			return nil, &schedule.MalformedScheduleError{
				Section: fmt.Sprintf("Service %s", txcService.ServiceCode),
				Reason:  fmt.Sprintf("has an invalid operating period: %s", err),
			}
		}

		service := &schedule.Service{
			ServiceCode:           strings.TrimSpace(txcService.ServiceCode),
			OperatingPeriod:       operatingPeriod,
			RegisteredOperatorRef: strings.TrimSpace(txcService.RegisteredOperatorRef),
			Description:           util.StripControlCharacters(txcService.Description),
			Mode:                  schedule.ParseMode(txcService.Mode),
			StandardService:       map[string]*schedule.JourneyPattern{},
			Origin:                strings.TrimSpace(txcService.Origin),
			Destination:           strings.TrimSpace(txcService.Destination),
		}

		if len(txcService.Vias) > 0 {
			service.Via = strings.TrimSpace(txcService.Vias[0])
		}

		for _, line := range txcService.Lines {
			service.Lines = append(service.Lines, schedule.Line{ID: line.ID, Name: strings.TrimSpace(line.LineName)})
		}

		if txcService.OperatingProfile != nil {
			service.OperatingProfile, err = txcService.OperatingProfile.Parse()
			if err != nil {
				return nil, err
			}
		}

		for _, txcPattern := range txcService.JourneyPatterns {
			pattern := &schedule.JourneyPattern{
				ID:        txcPattern.ID,
				Direction: schedule.Direction(strings.ToLower(strings.TrimSpace(txcPattern.Direction))),
				RouteRef:  strings.TrimSpace(txcPattern.RouteRef),
			}
			for _, ref := range txcPattern.JourneyPatternSectionRefs {
				pattern.Sections = append(pattern.Sections, strings.TrimSpace(ref))
			}
			if txcPattern.OperatingProfile != nil {
				pattern.OperatingProfile, err = txcPattern.OperatingProfile.Parse()
				if err != nil {
					return nil, err
				}
			}

			service.StandardService[pattern.ID] = pattern
		}

		services[service.ServiceCode] = service
	}

	return services, nil
}

func normalizeVehicleJourneys(txcJourneys []*VehicleJourney, services map[string]*schedule.Service, timingLinks map[string]schedule.TimingLink) ([]*schedule.VehicleJourney, error) {
	index := buildPatternIndex(txcJourneys)
	vehicleJourneys := make([]*schedule.VehicleJourney, 0, len(txcJourneys))

	for _, txcJourney := range txcJourneys {
		source := fmt.Sprintf("VehicleJourney %s", txcJourney.VehicleJourneyCode)
		serviceRef := strings.TrimSpace(txcJourney.ServiceRef)

		service, ok := services[serviceRef]
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{Kind: "service", Ref: serviceRef, From: source}
		}

		ref := patternRefOf(txcJourney)
		patternID, ok := ref.resolve(index)
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{Kind: "journey pattern", Ref: ref.String(), From: source}
		}
		pattern, ok := service.StandardService[patternID]
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{Kind: "journey pattern", Ref: patternID, From: source}
		}

		var profile *schedule.OperatingProfile
		var err error
		switch {
		case txcJourney.OperatingProfile != nil:
			profile, err = txcJourney.OperatingProfile.Parse()
			if err != nil {
				return nil, err
			}
		case pattern.OperatingProfile != nil:
			profile = pattern.OperatingProfile
		case service.OperatingProfile != nil:
			profile = service.OperatingProfile
		default:
			return nil, &schedule.MissingOperatingProfileError{
				VehicleJourneyCode: txcJourney.VehicleJourneyCode,
				ServiceRef:         serviceRef,
			}
		}

		departureTime, ok := parseClockTime(txcJourney.DepartureTime)
		if !ok {
			return nil, &schedule.MalformedScheduleError{
				Section: source,
				Reason:  fmt.Sprintf("has invalid departure time %q", txcJourney.DepartureTime),
			}
		}

		overrides, err := timingLinkOverrides(txcJourney, timingLinks)
		if err != nil {
			return nil, err
		}

		vehicleJourneys = append(vehicleJourneys, &schedule.VehicleJourney{
			PrivateCode:              strings.TrimSpace(txcJourney.PrivateCode),
			LineRef:                  strings.TrimSpace(txcJourney.LineRef),
			ServiceRef:               serviceRef,
			VehicleJourneyCode:       strings.TrimSpace(txcJourney.VehicleJourneyCode),
			JourneyPatternRef:        patternID,
			DepartureTime:            departureTime,
			OperatingProfile:         profile,
			OperationalBlockNumber:   strings.TrimSpace(txcJourney.Operational.Block.BlockNumber),
			TicketMachineServiceCode: strings.TrimSpace(txcJourney.Operational.TicketMachine.TicketMachineServiceCode),
			TicketMachineJourneyCode: strings.TrimSpace(txcJourney.Operational.TicketMachine.JourneyCode),
			TimingLinkOverrides:      overrides,
		})
	}

	return vehicleJourneys, nil
}

// timingLinkOverrides applies a journey's own timing links on top of the pattern links they reference
func timingLinkOverrides(txcJourney *VehicleJourney, timingLinks map[string]schedule.TimingLink) (map[string]schedule.TimingLink, error) {
	if len(txcJourney.VehicleJourneyTimingLinks) == 0 {
		return nil, nil
	}

	overrides := map[string]schedule.TimingLink{}
	for _, vehicleJourneyTimingLink := range txcJourney.VehicleJourneyTimingLinks {
		linkRef := strings.TrimSpace(vehicleJourneyTimingLink.JourneyPatternTimingLinkRef)

		link, ok := timingLinks[linkRef]
		if !ok {
			return nil, &schedule.UnresolvedReferenceError{
				Kind: "timing link",
				Ref:  linkRef,
				From: fmt.Sprintf("VehicleJourney %s", txcJourney.VehicleJourneyCode),
			}
		}

		if vehicleJourneyTimingLink.RunTime != "" {
			runTime, err := parseDuration(vehicleJourneyTimingLink.RunTime, "RunTime")
			if err != nil {
				return nil, err
			}
			link.RunTime = runTime
		}

		var err error
		if link.From, err = overrideJourneyStop(link.From, vehicleJourneyTimingLink.From); err != nil {
			return nil, err
		}
		if link.To, err = overrideJourneyStop(link.To, vehicleJourneyTimingLink.To); err != nil {
			return nil, err
		}

		overrides[linkRef] = link
	}

	return overrides, nil
}

func overrideJourneyStop(stop schedule.JourneyStop, point JourneyPatternTimingLinkPoint) (schedule.JourneyStop, error) {
	if point.WaitTime != "" {
		waitTime, err := parseDuration(point.WaitTime, "WaitTime")
		if err != nil {
			return stop, err
		}
		stop.WaitTime = waitTime
	}
	if point.Activity != "" {
		stop.Activity = schedule.ParseActivity(point.Activity)
	}
	if point.TimingStatus != "" {
		stop.TimingStatus = strings.TrimSpace(point.TimingStatus)
	}

	return stop, nil
}

func flattenRouteLinks(routeSections []*RouteSection) []schedule.RouteLink {
	var routeLinks []schedule.RouteLink

	for _, routeSection := range routeSections {
		if routeSection.ID == "" {
			continue
		}

		for _, routeLink := range routeSection.RouteLinks {
			for _, point := range routeLink.Track {
				routeLinks = append(routeLinks, schedule.RouteLink{
					ID:       routeSection.ID,
					Location: resolveLocation(&point),
				})
			}
		}
	}

	return routeLinks
}
