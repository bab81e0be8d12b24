package schedule

import (
	"time"
)

const DateFormat = "2006-01-02"

// Schedule is a single TransXChange document normalised into one canonical shape
type Schedule struct {
	StopPoints      []StopPoint
	Operators       map[string]Operator
	Services        map[string]*Service
	JourneySections map[string][]TimingLink
	VehicleJourneys []*VehicleJourney
	Routes          map[string]Route
	RouteLinks      []RouteLink
}

type StopPoint struct {
	Ref               string
	CommonName        string
	LocalityName      string
	LocalityQualifier string
	Location          Location
}

type Operator struct {
	ID                   string
	Code                 string
	NationalOperatorCode string
	ShortName            string
	NameOnLicence        string
}

// Name is what a passenger would know the operator as
func (o Operator) Name() string {
	if o.ShortName != "" {
		return o.ShortName
	}
	return o.NameOnLicence
}

type Line struct {
	ID   string
	Name string
}

type Service struct {
	ServiceCode           string
	Lines                 []Line
	OperatingPeriod       DateRange
	RegisteredOperatorRef string
	Description           string
	Mode                  Mode
	StandardService       map[string]*JourneyPattern
	Origin                string
	Destination           string
	Via                   string
	OperatingProfile      *OperatingProfile
}

type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

type JourneyPattern struct {
	ID               string
	Direction        Direction
	RouteRef         string
	Sections         []string
	OperatingProfile *OperatingProfile
}

type JourneyStop struct {
	StopRef      string
	Activity     Activity
	TimingStatus string
	WaitTime     time.Duration
}

// IsTimingPoint is true for principal and time info points which have a committed time
func (s JourneyStop) IsTimingPoint() bool {
	return s.TimingStatus == "PTP" || s.TimingStatus == "TIP"
}

type TimingLink struct {
	ID      string
	From    JourneyStop
	To      JourneyStop
	RunTime time.Duration
}

type VehicleJourney struct {
	PrivateCode              string
	LineRef                  string
	ServiceRef               string
	VehicleJourneyCode       string
	JourneyPatternRef        string
	DepartureTime            time.Duration
	OperatingProfile         *OperatingProfile
	OperationalBlockNumber   string
	TicketMachineServiceCode string
	TicketMachineJourneyCode string

	// Pattern timing links replaced for this journey only, keyed by the pattern timing link ID
	TimingLinkOverrides map[string]TimingLink
}

type Route struct {
	ID          string
	PrivateCode string
	SectionRefs []string
}

// RouteLink is a single vertex of a route section's track
type RouteLink struct {
	ID       string
	Location Location
}

type DateRange struct {
	Start time.Time
	End   time.Time
}
