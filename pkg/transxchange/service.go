package transxchange

type Service struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`

	ServiceCode              string
	TicketMachineServiceCode string
	RegisteredOperatorRef    string
	Description              string
	Mode                     string
	PublicUse                bool
	OperatingPeriod          DateRange

	OperatingProfile *OperatingProfile

	Lines []Line `xml:"Lines>Line"`

	Origin      string   `xml:"StandardService>Origin"`
	Destination string   `xml:"StandardService>Destination"`
	Vias        []string `xml:"StandardService>Vias>Via"`

	JourneyPatterns []*JourneyPattern `xml:"StandardService>JourneyPattern"`
}

type Line struct {
	ID       string `xml:"id,attr"`
	LineName string
}

type JourneyPattern struct {
	ID                   string `xml:"id,attr"`
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`

	OperatingProfile *OperatingProfile

	DestinationDisplay        string
	OperatorRef               string
	Direction                 string
	RouteRef                  string
	JourneyPatternSectionRefs []string
}

type DateRange struct {
	StartDate string
	EndDate   string
}
