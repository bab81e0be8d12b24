package transxchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureStopPoints = `
  <StopPoints>
    <AnnotatedStopPointRef>
      <StopPointRef>A</StopPointRef>
      <CommonName>Alpha</CommonName>
      <LocalityName>Alphaton</LocalityName>
      <LocalityQualifier>North</LocalityQualifier>
      <Location><Longitude>-1.5</Longitude><Latitude>53.1</Latitude></Location>
    </AnnotatedStopPointRef>
    <AnnotatedStopPointRef>
      <StopPointRef>B</StopPointRef>
      <CommonName>Beta</CommonName>
      <Location><Easting>530034</Easting><Northing>180381</Northing></Location>
    </AnnotatedStopPointRef>
    <AnnotatedStopPointRef>
      <StopPointRef>C</StopPointRef>
      <CommonName>Gamma</CommonName>
      <Location><Translation><Longitude>-1.2</Longitude><Latitude>52.9</Latitude></Translation></Location>
    </AnnotatedStopPointRef>
    <AnnotatedStopPointRef>
      <StopPointRef>D</StopPointRef>
      <CommonName>Delta</CommonName>
    </AnnotatedStopPointRef>
  </StopPoints>`

const fixtureRouteSections = `
  <RouteSections>
    <RouteSection id="RS1">
      <RouteLink id="RL1">
        <From><StopPointRef>A</StopPointRef></From>
        <To><StopPointRef>B</StopPointRef></To>
        <Distance>1200</Distance>
        <Track><Mapping>
          <Location><Easting>530034</Easting><Northing>180381</Northing></Location>
          <Location><Longitude>-0.12</Longitude><Latitude>51.5</Latitude></Location>
        </Mapping></Track>
      </RouteLink>
    </RouteSection>
  </RouteSections>
  <Routes>
    <Route id="R1">
      <PrivateCode>R1P</PrivateCode>
      <RouteSectionRef>RS1</RouteSectionRef>
    </Route>
  </Routes>`

const fixtureJourneyPatternSections = `
  <JourneyPatternSections>
    <JourneyPatternSection id="JPS1">
      <JourneyPatternTimingLink id="JPTL1">
        <From><StopPointRef>A</StopPointRef><TimingStatus>PTP</TimingStatus></From>
        <To><StopPointRef>B</StopPointRef><TimingStatus>OTH</TimingStatus></To>
        <RunTime>PT5M</RunTime>
      </JourneyPatternTimingLink>
      <JourneyPatternTimingLink id="JPTL2">
        <From><WaitTime>PT2M</WaitTime><StopPointRef>B</StopPointRef><TimingStatus>OTH</TimingStatus></From>
        <To><StopPointRef>C</StopPointRef><TimingStatus>TIP</TimingStatus></To>
        <RunTime>PT10M</RunTime>
      </JourneyPatternTimingLink>
      <JourneyPatternTimingLink id="JPTL3">
        <From><StopPointRef>C</StopPointRef><TimingStatus>TIP</TimingStatus></From>
        <To><Activity>setDown</Activity><StopPointRef>D</StopPointRef><TimingStatus>PTP</TimingStatus></To>
        <RunTime>PT3M</RunTime>
      </JourneyPatternTimingLink>
    </JourneyPatternSection>
  </JourneyPatternSections>`

const fixtureOperators = `
  <Operators>
    <Operator id="O1">
      <NationalOperatorCode>ABCD</NationalOperatorCode>
      <OperatorCode>ABC</OperatorCode>
      <OperatorShortName>Alpha Buses</OperatorShortName>
      <OperatorNameOnLicence>Alpha Buses Ltd</OperatorNameOnLicence>
    </Operator>
  </Operators>`

const fixtureServiceProfile = `<OperatingProfile><RegularDayType><DaysOfWeek><MondayToFriday /></DaysOfWeek></RegularDayType></OperatingProfile>`

const fixtureServices = `
  <Services>
    <Service>
      <ServiceCode>SVC1</ServiceCode>
      <Lines><Line id="L1"><LineName>1</LineName></Line></Lines>
      <OperatingPeriod><StartDate>2024-01-01</StartDate></OperatingPeriod>
      ` + fixtureServiceProfile + `
      <RegisteredOperatorRef>O1</RegisteredOperatorRef>
      <Description>Alpha to
	Delta</Description>
      <StandardService>
        <Origin>Alpha</Origin>
        <Destination>Delta</Destination>
        <Vias><Via>Beta</Via></Vias>
        <JourneyPattern id="JP1">
          <Direction>outbound</Direction>
          <RouteRef>R1</RouteRef>
          <JourneyPatternSectionRefs>JPS1</JourneyPatternSectionRefs>
        </JourneyPattern>
      </StandardService>
    </Service>
  </Services>`

const fixtureVehicleJourneys = `
  <VehicleJourneys>
    <VehicleJourney>
      <PrivateCode>PC:1</PrivateCode>
      <OperatingProfile><RegularDayType><DaysOfWeek><Saturday /></DaysOfWeek></RegularDayType></OperatingProfile>
      <Operational>
        <Block><BlockNumber>BLK1</BlockNumber></Block>
        <TicketMachine><TicketMachineServiceCode>TM1</TicketMachineServiceCode><JourneyCode>0800</JourneyCode></TicketMachine>
      </Operational>
      <VehicleJourneyCode>VJ1</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>JP1</JourneyPatternRef>
      <DepartureTime>08:00:00</DepartureTime>
      <VehicleJourneyTimingLink id="VJTL1">
        <JourneyPatternTimingLinkRef>JPTL3</JourneyPatternTimingLinkRef>
        <RunTime>PT4M</RunTime>
        <To><WaitTime>PT1M</WaitTime></To>
      </VehicleJourneyTimingLink>
    </VehicleJourney>
    <VehicleJourney>
      <PrivateCode>PC2</PrivateCode>
      <VehicleJourneyCode>VJ2</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <VehicleJourneyRef>VJ1</VehicleJourneyRef>
      <DepartureTime>09:00:00</DepartureTime>
    </VehicleJourney>
    <VehicleJourney>
      <PrivateCode>PC3</PrivateCode>
      <VehicleJourneyCode>VJ3</VehicleJourneyCode>
      <ServiceRef>SVC1</ServiceRef>
      <LineRef>L1</LineRef>
      <JourneyPatternRef>JP1</JourneyPatternRef>
      <DepartureTime>09:30:00</DepartureTime>
      <Frequency>
        <EndTime>10:30:00</EndTime>
        <Interval><ScheduledFrequency>PT30M</ScheduledFrequency></Interval>
      </Frequency>
    </VehicleJourney>
  </VehicleJourneys>`

func fixtureDocument(replacements ...string) string {
	document := `<?xml version="1.0" encoding="UTF-8"?>
<TransXChange xmlns="http://www.transxchange.org.uk/" CreationDateTime="2024-01-01T00:00:00" ModificationDateTime="2024-01-02T00:00:00" SchemaVersion="2.4" FileName="fixture.xml">` +
		fixtureStopPoints +
		fixtureRouteSections +
		fixtureJourneyPatternSections +
		fixtureOperators +
		fixtureServices +
		fixtureVehicleJourneys + `
</TransXChange>`

	return strings.NewReplacer(replacements...).Replace(document)
}

func parseFixture(t *testing.T, replacements ...string) *TransXChange {
	doc, err := ParseXMLFile(strings.NewReader(fixtureDocument(replacements...)))
	require.NoError(t, err)

	return doc
}
