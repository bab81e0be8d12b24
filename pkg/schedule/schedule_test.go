package schedule

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		value    string
		expected Mode
	}{
		{"bus", ModeBus},
		{"", ModeBus},
		{"coach", ModeCoach},
		{"Ferry", ModeFerry},
		{"rail", ModeTrain},
		{"tram", ModeTram},
		{"underground", ModeUnderground},
		{"air", ModeAir},
		{"hovercraft", ModeBus},
	} {
		t.Run(fmt.Sprintf("%q", tc.value), func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseMode(tc.value))
		})
	}
}

func TestActivity(t *testing.T) {
	assert.Equal(t, ActivityPickUpAndSetDown, ParseActivity(""))
	assert.Equal(t, ActivityPickUp, ParseActivity("pickUp"))
	assert.Equal(t, ActivitySetDown, ParseActivity("setDown"))
	assert.Equal(t, ActivityPass, ParseActivity("pass"))

	assert.True(t, ActivityPickUpAndSetDown.Pickup())
	assert.True(t, ActivityPickUpAndSetDown.Dropoff())
	assert.True(t, ActivityPickUp.Pickup())
	assert.False(t, ActivityPickUp.Dropoff())
	assert.False(t, ActivitySetDown.Pickup())
	assert.True(t, ActivitySetDown.Dropoff())
	assert.False(t, ActivityPass.Pickup())
	assert.False(t, ActivityPass.Dropoff())
}

func TestJourneyStopIsTimingPoint(t *testing.T) {
	assert.True(t, JourneyStop{TimingStatus: "PTP"}.IsTimingPoint())
	assert.True(t, JourneyStop{TimingStatus: "TIP"}.IsTimingPoint())
	assert.False(t, JourneyStop{TimingStatus: "OTH"}.IsTimingPoint())
	assert.False(t, JourneyStop{}.IsTimingPoint())
}

func TestLocationWGS84(t *testing.T) {
	longitude, latitude := LonLat(-1.5, 53.1).WGS84()
	assert.Equal(t, -1.5, longitude)
	assert.Equal(t, 53.1, latitude)

	longitude, latitude = Grid(530034, 180381).WGS84()
	assert.InDelta(t, -0.127724044, longitude, 1e-6)
	assert.InDelta(t, 51.507406924, latitude, 1e-6)

	longitude, latitude = Location{}.WGS84()
	assert.Zero(t, longitude)
	assert.Zero(t, latitude)
}

func TestOperatorName(t *testing.T) {
	assert.Equal(t, "First Bus", Operator{ShortName: "First Bus", NameOnLicence: "First Ltd"}.Name())
	assert.Equal(t, "First Ltd", Operator{NameOnLicence: "First Ltd"}.Name())
}

func TestErrorsSurviveWrapping(t *testing.T) {
	err := pkgerrors.Wrapf(&UnresolvedReferenceError{Kind: "stop", Ref: "X", From: "JPS1"}, "document %s", "a.xml")

	var unresolved *UnresolvedReferenceError
	assert.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "X", unresolved.Ref)
	assert.Contains(t, err.Error(), `unresolved stop reference "X" in JPS1`)

	var malformed *MalformedScheduleError
	assert.False(t, errors.As(err, &malformed))
}
