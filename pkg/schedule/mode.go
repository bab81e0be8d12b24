package schedule

import "strings"

type Mode string

const (
	ModeAir         Mode = "Air"
	ModeBus         Mode = "Bus"
	ModeCoach       Mode = "Coach"
	ModeFerry       Mode = "Ferry"
	ModeTrain       Mode = "Train"
	ModeTram        Mode = "Tram"
	ModeUnderground Mode = "Underground"
)

// ParseMode maps a TransXChange service mode onto Mode, anything unknown or missing is a bus
func ParseMode(value string) Mode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "air":
		return ModeAir
	case "coach":
		return ModeCoach
	case "ferry", "boat":
		return ModeFerry
	case "rail", "train":
		return ModeTrain
	case "tram":
		return ModeTram
	case "underground", "metro":
		return ModeUnderground
	default:
		return ModeBus
	}
}

type Activity int

const (
	ActivityPickUpAndSetDown Activity = iota
	ActivityPickUp
	ActivitySetDown
	ActivityPass
)

// ParseActivity defaults to pick up and set down when the activity is missing
func ParseActivity(value string) Activity {
	switch strings.TrimSpace(value) {
	case "pickUp":
		return ActivityPickUp
	case "setDown":
		return ActivitySetDown
	case "pass":
		return ActivityPass
	default:
		return ActivityPickUpAndSetDown
	}
}

func (a Activity) Pickup() bool {
	return a == ActivityPickUp || a == ActivityPickUpAndSetDown
}

func (a Activity) Dropoff() bool {
	return a == ActivitySetDown || a == ActivityPickUpAndSetDown
}

func (a Activity) String() string {
	switch a {
	case ActivityPickUp:
		return "pickUp"
	case ActivitySetDown:
		return "setDown"
	case ActivityPass:
		return "pass"
	default:
		return "pickUpAndSetDown"
	}
}
