package schedule

import "fmt"

// MalformedScheduleError is returned when a required section of the document is missing or unusable
type MalformedScheduleError struct {
	Section string
	Reason  string
}

func (e *MalformedScheduleError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed schedule: %s is missing", e.Section)
	}
	return fmt.Sprintf("malformed schedule: %s %s", e.Section, e.Reason)
}

// UnresolvedReferenceError is returned when a stop, journey pattern or route reference has no target
type UnresolvedReferenceError struct {
	Kind string
	Ref  string
	From string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q in %s", e.Kind, e.Ref, e.From)
}

type MissingOperatingProfileError struct {
	VehicleJourneyCode string
	ServiceRef         string
}

func (e *MissingOperatingProfileError) Error() string {
	return fmt.Sprintf("vehicle journey %s has no operating profile and neither does service %s", e.VehicleJourneyCode, e.ServiceRef)
}

type InvalidDurationError struct {
	Value string
	Field string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid %s duration %q", e.Field, e.Value)
}
