package protocol

// Wire shape of a phase-space update exchanged between peers:
// {"type":"phaseSpace","position":{"t":..,"x":..,"y":..,"z":..},"velocity":{"x":..,"y":..,"z":..}}
//
// velocity carries the spatial part of the 4-velocity (proper velocity),
// never the ordinary velocity.

type PositionMessage struct {
	T float64 `json:"t"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type VelocityMessage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type PhaseSpaceMessage struct {
	Type     string          `json:"type"`
	Position PositionMessage `json:"position"`
	Velocity VelocityMessage `json:"velocity"`
}

// Payload of a "thrust" agent mutation: the proper acceleration the
// agent applies in its own instantaneous rest frame this tick.
type ThrustMessage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
