package protocol

import (
	"github.com/sogebu/LorentzArena/common/utils/vector"
	uuid "github.com/satori/go.uuid"
)

// AgentPerceptionVisionItem is another agent as actually observed: the
// event on its world line whose light signal reaches the observer now,
// not its current state.
type AgentPerceptionVisionItem struct {
	AgentId  uuid.UUID
	Position vector.Vector4 // retarded spacetime position
	Velocity vector.Vector3 // proper velocity at the retarded event
	Gamma    float64        // Lorentz factor at the retarded event
}

type AgentPerceptionInternal struct {
	Position vector.Vector4
	Velocity vector.Vector3
	Gamma    float64
}

type AgentPerception struct {
	Internal AgentPerceptionInternal
	Vision   []AgentPerceptionVisionItem
}
