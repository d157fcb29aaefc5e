package types

import (
	"github.com/sogebu/LorentzArena/common/utils/vector"
)

type VizMessage struct {
	GameID string
	Tick   uint32
	Agents []VizMessageAgent
}

// VizMessageAgent carries one agent's actual state plus what that agent
// perceives of the others, light delay included. The viz draws each
// observer's view from Seen, never from the other agents' Position.
type VizMessageAgent struct {
	Id          string
	Color       string
	Position    vector.Vector4
	Velocity    vector.Vector3 // proper velocity
	Gamma       float64
	Contraction float64 // Lorentz contraction scale factor 1/γ
	Trajectory  []vector.Vector4
	Seen        []VizMessageSeenAgent
}

// VizMessageSeenAgent is a retarded image: the event on another agent's
// world line whose light reaches this agent now.
type VizMessageSeenAgent struct {
	Id       string
	Position vector.Vector4
	Velocity vector.Vector3
	Gamma    float64
}
