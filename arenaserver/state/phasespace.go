package state

import (
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	"github.com/sogebu/LorentzArena/common/utils/lorentz"
	"github.com/sogebu/LorentzArena/common/utils/vector"
)

// PhaseSpace is an agent's instantaneous spacetime state: its position
// in the shared world frame and the spatial part of its 4-velocity
// (proper velocity).
//
// The implied 4-velocity (γ(u), u) with γ(u) = sqrt(1+|u|²) is
// timelike-normalized by construction, so no renormalization step ever
// happens here. Storing ordinary velocity instead would need clamping
// near |v| = 1 and risks γ → ∞.
//
// PhaseSpace is an immutable value: Evolve returns a new one, the old
// one is never mutated in place.
type PhaseSpace struct {
	pos vector.Vector4
	u   vector.Vector3
}

func MakePhaseSpace(pos vector.Vector4, u vector.Vector3) PhaseSpace {
	return PhaseSpace{pos: pos, u: u}
}

// MakePhaseSpaceAtRest is the spawn state: given position, zero velocity.
func MakePhaseSpaceAtRest(pos vector.Vector4) PhaseSpace {
	return PhaseSpace{pos: pos, u: vector.MakeNullVector3()}
}

func (ps PhaseSpace) GetPosition() vector.Vector4 {
	return ps.pos
}

func (ps PhaseSpace) GetVelocity() vector.Vector3 {
	return ps.u
}

func (ps PhaseSpace) Gamma() float64 {
	return ps.u.Gamma()
}

// ContractionFactor is the Lorentz contraction scale factor 1/γ the
// render layer applies along the direction of motion.
func (ps PhaseSpace) ContractionFactor() float64 {
	return 1 / ps.u.Gamma()
}

// Evolve advances the state by dTau of proper time under a proper
// acceleration expressed in the agent's instantaneous rest frame (what
// the agent feels, e.g. thruster thrust) — not in the world frame.
//
// Forward Euler in proper time; per-tick dTau is small enough. Any
// finite input produces a finite, valid output: there is no
// superluminal rejection because u can grow without the derived
// ordinary velocity ever reaching c.
func (ps PhaseSpace) Evolve(properAcceleration vector.Vector3, dTau float64) PhaseSpace {
	if dTau == 0 {
		return ps
	}

	// Felt in one's own rest frame, acceleration has no time component.
	ax, ay, az := properAcceleration.Get()
	a4 := vector.MakeVector4(0, ax, ay, az)

	aWorld := lorentz.InverseBoost(ps.u).Apply(a4)

	newU := ps.u.Add(aWorld.SpatialPart().MultScalar(dTau))
	newPos := ps.pos.Add(newU.Velocity4().MultScalar(dTau))

	return PhaseSpace{
		pos: newPos,
		u:   newU,
	}
}

func (ps PhaseSpace) ToMessage() protocol.PhaseSpaceMessage {
	t, x, y, z := ps.pos.Get()
	ux, uy, uz := ps.u.Get()
	return protocol.PhaseSpaceMessage{
		Type:     "phaseSpace",
		Position: protocol.PositionMessage{T: t, X: x, Y: y, Z: z},
		Velocity: protocol.VelocityMessage{X: ux, Y: uy, Z: uz},
	}
}

func MakePhaseSpaceFromMessage(msg protocol.PhaseSpaceMessage) PhaseSpace {
	return PhaseSpace{
		pos: vector.MakeVector4(msg.Position.T, msg.Position.X, msg.Position.Y, msg.Position.Z),
		u:   vector.MakeVector3(msg.Velocity.X, msg.Velocity.Y, msg.Velocity.Z),
	}
}
