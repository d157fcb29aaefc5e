package state_test

import (
	"math"
	"testing"

	"github.com/sogebu/LorentzArena/arenaserver/state"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	"github.com/stretchr/testify/assert"
)

func TestEvolveZeroStepIsIdentity(t *testing.T) {
	ps := state.MakePhaseSpace(
		vector.MakeVector4(3, 1, 2, 3),
		vector.MakeVector3(0.5, -0.25, 1),
	)

	evolved := ps.Evolve(vector.MakeVector3(10, 10, 10), 0)

	assert.Equal(t, ps, evolved)
}

func TestEvolveCoordinateTimeAdvances(t *testing.T) {
	examples := []struct {
		Name   string
		U      vector.Vector3
		Accel  vector.Vector3
		DTau   float64
	}{
		{
			Name:  "at rest, coasting",
			U:     vector.MakeNullVector3(),
			Accel: vector.MakeNullVector3(),
			DTau:  0.05,
		},
		{
			Name:  "at rest, thrusting",
			U:     vector.MakeNullVector3(),
			Accel: vector.MakeVector3(1, 0, 0),
			DTau:  0.05,
		},
		{
			Name:  "relativistic, braking",
			U:     vector.MakeVector3(5, 0, 0),
			Accel: vector.MakeVector3(-3, 0, 0),
			DTau:  0.05,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			ps := state.MakePhaseSpace(vector.MakeNullVector4(), example.U)

			evolved := ps.Evolve(example.Accel, example.DTau)

			assert.Greater(t, evolved.GetPosition().GetT(), ps.GetPosition().GetT())
		})
	}
}

func TestEvolveFromRestPassesAccelerationThrough(t *testing.T) {
	// The boost from rest is the identity, so a rest-frame thrust of
	// (1,0,0) over dTau=1 lands on u = (1,0,0) and gamma = sqrt(2).
	ps := state.MakePhaseSpaceAtRest(vector.MakeNullVector4())

	evolved := ps.Evolve(vector.MakeVector3(1, 0, 0), 1)

	assert.InDelta(t, 1.0, evolved.GetVelocity().GetX(), 1e-12)
	assert.InDelta(t, 0.0, evolved.GetVelocity().GetY(), 1e-12)
	assert.InDelta(t, 0.0, evolved.GetVelocity().GetZ(), 1e-12)
	assert.InDelta(t, math.Sqrt(2), evolved.Gamma(), 1e-12)
}

func TestEvolveOrdinaryVelocityStaysSubluminal(t *testing.T) {
	// Sustained thrust: proper velocity grows without bound, the derived
	// ordinary velocity |u|/gamma must stay below c = 1. Thrust and step
	// are picked so the exponential growth of u stays within float64
	// range over the whole run.
	ps := state.MakePhaseSpaceAtRest(vector.MakeNullVector4())

	for i := 0; i < 500; i++ {
		ps = ps.Evolve(vector.MakeVector3(2, 0, 0), 0.05)
	}

	ordinary := ps.GetVelocity().Mag() / ps.Gamma()

	assert.False(t, math.IsNaN(ordinary))
	assert.Less(t, ordinary, 1.0)
	assert.Greater(t, ps.GetVelocity().Mag(), 1.0)
}

func TestContractionFactor(t *testing.T) {
	ps := state.MakePhaseSpace(vector.MakeNullVector4(), vector.MakeVector3(0, 3, 4))

	assert.InDelta(t, 1.0/math.Sqrt(26), ps.ContractionFactor(), 1e-12)
}

func TestPhaseSpaceMessageRoundTrip(t *testing.T) {
	ps := state.MakePhaseSpace(
		vector.MakeVector4(12.5, -3, 0.25, 7),
		vector.MakeVector3(0.1, 0.2, -0.3),
	)

	msg := ps.ToMessage()

	assert.Equal(t, "phaseSpace", msg.Type)

	decoded := state.MakePhaseSpaceFromMessage(msg)

	assert.True(t, decoded.GetPosition().Equals(ps.GetPosition()))
	assert.True(t, decoded.GetVelocity().Equals(ps.GetVelocity()))
}
