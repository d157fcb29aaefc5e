package causality_test

import (
	"testing"

	"github.com/sogebu/LorentzArena/arenaserver/causality"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	"github.com/stretchr/testify/assert"
)

func TestIsMotionAllowed(t *testing.T) {
	examples := []struct {
		Name        string
		SelfPos     vector.Vector4
		OtherEvents []vector.Vector4
		Expected    bool
	}{
		{
			Name:        "no other agents",
			SelfPos:     vector.MakeVector4(1, 0, 0, 0),
			OtherEvents: []vector.Vector4{},
			Expected:    true,
		},
		{
			Name:    "mutual rest, equal time, spacelike separation",
			SelfPos: vector.MakeVector4(0, 0, 0, 0),
			OtherEvents: []vector.Vector4{
				vector.MakeVector4(0, 20, 0, 0),
			},
			Expected: true,
		},
		{
			Name:    "event timelike inside own past cone",
			SelfPos: vector.MakeVector4(10, 0, 0, 0),
			OtherEvents: []vector.Vector4{
				vector.MakeVector4(1, 2, 0, 0),
			},
			Expected: false,
		},
		{
			Name:    "same event but in coordinate future",
			SelfPos: vector.MakeVector4(10, 0, 0, 0),
			OtherEvents: []vector.Vector4{
				vector.MakeVector4(15, 2, 0, 0),
			},
			Expected: true,
		},
		{
			Name:    "past event but spacelike separated",
			SelfPos: vector.MakeVector4(10, 0, 0, 0),
			OtherEvents: []vector.Vector4{
				vector.MakeVector4(9, 50, 0, 0),
			},
			Expected: true,
		},
		{
			Name:    "one offender among many harmless events",
			SelfPos: vector.MakeVector4(10, 0, 0, 0),
			OtherEvents: []vector.Vector4{
				vector.MakeVector4(9, 50, 0, 0),
				vector.MakeVector4(1, 2, 0, 0),
				vector.MakeVector4(15, 2, 0, 0),
			},
			Expected: false,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			assert.Equal(
				t,
				example.Expected,
				causality.IsMotionAllowed(example.SelfPos, example.OtherEvents),
			)
		})
	}
}

func TestMutualRestForwardStepIsAlwaysAllowed(t *testing.T) {
	// Two agents at rest, spawned at the same t=0, spatially apart;
	// stepping forward in time must never trip the guard for either.
	a := vector.MakeVector4(0, -10, 0, 0)
	b := vector.MakeVector4(0, 10, 0, 0)

	for i := 1; i <= 100; i++ {
		step := float64(i) * 0.05
		assert.True(t, causality.IsMotionAllowed(vector.MakeVector4(step, -10, 0, 0), []vector.Vector4{b}))
		assert.True(t, causality.IsMotionAllowed(vector.MakeVector4(step, 10, 0, 0), []vector.Vector4{a}))
	}
}
