package perception_test

import (
	"testing"

	"github.com/sogebu/LorentzArena/arenaserver/perception"
	"github.com/sogebu/LorentzArena/arenaserver/state"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeAgentPerceptionInternal(t *testing.T) {
	serverstate := state.NewServerState()

	agentid := uuid.NewV4()
	serverstate.InitAgent(agentid, vector.MakeVector4(0, 5, 0, 0))

	p := perception.ComputeAgentPerception(serverstate, agentid)

	assert.True(t, p.Internal.Position.Equals(vector.MakeVector4(0, 5, 0, 0)))
	assert.True(t, p.Internal.Velocity.IsNull())
	assert.InDelta(t, 1.0, p.Internal.Gamma, 1e-12)
	assert.Empty(t, p.Vision, "a lone agent sees nothing")
}

func TestComputeAgentPerceptionRetardedVision(t *testing.T) {
	serverstate := state.NewServerState()

	observerid := uuid.NewV4()
	emitterid := uuid.NewV4()

	serverstate.InitAgent(observerid, vector.MakeVector4(0, 0, 0, 0))

	// Emitter has been sitting at x=10 long enough for its light to
	// have reached the origin.
	serverstate.InitAgent(emitterid, vector.MakeVector4(0, 10, 0, 0))
	emitterline := serverstate.GetWorldLine(emitterid)
	for i := 1; i <= 20; i++ {
		emitterline.Append(state.MakePhaseSpaceAtRest(vector.MakeVector4(float64(i), 10, 0, 0)))
	}

	// Move the observer forward to t=15; it should see the emitter as
	// it was at t=5, when the now-arriving light left it.
	serverstate.SetAgentState(observerid, state.MakePhaseSpaceAtRest(vector.MakeVector4(15, 0, 0, 0)))

	p := perception.ComputeAgentPerception(serverstate, observerid)

	assert.Len(t, p.Vision, 1)
	seen := p.Vision[0]
	assert.Equal(t, emitterid, seen.AgentId)
	assert.InDelta(t, 5.0, seen.Position.GetT(), 1.0)
	assert.InDelta(t, 10.0, seen.Position.GetX(), 1e-9)
	assert.InDelta(t, 1.0, seen.Gamma, 1e-12)
}

func TestComputeAgentPerceptionFreshSpawnInvisible(t *testing.T) {
	serverstate := state.NewServerState()

	observerid := uuid.NewV4()
	newcomerid := uuid.NewV4()

	serverstate.InitAgent(observerid, vector.MakeVector4(100, 0, 0, 0))

	// Newcomer spawns far away at the same coordinate time; no light
	// from it can have arrived yet.
	serverstate.InitAgent(newcomerid, vector.MakeVector4(100, 50, 0, 0))

	p := perception.ComputeAgentPerception(serverstate, observerid)

	assert.Empty(t, p.Vision)
}
