package perception

import (
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	"github.com/sogebu/LorentzArena/arenaserver/state"
	uuid "github.com/satori/go.uuid"
)

// ComputeAgentPerception builds what one agent actually observes this
// tick: its own current phase space, and for every other agent the
// retarded event on that agent's world line whose light signal reaches
// the observer now.
func ComputeAgentPerception(serverstate *state.ServerState, agentid uuid.UUID) protocol.AgentPerception {

	agentstate := serverstate.GetAgentState(agentid)

	perception := protocol.AgentPerception{
		Internal: protocol.AgentPerceptionInternal{
			Position: agentstate.GetPosition(),
			Velocity: agentstate.GetVelocity(),
			Gamma:    agentstate.Gamma(),
		},
		Vision: viewAgents(serverstate, agentstate, agentid),
	}

	return perception
}

func viewAgents(serverstate *state.ServerState, agentstate state.PhaseSpace, agentid uuid.UUID) []protocol.AgentPerceptionVisionItem {

	observerpos := agentstate.GetPosition()

	vision := make([]protocol.AgentPerceptionVisionItem, 0)

	serverstate.Worldlinesmutex.Lock()
	worldlines := make(map[uuid.UUID]*state.WorldLine, len(serverstate.Worldlines))
	for otherid, worldline := range serverstate.Worldlines {
		worldlines[otherid] = worldline
	}
	serverstate.Worldlinesmutex.Unlock()

	for otheragentid, worldline := range worldlines {

		if otheragentid == agentid {
			continue // one cannot see itself
		}

		seen, visible := worldline.PastLightConeIntersection(observerpos)
		if !visible {
			// No signal from this agent has arrived yet (e.g. it just
			// spawned); it is simply not visible this tick.
			continue
		}

		vision = append(vision, protocol.AgentPerceptionVisionItem{
			AgentId:  otheragentid,
			Position: seen.GetPosition(),
			Velocity: seen.GetVelocity(),
			Gamma:    seen.Gamma(),
		})
	}

	return vision
}
