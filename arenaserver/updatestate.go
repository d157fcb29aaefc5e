package arenaserver

import (
	"github.com/sogebu/LorentzArena/arenaserver/causality"
)

// update advances every agent's phase space by one proper-time step.
//
// Per agent: drain the thrust intent, evolve under it, gate the result
// through the causality check, and only then commit the new state and
// append it to the agent's world line. A gated agent simply does not
// move this frame; its thrust is retried next tick.
func (server *Server) update() {

	server.debugNbUpdates++

	server.state.ProcessMutations()

	dTau := server.tickDuration()

	server.agentsmutex.Lock()
	for id := range server.agents {

		agentstate := server.state.GetAgentState(id)
		thrust := server.state.GetThrust(id).Limit(MaxThrust)

		newstate := agentstate.Evolve(thrust, dTau)

		if !causality.IsMotionAllowed(newstate.GetPosition(), server.state.LastEventsExcept(id)) {
			continue
		}

		server.state.SetAgentState(id, newstate)
		server.state.GetWorldLine(id).Append(newstate)
	}
	server.agentsmutex.Unlock()
}
