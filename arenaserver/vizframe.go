package arenaserver

import (
	"github.com/sogebu/LorentzArena/arenaserver/perception"
	commontypes "github.com/sogebu/LorentzArena/common/types"
	"github.com/sogebu/LorentzArena/common/utils/vector"
)

// buildVizFrame snapshots the world for the visualization layer: every
// agent's current state, its trajectory, and the retarded image it has
// of every other agent.
func (server *Server) buildVizFrame(ticknum uint32) commontypes.VizMessage {

	frame := commontypes.VizMessage{
		GameID: "lorentzarena",
		Tick:   ticknum,
		Agents: make([]commontypes.VizMessageAgent, 0, len(server.agents)),
	}

	for id, ag := range server.agents {
		agentstate := server.state.GetAgentState(id)
		worldline := server.state.GetWorldLine(id)

		p := perception.ComputeAgentPerception(server.state, id)

		seen := make([]commontypes.VizMessageSeenAgent, 0, len(p.Vision))
		for _, item := range p.Vision {
			seen = append(seen, commontypes.VizMessageSeenAgent{
				Id:       item.AgentId.String(),
				Position: item.Position,
				Velocity: item.Velocity,
				Gamma:    item.Gamma,
			})
		}

		history := worldline.History()
		trajectory := make([]vector.Vector4, 0, len(history))
		for _, sample := range history {
			trajectory = append(trajectory, sample.GetPosition())
		}

		frame.Agents = append(frame.Agents, commontypes.VizMessageAgent{
			Id:          id.String(),
			Color:       ag.GetColor(),
			Position:    agentstate.GetPosition(),
			Velocity:    agentstate.GetVelocity(),
			Gamma:       agentstate.Gamma(),
			Contraction: agentstate.ContractionFactor(),
			Trajectory:  trajectory,
			Seen:        seen,
		})
	}

	return frame
}
