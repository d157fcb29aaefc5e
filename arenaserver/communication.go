package arenaserver

import (
	"encoding/json"
	"errors"

	"github.com/sogebu/LorentzArena/arenaserver/agent"
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	"github.com/sogebu/LorentzArena/arenaserver/state"
	"github.com/sogebu/LorentzArena/common/utils"
)

type agentMessageHandshake struct {
	Greetings string
}

/* <implementing comm.CommDispatcherInterface> */

func (s *Server) DispatchAgentMessage(msg protocol.AgentMessage) error {

	ag, err := s.DoFindAgent(msg.GetAgentId().String())
	if err != nil {
		return errors.New("DispatchAgentMessage: agentid does not match any known agent in received agent message !;" + msg.GetAgentId().String())
	}

	switch msg.GetType() {
	case "handshake":
		{
			var handshake agentMessageHandshake
			err = json.Unmarshal(msg.GetPayload(), &handshake)
			if err != nil {
				return errors.New("DispatchAgentMessage: Failed to unmarshal JSON agent handshake payload for agent " + msg.GetAgentId().String() + "; " + string(msg.GetPayload()))
			}

			netag, ok := ag.(agent.NetAgentInterface)
			if !ok {
				return errors.New("DispatchAgentMessage: Failed to cast agent to NetAgent during handshake for " + ag.String())
			}

			s.setAgent(netag.SetConn(msg.GetEmitterConn()))

			utils.Debug("arena", "Received handshake from agent "+ag.String()+"; agent said \""+handshake.Greetings+"\"")

			s.agentsmutex.Lock()
			s.nbhandshaked++
			allready := s.nbhandshaked == s.nbexpectedagents
			s.agentsmutex.Unlock()

			if allready {
				s.onAgentsReady()
			}

			// TODO: handle some timeout here if all agents fail to handshake

			break
		}
	case "mutations":
		{
			var mutations struct {
				Mutations []protocol.AgentMutationMessage
			}

			err = json.Unmarshal(msg.GetPayload(), &mutations)
			if err != nil {
				return errors.New("DispatchAgentMessage: Failed to unmarshal JSON agent mutation payload for agent " + ag.String() + "; " + string(msg.GetPayload()))
			}

			s.PushMutationBatch(protocol.AgentMutationBatch{
				AgentId:   msg.GetAgentId(),
				Mutations: mutations.Mutations,
			})

			break
		}
	case "phaseSpace":
		{
			// State update relayed for a remote peer agent: deserialize
			// into a fresh PhaseSpace and append it to the sender's
			// world line. The stream is assumed plausibly time-ordered
			// per remote agent; no reconciliation happens here.
			var psmsg protocol.PhaseSpaceMessage
			err = json.Unmarshal(msg.GetPayload(), &psmsg)
			if err != nil {
				return errors.New("DispatchAgentMessage: Failed to unmarshal JSON phaseSpace payload for agent " + ag.String() + "; " + string(msg.GetPayload()))
			}

			phasespace := state.MakePhaseSpaceFromMessage(psmsg)

			s.state.SetAgentState(msg.GetAgentId(), phasespace)
			s.state.GetWorldLine(msg.GetAgentId()).Append(phasespace)

			break
		}
	default:
		{
			return errors.New("DispatchAgentMessage: Unknown message type " + msg.GetType())
		}
	}

	return nil
}

/* </implementing comm.CommDispatcherInterface> */
