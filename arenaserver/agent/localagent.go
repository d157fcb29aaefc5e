package agent

import (
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
)

type LocalAgentInterface interface {
	AgentInterface
}

// LocalAgentImp is an in-process agent driven by the host application
// (e.g. the keyboard-controlled player); perception is pulled, not
// pushed over the wire.
type LocalAgentImp struct {
	AgentImp
}

func MakeLocalAgentImp(color string) LocalAgentImp {
	return LocalAgentImp{
		AgentImp: MakeAgentImp(color),
	}
}

func (agent LocalAgentImp) String() string {
	return "<LocalAgentImp(" + agent.GetId().String() + ")>"
}

func (agent LocalAgentImp) SetPerception(perception protocol.AgentPerception, comm protocol.AgentCommunicatorInterface) error {
	return nil
}
