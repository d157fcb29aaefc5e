package agent

import (
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	uuid "github.com/satori/go.uuid"
)

type AgentInterface interface {
	GetId() uuid.UUID
	GetColor() string
	String() string
	SetPerception(perception protocol.AgentPerception, comm protocol.AgentCommunicatorInterface) error // abstract method
}

type AgentImp struct {
	id    uuid.UUID
	color string
}

func MakeAgentImp(color string) AgentImp {
	return AgentImp{
		id:    uuid.NewV4(), // random uuid
		color: color,
	}
}

func (agent AgentImp) GetId() uuid.UUID {
	return agent.id
}

func (agent AgentImp) GetColor() string {
	return agent.color
}

func (agent AgentImp) String() string {
	return "<AgentImp(" + agent.GetId().String() + ")>"
}

func (agent AgentImp) SetPerception(perception protocol.AgentPerception, comm protocol.AgentCommunicatorInterface) error {
	// I'm abstract, override me !
	return nil
}
