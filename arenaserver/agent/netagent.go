package agent

import (
	"encoding/json"
	"net"

	"github.com/sogebu/LorentzArena/arenaserver/protocol"
)

type NetAgentInterface interface {
	AgentInterface
	SetConn(conn net.Conn) NetAgentInterface
	GetConn() net.Conn
}

type NetAgentImp struct {
	AgentImp
	conn net.Conn
}

func MakeNetAgentImp(color string) NetAgentImp {
	return NetAgentImp{
		AgentImp: MakeAgentImp(color),
	}
}

func (agent NetAgentImp) String() string {
	return "<NetAgentImp(" + agent.GetId().String() + ")>"
}

func (agent NetAgentImp) SetPerception(perception protocol.AgentPerception, comm protocol.AgentCommunicatorInterface) error {
	perceptionjson, _ := json.Marshal(perception)
	message := []byte("{\"Method\": \"tick\", \"Arguments\": [" + string(perceptionjson) + "]}\n")
	return comm.NetSend(message, agent.GetConn())
}

func (agent NetAgentImp) SetConn(conn net.Conn) NetAgentInterface {
	agent.conn = conn
	return agent
}

func (agent NetAgentImp) GetConn() net.Conn {
	return agent.conn
}
