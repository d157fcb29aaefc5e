package arenaserver

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/sogebu/LorentzArena/arenaserver/agent"
	"github.com/sogebu/LorentzArena/arenaserver/comm"
	"github.com/sogebu/LorentzArena/arenaserver/perception"
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	"github.com/stretchr/testify/assert"
)

func makeTestServer() *Server {
	return NewServer("", 0, 20, []vector.Vector3{
		vector.MakeVector3(-10, 0, 0),
		vector.MakeVector3(10, 0, 0),
		vector.MakeVector3(0, 10, 0),
	})
}

func TestExpectedHandshakesCountNetAgentsOnly(t *testing.T) {
	server := makeTestServer()

	server.RegisterAgent(agent.MakeNetAgentImp("#ff0000"))
	server.RegisterAgent(agent.MakeNetAgentImp("#00ff00"))
	server.RegisterAgent(agent.MakeLocalAgentImp("#0000ff"))

	assert.Equal(t, 2, server.nbexpectedagents)
	assert.Equal(t, 0, server.nbhandshaked)
}

func TestHandshakeWiresConnectionBeforeTicking(t *testing.T) {
	server := makeTestServer()

	first := agent.MakeNetAgentImp("#ff0000")
	second := agent.MakeNetAgentImp("#00ff00")
	server.RegisterAgent(first)
	server.RegisterAgent(second)

	serverside, clientside := net.Pipe()
	defer serverside.Close()
	defer clientside.Close()

	payload, _ := json.Marshal(agentMessageHandshake{Greetings: "hello"})
	err := server.DispatchAgentMessage(protocol.AgentMessage{
		AgentId:     first.GetId(),
		Type:        "handshake",
		Payload:     payload,
		EmitterConn: serverside,
	})
	assert.NoError(t, err)

	// One of two expected agents has handshaked; the gate must hold.
	assert.Equal(t, 1, server.nbhandshaked)

	found, err := server.DoFindAgent(first.GetId().String())
	assert.NoError(t, err)
	netag, ok := found.(agent.NetAgentInterface)
	assert.True(t, ok)
	assert.Equal(t, serverside, netag.GetConn())
}

func TestPerceptionPushBeforeHandshakeFailsCleanly(t *testing.T) {
	server := makeTestServer()
	server.commserver = comm.NewCommServer("")

	ag := agent.MakeNetAgentImp("#ff0000")
	server.RegisterAgent(ag)

	// The agent has not handshaked: its connection is nil. Pushing a
	// perception must surface an error, never crash the server.
	p := perception.ComputeAgentPerception(server.GetState(), ag.GetId())
	assert.Error(t, ag.SetPerception(p, server))
}
