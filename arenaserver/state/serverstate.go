package state

import (
	"encoding/json"
	"sync"

	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	"github.com/sogebu/LorentzArena/common/utils"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	uuid "github.com/satori/go.uuid"
)

type ServerState struct {
	Agents      map[uuid.UUID](PhaseSpace)
	Agentsmutex *sync.Mutex

	Worldlines      map[uuid.UUID](*WorldLine)
	Worldlinesmutex *sync.Mutex

	thrusts      map[uuid.UUID](vector.Vector3)
	thrustsmutex *sync.Mutex

	pendingmutations []protocol.AgentMutationBatch
	mutationsmutex   *sync.Mutex
}

/* ***************************************************************************/
/* ServerState implementation */
/* ***************************************************************************/

func NewServerState() *ServerState {
	return &ServerState{
		Agents:      make(map[uuid.UUID](PhaseSpace)),
		Agentsmutex: &sync.Mutex{},

		Worldlines:      make(map[uuid.UUID](*WorldLine)),
		Worldlinesmutex: &sync.Mutex{},

		thrusts:      make(map[uuid.UUID](vector.Vector3)),
		thrustsmutex: &sync.Mutex{},

		pendingmutations: make([]protocol.AgentMutationBatch, 0),
		mutationsmutex:   &sync.Mutex{},
	}
}

func (serverstate *ServerState) GetAgentState(agentid uuid.UUID) PhaseSpace {
	serverstate.Agentsmutex.Lock()
	res := serverstate.Agents[agentid]
	serverstate.Agentsmutex.Unlock()

	return res
}

func (serverstate *ServerState) SetAgentState(agentid uuid.UUID, agentstate PhaseSpace) {
	serverstate.Agentsmutex.Lock()
	serverstate.Agents[agentid] = agentstate
	serverstate.Agentsmutex.Unlock()
}

func (serverstate *ServerState) RemoveAgentState(agentid uuid.UUID) {
	serverstate.Agentsmutex.Lock()
	delete(serverstate.Agents, agentid)
	serverstate.Agentsmutex.Unlock()

	serverstate.Worldlinesmutex.Lock()
	delete(serverstate.Worldlines, agentid)
	serverstate.Worldlinesmutex.Unlock()
}

func (serverstate *ServerState) GetWorldLine(agentid uuid.UUID) *WorldLine {
	serverstate.Worldlinesmutex.Lock()
	res := serverstate.Worldlines[agentid]
	serverstate.Worldlinesmutex.Unlock()

	return res
}

// InitAgent installs the spawn state of a new agent: a PhaseSpace at
// rest at the given position, and a fresh world line seeded with it.
func (serverstate *ServerState) InitAgent(agentid uuid.UUID, pos vector.Vector4) {
	phasespace := MakePhaseSpaceAtRest(pos)

	serverstate.SetAgentState(agentid, phasespace)

	worldline := NewWorldLine()
	worldline.Append(phasespace)

	serverstate.Worldlinesmutex.Lock()
	serverstate.Worldlines[agentid] = worldline
	serverstate.Worldlinesmutex.Unlock()
}

// GetThrust returns the proper acceleration the agent requested for the
// coming tick; the zero vector when it requested none.
func (serverstate *ServerState) GetThrust(agentid uuid.UUID) vector.Vector3 {
	serverstate.thrustsmutex.Lock()
	res := serverstate.thrusts[agentid]
	serverstate.thrustsmutex.Unlock()

	return res
}

// LastEventsExcept snapshots the last recorded world-line event of
// every agent but the given one; input of the causality gate.
func (serverstate *ServerState) LastEventsExcept(agentid uuid.UUID) []vector.Vector4 {
	serverstate.Worldlinesmutex.Lock()
	events := make([]vector.Vector4, 0, len(serverstate.Worldlines))
	for otherid, worldline := range serverstate.Worldlines {
		if otherid == agentid {
			continue
		}
		if last, ok := worldline.Last(); ok {
			events = append(events, last.GetPosition())
		}
	}
	serverstate.Worldlinesmutex.Unlock()

	return events
}

func (serverstate *ServerState) PushMutationBatch(batch protocol.AgentMutationBatch) {
	serverstate.mutationsmutex.Lock()
	serverstate.pendingmutations = append(serverstate.pendingmutations, batch)
	serverstate.mutationsmutex.Unlock()
}

// ProcessMutations drains the pending batches and applies them;
// currently the only supported method is "thrust".
func (serverstate *ServerState) ProcessMutations() {

	serverstate.mutationsmutex.Lock()
	mutations := serverstate.pendingmutations
	serverstate.pendingmutations = make([]protocol.AgentMutationBatch, 0)
	serverstate.mutationsmutex.Unlock()

	for _, batch := range mutations {
		for _, mutation := range batch.Mutations {
			switch mutation.GetMethod() {
			case "thrust":
				var thrust protocol.ThrustMessage
				err := json.Unmarshal(mutation.GetArguments(), &thrust)
				if err != nil {
					utils.Debug("serverstate", "Failed to unmarshal thrust mutation; "+err.Error())
					continue
				}

				serverstate.thrustsmutex.Lock()
				serverstate.thrusts[batch.AgentId] = vector.MakeVector3(thrust.X, thrust.Y, thrust.Z)
				serverstate.thrustsmutex.Unlock()

			default:
				utils.Debug("serverstate", "Unknown mutation method "+mutation.GetMethod())
			}
		}
	}
}
