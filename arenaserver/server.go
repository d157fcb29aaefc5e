package arenaserver

import (
	"errors"
	"net"
	"strconv"
	"sync"

	notify "github.com/bitly/go-notify"
	"github.com/sogebu/LorentzArena/arenaserver/agent"
	"github.com/sogebu/LorentzArena/arenaserver/comm"
	"github.com/sogebu/LorentzArena/arenaserver/protocol"
	"github.com/sogebu/LorentzArena/arenaserver/state"
	"github.com/sogebu/LorentzArena/common/utils"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	uuid "github.com/satori/go.uuid"
)

// MaxThrust caps the magnitude of the proper acceleration an agent may
// request per tick.
const MaxThrust = 4.0

type TearDownCallback func() error

type Server struct {
	host        string
	port        int
	tickspersec int

	stopticking chan bool

	agents      map[uuid.UUID]agent.AgentInterface
	agentsmutex *sync.Mutex

	spawns     []vector.Vector3
	spawnindex int

	state      *state.ServerState
	commserver *comm.CommServer

	nbexpectedagents int
	nbhandshaked     int

	currentturn      utils.Tickturn
	currentturnmutex *sync.Mutex

	tearDownCallbacks      []TearDownCallback
	tearDownCallbacksMutex *sync.Mutex

	debugNbMutations int
	debugNbUpdates   int
}

func NewServer(host string, port int, tickspersec int, spawns []vector.Vector3) *Server {
	return &Server{
		host:        host,
		port:        port,
		tickspersec: tickspersec,

		stopticking: make(chan bool),

		agents:      make(map[uuid.UUID]agent.AgentInterface),
		agentsmutex: &sync.Mutex{},

		spawns: spawns,

		state:      state.NewServerState(),
		commserver: nil, // initialized in Listen()

		currentturnmutex: &sync.Mutex{},

		tearDownCallbacks:      make([]TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) GetState() *state.ServerState {
	return server.state
}

// RegisterAgent spawns an agent at the next spawn point, at rest, at
// the server's current coordinate time, and seeds its world line.
func (server *Server) RegisterAgent(ag agent.AgentInterface) {
	utils.Assert(server.spawnindex < len(server.spawns), "Agent cannot spawn, no starting point left")

	spawn := server.spawns[server.spawnindex]
	server.spawnindex++

	sx, sy, sz := spawn.Get()
	spawnpos := vector.MakeVector4(server.currentTime(), sx, sy, sz)

	server.setAgent(ag)
	server.state.InitAgent(ag.GetId(), spawnpos)

	// Only net agents handshake; local agents are driven in-process.
	if _, ok := ag.(agent.NetAgentInterface); ok {
		server.nbexpectedagents++
	}

	utils.Debug("arena", "Registered agent "+ag.String()+" at "+spawnpos.String())
}

func (server *Server) setAgent(ag agent.AgentInterface) {
	server.agentsmutex.Lock()
	server.agents[ag.GetId()] = ag
	server.agentsmutex.Unlock()
}

// currentTime is the shared world-frame coordinate time, measured in
// ticks elapsed; every spawn and every world-line sample is stamped
// with it.
func (server *Server) currentTime() float64 {
	return float64(server.getTurn().GetSeq()) * server.tickDuration()
}

// tickDuration is both the coordinate-time and the proper-time step of
// one tick (a fresh agent is at rest in the world frame; dτ stays the
// per-agent integration step thereafter).
func (server *Server) tickDuration() float64 {
	return 1.0 / float64(server.tickspersec)
}

func (s *Server) setTurn(turn utils.Tickturn) {
	s.currentturnmutex.Lock()
	s.currentturn = turn
	s.currentturnmutex.Unlock()
}

func (s *Server) getTurn() utils.Tickturn {
	s.currentturnmutex.Lock()
	res := s.currentturn
	s.currentturnmutex.Unlock()
	return res
}

func (server *Server) Listen() chan interface{} {
	serveraddress := server.host + ":" + strconv.Itoa(server.port)
	server.commserver = comm.NewCommServer(serveraddress)

	utils.Debug("arena", "Server listening on "+serveraddress)

	go func() {
		err := server.commserver.Listen(server)
		utils.Check(err, "Failed to listen on "+serveraddress)
		notify.Post("app:stopticking", nil)
	}()

	go func() {
		for event := range server.commserver.Events() {
			switch t := event.(type) {
			case comm.EventLog:
				utils.Debug("comm", t.Value)
			case comm.EventError:
				utils.Debug("comm", "ERROR: "+t.Err.Error())
			case comm.EventConnDisconnected:
				utils.Debug("comm", "Agent connection closed; "+t.Err.Error())
			}
		}
	}()

	if server.nbexpectedagents == 0 {
		// Nothing to wait for; local-only games start right away.
		server.onAgentsReady()
	}

	block := make(chan interface{})
	notify.Start("app:stopticking", block)

	return block
}

func (server *Server) DoFindAgent(agentid string) (agent.AgentInterface, error) {
	var emptyagent agent.AgentInterface

	foundkey, err := uuid.FromString(agentid)
	if err != nil {
		return emptyagent, err
	}

	server.agentsmutex.Lock()
	if foundagent, ok := server.agents[foundkey]; ok {
		server.agentsmutex.Unlock()
		return foundagent, nil
	}
	server.agentsmutex.Unlock()

	return emptyagent, errors.New("Agent " + agentid + " not found")
}

/* <implementing protocol.AgentCommunicatorInterface> */

func (server *Server) NetSend(message []byte, conn net.Conn) error {
	return server.commserver.Send(message, conn)
}

func (server *Server) PushMutationBatch(batch protocol.AgentMutationBatch) {
	server.state.PushMutationBatch(batch)
	server.debugNbMutations++
}

/* </implementing protocol.AgentCommunicatorInterface> */

func (s *Server) AddTearDownCall(fn TearDownCallback) {
	s.tearDownCallbacksMutex.Lock()
	defer s.tearDownCallbacksMutex.Unlock()

	s.tearDownCallbacks = append(s.tearDownCallbacks, fn)
}

func (server *Server) TearDown() {
	utils.Debug("arena", "teardown")

	server.tearDownCallbacksMutex.Lock()

	for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		server.tearDownCallbacks[i]()
	}

	// Reset to avoid calling teardown callback multiple times
	server.tearDownCallbacks = make([]TearDownCallback, 0)

	server.tearDownCallbacksMutex.Unlock()
}
