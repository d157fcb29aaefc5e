package arenaserver

import (
	"runtime"
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/sogebu/LorentzArena/arenaserver/agent"
	"github.com/sogebu/LorentzArena/arenaserver/perception"
	"github.com/sogebu/LorentzArena/arenaserver/state"
	"github.com/sogebu/LorentzArena/common/utils"
)

// Start listens for agent connections and returns the block channel.
// Ticking does not begin here: it is gated on every expected net agent
// having handshaked (see onAgentsReady), so no tick ever tries to push
// perception over a connection that does not exist yet.
func (server *Server) Start() chan interface{} {

	utils.Debug("arena", "Listen")
	return server.Listen()
}

func (server *Server) onAgentsReady() {
	utils.Debug("arena", "All agents have handshaked; starting in .5 second")
	time.Sleep(time.Duration(time.Millisecond * 500))

	go func() {
		stopChannel := make(chan bool)
		server.AddTearDownCall(func() error {
			stopChannel <- true
			return nil
		})

		server.monitoring(stopChannel)
	}()

	server.startTicking()
}

func (server *Server) Stop() {
	utils.Debug("arena-server", "TearDown from stop")
	server.TearDown()
}

func (server *Server) startTicking() {

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.Tick(tickduration)

	server.AddTearDownCall(func() error {
		server.stopticking <- true
		close(server.stopticking)

		return nil
	})

	go func() {

		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("core-loop", "Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return
				}
			case <-ticker:
				{
					server.doTick()
				}
			}
		}
	}()
}

func (server *Server) doTick() {

	turn := server.getTurn()
	server.setTurn(turn.Next())

	dolog := (int(turn.GetSeq()) % server.tickspersec) == 0

	if dolog {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(int(turn.GetSeq())))
	}

	///////////////////////////////////////////////////////////////////////////
	// Updating world state
	///////////////////////////////////////////////////////////////////////////
	server.update()

	///////////////////////////////////////////////////////////////////////////
	// Refreshing perception for every agent
	///////////////////////////////////////////////////////////////////////////

	for _, ag := range server.agents {
		go func(server *Server, ag agent.AgentInterface, serverstate *state.ServerState) {

			err := ag.SetPerception(
				perception.ComputeAgentPerception(serverstate, ag.GetId()),
				server,
			)
			if err != nil {
				utils.Debug("arenaserver", "ERROR: could not set perception on agent "+ag.GetId().String())
			}

		}(server, ag, server.GetState())
	}

	///////////////////////////////////////////////////////////////////////////
	// Pushing updated state to viz
	///////////////////////////////////////////////////////////////////////////

	frame := server.buildVizFrame(turn.GetSeq())
	notify.PostTimeout("viz:message", frame, time.Millisecond)

	///////////////////////////////////////////////////////////////////////////

	if dolog {
		// Debug : Nombre de goroutines
		utils.Debug("core-loop", "Goroutines in flight : "+strconv.Itoa(runtime.NumGoroutine()))
	}
}
