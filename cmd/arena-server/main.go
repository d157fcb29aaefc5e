package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sogebu/LorentzArena/arenaserver"
	"github.com/sogebu/LorentzArena/arenaserver/agent"
	"github.com/sogebu/LorentzArena/common/config"
	"github.com/sogebu/LorentzArena/common/utils"
	"github.com/sogebu/LorentzArena/common/utils/vector"
	"github.com/sogebu/LorentzArena/vizserver"
	viztypes "github.com/sogebu/LorentzArena/vizserver/types"
)

func main() {

	rand.Seed(time.Now().UnixNano())

	configpath := flag.String("config", "", "Path to the game config file; sandbox defaults when empty")
	flag.Parse()

	gameconfig := config.DefaultGameConfig()
	if *configpath != "" {
		loaded, err := config.LoadServerConfig(*configpath)
		if err != nil {
			utils.FailWith(err)
		}
		gameconfig = loaded
	}

	if host, exists := os.LookupEnv("HOST"); exists {
		gameconfig.Host = host
	}

	spawns := make([]vector.Vector3, 0, len(gameconfig.Agents))
	for _, agentconfig := range gameconfig.Agents {
		spawns = append(spawns, vector.MakeVector3(
			agentconfig.Spawn[0],
			agentconfig.Spawn[1],
			agentconfig.Spawn[2],
		))
	}

	srv := arenaserver.NewServer(
		gameconfig.Host,
		gameconfig.Port,
		gameconfig.Tps,
		spawns,
	)

	for _, agentconfig := range gameconfig.Agents {
		srv.RegisterAgent(agent.MakeNetAgentImp(agentconfig.Color))
	}

	// handling signals
	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-hassigtermed
		srv.Stop()
		os.Exit(1)
	}()

	go func() {
		viz := vizserver.NewVizService(
			gameconfig.Host+":"+strconv.Itoa(gameconfig.VizPort),
			func() ([]*viztypes.VizGame, error) {
				return []*viztypes.VizGame{
					viztypes.NewVizGame("lorentzarena", "Lorentz Arena", gameconfig.Tps),
				}, nil
			},
		)
		utils.Check(viz.ListenAndServe(), "Could not start viz service")
	}()

	<-srv.Start()
	srv.TearDown()
}
