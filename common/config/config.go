package config

import (
	"encoding/json"
	"os"

	bettererrors "github.com/xtuc/better-errors"
)

type AgentGameConfig struct {
	Color string
	Spawn [3]float64
}

type GameConfig struct {
	Host    string
	Port    int
	VizPort int
	Tps     int
	Agents  []AgentGameConfig
}

type fileServerConfig struct {
	Server struct {
		Host    string
		Port    int
		VizPort int
		Tps     int
	}
	Agents []struct {
		Color string
		Spawn [3]float64
	}
}

// DefaultGameConfig is the sandbox setup used when no config file is
// given: two agents at rest, spatially separated.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Host:    "",
		Port:    8080,
		VizPort: 8081,
		Tps:     20,
		Agents: []AgentGameConfig{
			{Color: "#e74c3c", Spawn: [3]float64{-10, 0, 0}},
			{Color: "#3498db", Spawn: [3]float64{10, 0, 0}},
		},
	}
}

func LoadServerConfig(filename string) (GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return GameConfig{}, bettererrors.
			New("Could not read the configuration file").
			SetContext("filename", filename).
			With(bettererrors.NewFromErr(err))
	}

	var config fileServerConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return GameConfig{}, bettererrors.
			New("Configuration file is not valid JSON").
			SetContext("filename", filename).
			With(bettererrors.NewFromErr(err))
	}

	if config.Server.Port == 0 {
		return GameConfig{}, bettererrors.New("Port number must be provided in the configuration")
	}

	if config.Server.Tps == 0 {
		return GameConfig{}, bettererrors.New("TPS must be provided in the configuration")
	}

	gameconfig := GameConfig{
		Host:    config.Server.Host,
		Port:    config.Server.Port,
		VizPort: config.Server.VizPort,
		Tps:     config.Server.Tps,
	}

	if gameconfig.VizPort == 0 {
		gameconfig.VizPort = gameconfig.Port + 1
	}

	for _, agentconfig := range config.Agents {
		gameconfig.Agents = append(gameconfig.Agents, AgentGameConfig{
			Color: agentconfig.Color,
			Spawn: agentconfig.Spawn,
		})
	}

	return gameconfig, nil
}
