package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sogebu/LorentzArena/common/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()

	assert.Equal(t, 20, cfg.Tps)
	assert.Equal(t, cfg.Port+1, cfg.VizPort)
	assert.Len(t, cfg.Agents, 2)
	assert.NotEqual(t, cfg.Agents[0].Spawn, cfg.Agents[1].Spawn)
}

func TestLoadServerConfig(t *testing.T) {
	filename := writeTempConfig(t, `{
		"server": {"host": "localhost", "port": 9000, "tps": 10},
		"agents": [
			{"color": "#ff0000", "spawn": [-5, 0, 0]},
			{"color": "#00ff00", "spawn": [5, 0, 0]}
		]
	}`)

	cfg, err := config.LoadServerConfig(filename)
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 9001, cfg.VizPort, "viz port defaults to port+1")
	assert.Equal(t, 10, cfg.Tps)
	assert.Len(t, cfg.Agents, 2)
	assert.Equal(t, [3]float64{-5, 0, 0}, cfg.Agents[0].Spawn)
}

func TestLoadServerConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadServerConfig("/nonexistent/path.json")
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		filename := writeTempConfig(t, `{not json`)
		_, err := config.LoadServerConfig(filename)
		assert.Error(t, err)
	})

	t.Run("missing port", func(t *testing.T) {
		filename := writeTempConfig(t, `{"server": {"tps": 10}}`)
		_, err := config.LoadServerConfig(filename)
		assert.Error(t, err)
	})

	t.Run("missing tps", func(t *testing.T) {
		filename := writeTempConfig(t, `{"server": {"port": 9000}}`)
		_, err := config.LoadServerConfig(filename)
		assert.Error(t, err)
	})
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "game.json")
	err := os.WriteFile(filename, []byte(content), 0644)
	assert.NoError(t, err)

	return filename
}
