package types

import (
	"github.com/sogebu/LorentzArena/common/utils"
)

type VizGame struct {
	id   string
	name string
	tps  int
	pool *WatcherMap
}

func NewVizGame(id string, name string, tps int) *VizGame {
	return &VizGame{
		id:   id,
		name: name,
		tps:  tps,
		pool: NewWatcherMap(),
	}
}

func (game *VizGame) GetId() string {
	return game.id
}

func (game *VizGame) GetName() string {
	return game.name
}

func (game *VizGame) GetTps() int {
	return game.tps
}

type VizInitMessageData struct {
	Id  string `json:"id"`
	Tps int    `json:"tps"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

func (game *VizGame) SetWatcher(watcher *Watcher) {
	game.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Id:  game.id,
			Tps: game.tps,
		},
	}

	err := watcher.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

func (game *VizGame) RemoveWatcher(watcherid string) {
	game.pool.Remove(watcherid)
}

func (game *VizGame) GetNumberWatchers() int {
	return game.pool.Size()
}
