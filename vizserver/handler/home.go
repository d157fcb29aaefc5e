package handler

import (
	"net/http"
	"strconv"

	"github.com/sogebu/LorentzArena/vizserver/types"
)

func Home(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>Welcome on VIZ SERVER !</h2>"))

		gamesArray := games.ToArrayGeneric()

		for _, item := range gamesArray {
			if game, ok := item.(*types.VizGame); ok {
				w.Write([]byte("<a href='/game/" + game.GetId() + "'>" + game.GetName() + " (" + strconv.Itoa(game.GetNumberWatchers()) + " watchers right now)</a><br />"))
			}
		}
	}
}
