package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	apphandler "github.com/sogebu/LorentzArena/vizserver/handler"
	"github.com/sogebu/LorentzArena/vizserver/types"
)

type FetchGamesCbk func() ([]*types.VizGame, error)

type VizService struct {
	addr       string
	fetchGames FetchGamesCbk
}

func NewVizService(addr string, fetchGames FetchGamesCbk) *VizService {
	return &VizService{
		addr:       addr,
		fetchGames: fetchGames,
	}
}

func (viz *VizService) ListenAndServe() error {

	games, err := viz.fetchGames()
	if err != nil {
		return err
	}

	vizgames := types.NewVizGameMap()
	for _, game := range games {
		vizgames.Set(game.GetId(), game)
	}

	logger := os.Stdout
	router := mux.NewRouter()
	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizgames)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizgames)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
