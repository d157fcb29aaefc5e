package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	commontypes "github.com/sogebu/LorentzArena/common/types"
	"github.com/sogebu/LorentzArena/common/utils"
	"github.com/sogebu/LorentzArena/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket(games *types.VizGameMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		game := games.Get(vars["id"])

		if game == nil {
			w.Write([]byte("GAME NOT FOUND !"))
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		game.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			game.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Listen to messages incoming from viz; mandatory to notice when websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		// Listen to viz frames coming from the arena server
		vizmsgchan := make(chan interface{})
		notify.Start("viz:message", vizmsgchan)
		defer notify.Stop("viz:message", vizmsgchan)

		for {
			select {
			case <-incomingmsg:
				{
					// Any incoming message (or read error) means the client is done
					return
				}
			case <-clientclosedsocket:
				{
					return
				}
			case vizmsg := <-vizmsgchan:
				{
					frame, ok := vizmsg.(commontypes.VizMessage)
					utils.Assert(ok, "Failed to cast vizmessage into VizMessage")

					if game.GetId() != frame.GameID {
						continue
					}

					framejson, err := json.Marshal(frame)
					utils.Check(err, "Failed to encode vizmessage")

					c.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"frame\", \"data\": %s}", string(framejson))))
				}
			}
		}
	}
}
