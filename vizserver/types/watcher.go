package types

import (
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

type Watcher struct {
	id   uuid.UUID
	conn *websocket.Conn
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:   uuid.NewV4(),
		conn: conn,
	}
}

func (w *Watcher) GetId() string {
	return w.id.String()
}

func (w *Watcher) WriteJSON(v interface{}) error {
	return w.conn.WriteJSON(v)
}

func (w *Watcher) WriteMessage(messageType int, data []byte) error {
	return w.conn.WriteMessage(messageType, data)
}
