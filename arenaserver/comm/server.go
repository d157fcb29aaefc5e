package comm

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/sogebu/LorentzArena/arenaserver/protocol"
)

type CommDispatcherInterface interface {
	DispatchAgentMessage(msg protocol.AgentMessage) error
}

type CommServer struct {
	address  string
	listener net.Listener

	events chan interface{}
}

// Creates new tcp server instance
func NewCommServer(address string) *CommServer {
	return &CommServer{
		address: address,

		events: make(chan interface{}),
	}
}

func (s *CommServer) Send(message []byte, conn net.Conn) error {
	if conn == nil {
		// Agent has not handshaked yet; nothing to write on.
		return errors.New("CommServer::Send(); agent has no connection")
	}

	_, err := conn.Write(message)
	if err != nil {
		return err
	}

	return nil
}

func (s *CommServer) Listen(dispatcher CommDispatcherInterface) error {

	ln, err := net.Listen("tcp4", s.address)
	if err != nil {
		return fmt.Errorf("Comm server could not listen on %s; %s", s.address, err.Error())
	}

	s.listener = ln

	go func() {
		defer s.listener.Close()
		for {

			conn, err := s.listener.Accept()
			if err != nil {
				s.events <- EventError{err}
				continue
			}

			go func() {
				defer conn.Close()
				reader := bufio.NewReader(conn)
				for {

					buf, err := reader.ReadBytes('\n')
					if err != nil {
						// The agent hung up (or crashed); not fatal for the server
						s.events <- EventConnDisconnected{Err: err, Conn: conn}
						return
					}

					// Unmarshal message (unwrapping in an AgentMessage structure)
					var msg protocol.AgentMessage
					err = json.Unmarshal(buf, &msg)
					if err != nil {
						s.events <- EventLog{"Failed to unmarshal incoming JSON in CommServer::Listen(); " + string(buf) + ";" + err.Error()}
					} else {
						msg.EmitterConn = conn

						go func() {
							err := dispatcher.DispatchAgentMessage(msg)
							if err != nil {
								s.events <- EventLog{"Failed to dispatch agent message; " + err.Error()}
							}
						}()
					}
				}
			}()
		}
	}()

	return nil
}

func (s *CommServer) Events() chan interface{} {
	return s.events
}
