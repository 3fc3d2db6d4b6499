package handlers

import (
	"github.com/gorilla/websocket"
)

// Connection represents a WebSocket connection and its server-assigned id.
type Connection struct {
	id   string
	ws   *websocket.Conn
	send chan []byte
}

// delivery carries one outbound message to a set of connection ids.
type delivery struct {
	to      []string
	message []byte
}

// Hub maintains the set of active connections and delivers messages to the
// connections a notification addresses.
type Hub struct {
	// Registered connections keyed by connection id.
	connections map[string]*Connection

	register chan *Connection

	unregister chan *Connection

	deliver chan delivery
}

func newHub() *Hub {
	return &Hub{
		connections: make(map[string]*Connection),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		deliver:     make(chan delivery, 64),
	}
}

func (h *Hub) run() {
	for {
		select {
		case connection := <-h.register:
			h.connections[connection.id] = connection
		case connection := <-h.unregister:
			if _, ok := h.connections[connection.id]; ok {
				delete(h.connections, connection.id)
				close(connection.send)
			}
		case d := <-h.deliver:
			for _, id := range d.to {
				connection, ok := h.connections[id]
				if !ok {
					continue
				}
				select {
				case connection.send <- d.message:
				default:
					close(connection.send)
					delete(h.connections, id)
				}
			}
		}
	}
}
