package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/quizduel/quizduel-backend/game"
	"github.com/quizduel/quizduel-backend/models"
	"github.com/quizduel/quizduel-backend/repository"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server wires the websocket transport to the lobby coordinator. It resolves
// raw frames to coordinator events and fans the returned notifications out to
// the addressed connections.
type Server struct {
	coordinator *game.Coordinator
	hub         *Hub
	matches     *repository.MatchRepository
	logger      *slog.Logger
}

func NewServer(coordinator *game.Coordinator, matches *repository.MatchRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	hub := newHub()
	go hub.run()
	return &Server{
		coordinator: coordinator,
		hub:         hub,
		matches:     matches,
		logger:      logger,
	}
}

func (s *Server) WsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	connection := &Connection{id: uuid.NewString(), ws: conn, send: make(chan []byte, 256)}

	// Register the connection to the hub for message delivery
	s.hub.register <- connection
	s.logger.Info("client connected", "connection_id", connection.id)

	go connection.writePump()
	s.readPump(connection)
}

func (s *Server) readPump(c *Connection) {
	defer func() {
		s.hub.unregister <- c
		c.ws.Close()
		// Drop the player from their lobby; the remaining player is notified
		// and the round may complete on their behalf.
		s.dispatch(s.coordinator.Disconnect(c.id))
		s.logger.Info("client disconnected", "connection_id", c.id)
	}()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", "connection_id", c.id, "error", err)
			}
			break
		}
		s.processMessage(c, message)
	}
}

func (c *Connection) writePump() {
	defer func() {
		c.ws.Close()
	}()

	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func (s *Server) processMessage(c *Connection, rawMessage []byte) {
	var msg models.ActionMessage
	if err := json.Unmarshal(rawMessage, &msg); err != nil {
		s.logger.Warn("error unmarshalling action message", "connection_id", c.id, "error", err)
		return
	}

	switch msg.Action {
	case "findMatch":
		s.dispatch(s.coordinator.RequestMatch(c.id, msg.Username))
	case "submitAnswer":
		s.dispatch(s.coordinator.SubmitAnswer(c.id, msg.LobbyID, msg.IsCorrect))
	case "quizFinished":
		s.dispatch(s.coordinator.QuizFinished(c.id, msg.LobbyID))
	default:
		s.logger.Warn("unhandled action", "connection_id", c.id, "action", msg.Action)
	}
}

// dispatch hands coordinator notifications to the hub for delivery.
func (s *Server) dispatch(notifications []game.Notification) {
	for _, n := range notifications {
		message, err := json.Marshal(models.ServerMessage{Type: string(n.Type), Data: n.Payload})
		if err != nil {
			s.logger.Error("error marshalling notification", "type", n.Type, "error", err)
			continue
		}
		s.hub.deliver <- delivery{to: n.To, message: message}
	}
}
