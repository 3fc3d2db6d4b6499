package game

// NotificationType names an outbound event as it appears on the wire.
type NotificationType string

const (
	NotificationJoinedLobby  NotificationType = "joinedLobby"
	NotificationPlayerUpdate NotificationType = "playerUpdate"
	NotificationGameStarted  NotificationType = "gameStarted"
	NotificationGameEnded    NotificationType = "gameEnded"
)

// Notification is an outbound message addressed to a set of connections. The
// coordinator returns notifications instead of writing to sockets so that
// delivery happens after the state change is committed.
type Notification struct {
	Type    NotificationType
	To      []string
	Payload any
}

type JoinedLobbyPayload struct {
	LobbyID string   `json:"lobbyId"`
	Players []Player `json:"players"`
}

type PlayerUpdatePayload struct {
	Players []Player `json:"players"`
}

type GameStartedPayload struct {
	Questions []Question `json:"questions"`
}

type GameEndedPayload struct {
	Players []Player `json:"players"`
}
