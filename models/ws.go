package models

// ActionMessage is the inbound websocket frame. Action selects the event and
// the remaining fields are filled depending on it.
type ActionMessage struct {
	Action    string `json:"action"`
	Username  string `json:"username,omitempty"`
	LobbyID   string `json:"lobbyId,omitempty"`
	IsCorrect bool   `json:"isCorrect,omitempty"`
}

// ServerMessage is the outbound websocket frame.
type ServerMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
