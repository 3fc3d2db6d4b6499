package game

// Question is a single arithmetic problem shared by both players of a lobby.
type Question struct {
	Text   string `json:"text"`
	Answer int    `json:"answer"`
}

// Player holds the per-lobby state of one connected player. The ID is the
// opaque connection id owned by the websocket layer.
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Finished bool   `json:"finished"`
}

// Lobby groups up to LobbyCapacity players around one fixed question set.
// Questions are assigned at creation and never change afterwards.
type Lobby struct {
	ID        string
	Players   []*Player
	Questions []Question
	InGame    bool
	Ended     bool
}

// PlayerList returns a copy of the current player states, safe to hand to the
// transport layer after the coordinator lock is released.
func (l *Lobby) PlayerList() []Player {
	players := make([]Player, len(l.Players))
	for i, p := range l.Players {
		players[i] = *p
	}
	return players
}

func (l *Lobby) connectionIDs() []string {
	ids := make([]string, len(l.Players))
	for i, p := range l.Players {
		ids[i] = p.ID
	}
	return ids
}

func (l *Lobby) player(connectionID string) *Player {
	for _, p := range l.Players {
		if p.ID == connectionID {
			return p
		}
	}
	return nil
}

func (l *Lobby) allFinished() bool {
	for _, p := range l.Players {
		if !p.Finished {
			return false
		}
	}
	return true
}
