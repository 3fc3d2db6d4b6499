package game

// LobbyStore maps lobby ids to lobbies and remembers insertion order so
// matchmaking can scan lobbies oldest-first. It is not safe for concurrent
// use on its own; the Coordinator serializes all access.
type LobbyStore struct {
	lobbies map[string]*Lobby
	order   []string
}

func NewLobbyStore() *LobbyStore {
	return &LobbyStore{lobbies: make(map[string]*Lobby)}
}

// Add inserts the lobby and reports whether its id was free.
func (s *LobbyStore) Add(lobby *Lobby) bool {
	if _, exists := s.lobbies[lobby.ID]; exists {
		return false
	}
	s.lobbies[lobby.ID] = lobby
	s.order = append(s.order, lobby.ID)
	return true
}

func (s *LobbyStore) Get(id string) (*Lobby, bool) {
	lobby, ok := s.lobbies[id]
	return lobby, ok
}

func (s *LobbyStore) Remove(id string) {
	if _, ok := s.lobbies[id]; !ok {
		return
	}
	delete(s.lobbies, id)
	for i, lobbyID := range s.order {
		if lobbyID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// FirstWaiting returns the oldest lobby that is still waiting for players and
// has room, or nil if every lobby is full or already playing.
func (s *LobbyStore) FirstWaiting(capacity int) *Lobby {
	for _, id := range s.order {
		lobby := s.lobbies[id]
		if !lobby.InGame && len(lobby.Players) < capacity {
			return lobby
		}
	}
	return nil
}

// FindByConnection returns the lobby containing the connection, if any. A
// connection belongs to at most one lobby at a time.
func (s *LobbyStore) FindByConnection(connectionID string) *Lobby {
	for _, id := range s.order {
		lobby := s.lobbies[id]
		if lobby.player(connectionID) != nil {
			return lobby
		}
	}
	return nil
}

func (s *LobbyStore) Len() int {
	return len(s.lobbies)
}
