package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLobbyCapacity = 2
	DefaultQuestionCount = 10
	DefaultScoreAward    = 10
)

// MatchRecorder persists the final scoreboard of a completed game. Recording
// happens outside the coordinator lock and failures only affect history, not
// game state.
type MatchRecorder interface {
	RecordMatch(id string, finishedAt time.Time, players []Player) error
}

// Config carries the gameplay constants. Zero values fall back to the
// defaults above.
type Config struct {
	LobbyCapacity int
	QuestionCount int
	ScoreAward    int
}

// Coordinator applies connection events to the lobby store and decides which
// notifications go out. A single mutex serializes events: one event is fully
// applied, including computing its notifications, before the next one starts,
// so two match requests can never both fill the same lobby slot.
type Coordinator struct {
	mu        sync.Mutex
	store     *LobbyStore
	questions *QuestionGenerator
	recorder  MatchRecorder
	logger    *slog.Logger

	capacity      int
	questionCount int
	scoreAward    int
}

func NewCoordinator(cfg Config, logger *slog.Logger, recorder MatchRecorder) *Coordinator {
	if cfg.LobbyCapacity <= 0 {
		cfg.LobbyCapacity = DefaultLobbyCapacity
	}
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = DefaultQuestionCount
	}
	if cfg.ScoreAward <= 0 {
		cfg.ScoreAward = DefaultScoreAward
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		store:         NewLobbyStore(),
		questions:     NewQuestionGenerator(),
		recorder:      recorder,
		logger:        logger,
		capacity:      cfg.LobbyCapacity,
		questionCount: cfg.QuestionCount,
		scoreAward:    cfg.ScoreAward,
	}
}

// RequestMatch joins the connection to the oldest waiting lobby with room, or
// creates a new one. Filling the last slot starts the game. A connection that
// is already in a lobby is ignored, so a player cannot match against themselves.
func (c *Coordinator) RequestMatch(connectionID, username string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store.FindByConnection(connectionID) != nil {
		c.logger.Warn("match request from connection already in a lobby", "connection_id", connectionID)
		return nil
	}

	player := &Player{ID: connectionID, Username: username}

	if lobby := c.store.FirstWaiting(c.capacity); lobby != nil {
		lobby.Players = append(lobby.Players, player)
		notifications := []Notification{
			{
				Type:    NotificationJoinedLobby,
				To:      []string{connectionID},
				Payload: JoinedLobbyPayload{LobbyID: lobby.ID, Players: lobby.PlayerList()},
			},
			{
				Type:    NotificationPlayerUpdate,
				To:      lobby.connectionIDs(),
				Payload: PlayerUpdatePayload{Players: lobby.PlayerList()},
			},
		}
		if len(lobby.Players) == c.capacity {
			lobby.InGame = true
			questions := make([]Question, len(lobby.Questions))
			copy(questions, lobby.Questions)
			notifications = append(notifications, Notification{
				Type:    NotificationGameStarted,
				To:      lobby.connectionIDs(),
				Payload: GameStartedPayload{Questions: questions},
			})
			c.logger.Info("game started", "lobby_id", lobby.ID, "players", len(lobby.Players))
		}
		return notifications
	}

	lobby := &Lobby{
		ID:        uuid.NewString(),
		Players:   []*Player{player},
		Questions: c.questions.Generate(c.questionCount),
	}
	for !c.store.Add(lobby) {
		lobby.ID = uuid.NewString()
	}
	c.logger.Info("lobby created", "lobby_id", lobby.ID, "username", username)

	return []Notification{{
		Type:    NotificationJoinedLobby,
		To:      []string{connectionID},
		Payload: JoinedLobbyPayload{LobbyID: lobby.ID, Players: lobby.PlayerList()},
	}}
}

// SubmitAnswer awards points for a correct answer and broadcasts the player
// list to the lobby regardless of the outcome. Stale lobby ids are ignored.
func (c *Coordinator) SubmitAnswer(connectionID, lobbyID string, isCorrect bool) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby, ok := c.store.Get(lobbyID)
	if !ok {
		return nil
	}

	if player := lobby.player(connectionID); player != nil && isCorrect {
		player.Score += c.scoreAward
	}

	return []Notification{{
		Type:    NotificationPlayerUpdate,
		To:      lobby.connectionIDs(),
		Payload: PlayerUpdatePayload{Players: lobby.PlayerList()},
	}}
}

// QuizFinished marks the player as done. Once every player in the lobby has
// finished, the game ends and the final scoreboard goes out.
func (c *Coordinator) QuizFinished(connectionID, lobbyID string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby, ok := c.store.Get(lobbyID)
	if !ok {
		return nil
	}

	if player := lobby.player(connectionID); player != nil {
		player.Finished = true
	}

	if !lobby.Ended && lobby.allFinished() {
		return c.endGame(lobby)
	}
	return nil
}

// Disconnect removes the connection from its lobby, dropping the lobby
// entirely when it empties out. If everyone left behind had already finished,
// the disconnect completes the round for them.
func (c *Coordinator) Disconnect(connectionID string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby := c.store.FindByConnection(connectionID)
	if lobby == nil {
		return nil
	}

	for i, p := range lobby.Players {
		if p.ID == connectionID {
			lobby.Players = append(lobby.Players[:i], lobby.Players[i+1:]...)
			break
		}
	}

	if len(lobby.Players) == 0 {
		c.store.Remove(lobby.ID)
		c.logger.Info("lobby removed", "lobby_id", lobby.ID)
		return nil
	}

	notifications := []Notification{{
		Type:    NotificationPlayerUpdate,
		To:      lobby.connectionIDs(),
		Payload: PlayerUpdatePayload{Players: lobby.PlayerList()},
	}}

	if lobby.InGame && !lobby.Ended && lobby.allFinished() {
		notifications = append(notifications, c.endGame(lobby)...)
	}
	return notifications
}

// LobbyCount reports the number of live lobbies.
func (c *Coordinator) LobbyCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// endGame is called with the coordinator lock held. The match record is
// written from a goroutine so no database round trip happens under the lock.
func (c *Coordinator) endGame(lobby *Lobby) []Notification {
	lobby.Ended = true
	players := lobby.PlayerList()
	c.logger.Info("game ended", "lobby_id", lobby.ID, "players", len(players))

	if c.recorder != nil {
		lobbyID := lobby.ID
		go func() {
			if err := c.recorder.RecordMatch(lobbyID, time.Now(), players); err != nil {
				c.logger.Error("failed to record match", "lobby_id", lobbyID, "error", err)
			}
		}()
	}

	return []Notification{{
		Type:    NotificationGameEnded,
		To:      lobby.connectionIDs(),
		Payload: GameEndedPayload{Players: players},
	}}
}
