package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizduel/quizduel-backend/game"
	"github.com/quizduel/quizduel-backend/handlers"
	"github.com/quizduel/quizduel-backend/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	coordinator := game.NewCoordinator(game.Config{}, logger, nil)
	srv := handlers.NewServer(coordinator, nil, logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg models.ActionMessage) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func readFrame(t *testing.T, conn *websocket.Conn) (string, map[string]any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg models.ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))

	data, ok := msg.Data.(map[string]any)
	require.True(t, ok, "unexpected frame data: %v", msg.Data)
	return msg.Type, data
}

func framePlayers(t *testing.T, data map[string]any) []map[string]any {
	t.Helper()
	raw, ok := data["players"].([]any)
	require.True(t, ok, "frame has no player list: %v", data)

	players := make([]map[string]any, len(raw))
	for i, p := range raw {
		players[i], ok = p.(map[string]any)
		require.True(t, ok)
	}
	return players
}

func TestWebSocketFullRound(t *testing.T) {
	ts := newTestServer(t)

	alice := dial(t, ts)
	send(t, alice, models.ActionMessage{Action: "findMatch", Username: "alice"})

	frameType, data := readFrame(t, alice)
	require.Equal(t, "joinedLobby", frameType)
	lobbyID, ok := data["lobbyId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, lobbyID)
	require.Len(t, framePlayers(t, data), 1)

	bob := dial(t, ts)
	send(t, bob, models.ActionMessage{Action: "findMatch", Username: "bob"})

	// Bob joins the waiting lobby and the game starts for both.
	frameType, data = readFrame(t, bob)
	require.Equal(t, "joinedLobby", frameType)
	assert.Equal(t, lobbyID, data["lobbyId"])

	frameType, data = readFrame(t, bob)
	require.Equal(t, "playerUpdate", frameType)
	require.Len(t, framePlayers(t, data), 2)

	frameType, data = readFrame(t, bob)
	require.Equal(t, "gameStarted", frameType)
	questions, ok := data["questions"].([]any)
	require.True(t, ok)
	assert.Len(t, questions, 10)

	frameType, _ = readFrame(t, alice)
	require.Equal(t, "playerUpdate", frameType)
	frameType, _ = readFrame(t, alice)
	require.Equal(t, "gameStarted", frameType)

	// Alice answers correctly; both see the score move.
	send(t, alice, models.ActionMessage{Action: "submitAnswer", LobbyID: lobbyID, IsCorrect: true})

	for _, conn := range []*websocket.Conn{alice, bob} {
		frameType, data = readFrame(t, conn)
		require.Equal(t, "playerUpdate", frameType)
		players := framePlayers(t, data)
		require.Len(t, players, 2)
		assert.Equal(t, "alice", players[0]["username"])
		assert.Equal(t, float64(10), players[0]["score"])
		assert.Equal(t, float64(0), players[1]["score"])
	}

	// Bob finishing alone does not end the round; the next frame either
	// client sees is the scoreboard triggered by Alice finishing too.
	send(t, bob, models.ActionMessage{Action: "quizFinished", LobbyID: lobbyID})
	send(t, alice, models.ActionMessage{Action: "quizFinished", LobbyID: lobbyID})

	for _, conn := range []*websocket.Conn{alice, bob} {
		frameType, data = readFrame(t, conn)
		require.Equal(t, "gameEnded", frameType)
		players := framePlayers(t, data)
		require.Len(t, players, 2)
		assert.Equal(t, float64(10), players[0]["score"])
		assert.Equal(t, float64(0), players[1]["score"])
		assert.Equal(t, true, players[0]["finished"])
		assert.Equal(t, true, players[1]["finished"])
	}
}

func TestWebSocketDisconnectNotifiesRemainingPlayer(t *testing.T) {
	ts := newTestServer(t)

	alice := dial(t, ts)
	send(t, alice, models.ActionMessage{Action: "findMatch", Username: "alice"})
	frameType, _ := readFrame(t, alice)
	require.Equal(t, "joinedLobby", frameType)

	bob := dial(t, ts)
	send(t, bob, models.ActionMessage{Action: "findMatch", Username: "bob"})
	for _, want := range []string{"joinedLobby", "playerUpdate", "gameStarted"} {
		frameType, _ = readFrame(t, bob)
		require.Equal(t, want, frameType)
	}
	for _, want := range []string{"playerUpdate", "gameStarted"} {
		frameType, _ = readFrame(t, alice)
		require.Equal(t, want, frameType)
	}

	require.NoError(t, alice.Close())

	frameType, data := readFrame(t, bob)
	require.Equal(t, "playerUpdate", frameType)
	players := framePlayers(t, data)
	require.Len(t, players, 1)
	assert.Equal(t, "bob", players[0]["username"])
}

func TestWebSocketUnknownActionIsIgnored(t *testing.T) {
	ts := newTestServer(t)

	conn := dial(t, ts)
	send(t, conn, models.ActionMessage{Action: "teleport"})

	// The connection stays usable after an unknown action.
	send(t, conn, models.ActionMessage{Action: "findMatch", Username: "alice"})
	frameType, _ := readFrame(t, conn)
	assert.Equal(t, "joinedLobby", frameType)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response models.ApiResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "Server is running.", response.Data)
}

func TestListMatchesUnavailableWithoutDatabase(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/api/matches")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)

	var response models.ApiResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.False(t, response.Success)
}
