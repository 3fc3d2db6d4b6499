package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLobbyStoreAddAndGet(t *testing.T) {
	store := NewLobbyStore()

	lobby := &Lobby{ID: "a"}
	require.True(t, store.Add(lobby))
	assert.Equal(t, 1, store.Len())

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Same(t, lobby, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	// Duplicate ids are rejected so the caller can retry with a fresh one.
	assert.False(t, store.Add(&Lobby{ID: "a"}))
	assert.Equal(t, 1, store.Len())
}

func TestLobbyStoreRemove(t *testing.T) {
	store := NewLobbyStore()
	require.True(t, store.Add(&Lobby{ID: "a"}))
	require.True(t, store.Add(&Lobby{ID: "b"}))

	store.Remove("a")
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("a")
	assert.False(t, ok)

	// Removing twice is a no-op.
	store.Remove("a")
	assert.Equal(t, 1, store.Len())

	// The ordered index forgets removed lobbies too.
	waiting := store.FirstWaiting(2)
	require.NotNil(t, waiting)
	assert.Equal(t, "b", waiting.ID)
}

func TestLobbyStoreFirstWaitingOrder(t *testing.T) {
	store := NewLobbyStore()
	first := &Lobby{ID: "first", Players: []*Player{{ID: "c1"}}}
	second := &Lobby{ID: "second", Players: []*Player{{ID: "c2"}}}
	require.True(t, store.Add(first))
	require.True(t, store.Add(second))

	// Oldest waiting lobby wins.
	assert.Same(t, first, store.FirstWaiting(2))

	first.InGame = true
	assert.Same(t, second, store.FirstWaiting(2))

	// Full lobbies are skipped even if not yet in game.
	second.Players = append(second.Players, &Player{ID: "c3"})
	assert.Nil(t, store.FirstWaiting(2))
}

func TestLobbyStoreFindByConnection(t *testing.T) {
	store := NewLobbyStore()
	lobby := &Lobby{ID: "a", Players: []*Player{{ID: "c1"}, {ID: "c2"}}}
	require.True(t, store.Add(lobby))

	assert.Same(t, lobby, store.FindByConnection("c2"))
	assert.Nil(t, store.FindByConnection("ghost"))
}
