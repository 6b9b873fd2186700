package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/shopmesh/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemoryStore_GetOrCreate(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get("ctx-1")
	require.Error(t, err)

	sess, err := store.GetOrCreate("ctx-1")
	require.NoError(t, err)
	assert.Equal(t, "ctx-1", sess.ID)

	require.NoError(t, store.AppendEvent("ctx-1", core.NewUserMessageEvent("run-1", "hello")))

	again, err := store.GetOrCreate("ctx-1")
	require.NoError(t, err)
	assert.Len(t, again.GetEvents(), 1)
}

func TestInMemoryStore_ClonesOnRead(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Create("ctx-2")
	require.NoError(t, err)

	sess, err := store.Get("ctx-2")
	require.NoError(t, err)
	sess.SetState("mutated", true)

	fresh, err := store.Get("ctx-2")
	require.NoError(t, err)
	_, ok := fresh.GetState("mutated")
	assert.False(t, ok, "mutating a returned session must not affect the store")
}

func TestInMemoryStore_ApplyDelta(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.ApplyDelta("ctx-3", map[string]any{"customer_id": "cust-001"}))

	sess, err := store.Get("ctx-3")
	require.NoError(t, err)
	v, ok := sess.GetState("customer_id")
	require.True(t, ok)
	assert.Equal(t, "cust-001", v)
}
