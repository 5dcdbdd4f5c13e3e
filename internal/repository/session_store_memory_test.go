package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "doctor", "subject-1", "token-1", time.Minute))

	exists, err := store.Exists(ctx, "doctor", "subject-1", "token-1")
	require.NoError(t, err)
	assert.True(t, exists)

	// Same token ID under a different role is a different session
	exists, err = store.Exists(ctx, "admin", "subject-1", "token-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Delete(ctx, "doctor", "subject-1", "token-1"))

	exists, err = store.Exists(ctx, "doctor", "subject-1", "token-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "doctor", "subject-1", "token-1", -time.Second))

	exists, err := store.Exists(ctx, "doctor", "subject-1", "token-1")
	require.NoError(t, err)
	assert.False(t, exists)
}
