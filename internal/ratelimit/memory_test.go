package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_DeniesAfterBurst(t *testing.T) {
	m := NewMemory(0.001, 2)
	defer m.Close()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := m.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := m.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = m.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "keys are independent")
}

func TestMemory_EvictsStaleKeys(t *testing.T) {
	m := NewMemory(1, 1)
	defer m.Close()

	_, _ = m.Allow(context.Background(), "a")
	m.evict(time.Now().Add(staleAfter + time.Second))

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.clients)
}
