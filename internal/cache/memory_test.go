package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetInvalidate(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	expected := []testStruct{{Name: "Alice", Age: 30}}
	require.NoError(t, m.Set(ctx, "list", expected, time.Minute))

	var actual []testStruct
	found, err := m.Get(ctx, "list", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)

	actual[0].Name = "changed"
	var again []testStruct
	_, err = m.Get(ctx, "list", &again)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0].Name)

	require.NoError(t, m.Invalidate(ctx, "list"))
	found, err = m.Get(ctx, "list", &actual)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_Expiration(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", 1, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var out int
	found, err := m.Get(ctx, "short", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
