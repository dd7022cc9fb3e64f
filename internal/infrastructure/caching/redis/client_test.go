package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cached struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	c, err := New("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, s
}

func TestClient_SetGetDelete(t *testing.T) {
	c, s := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "scholarship:details:1", cached{Name: "Merit", Fee: 25}, time.Minute))
	assert.True(t, s.Exists("scholarship:details:1"))

	var got cached
	found, err := c.Get(ctx, "scholarship:details:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cached{Name: "Merit", Fee: 25}, got)

	require.NoError(t, c.Delete(ctx, "scholarship:details:1"))
	found, err = c.Get(ctx, "scholarship:details:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_TTLExpires(t *testing.T) {
	c, s := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", cached{Name: "x"}, time.Second))
	s.FastForward(2 * time.Second)

	var got cached
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_GetCorruptValue(t *testing.T) {
	c, s := newTestClient(t)
	require.NoError(t, s.Set("k", "{not json"))

	var got cached
	found, err := c.Get(context.Background(), "k", &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestClient_DeleteNoKeys(t *testing.T) {
	c, _ := newTestClient(t)
	assert.NoError(t, c.Delete(context.Background()))
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New("redis://127.0.0.1:1")
	assert.Error(t, err)
}

func TestNew_BadURL(t *testing.T) {
	_, err := New("not-a-url")
	assert.Error(t, err)
}
