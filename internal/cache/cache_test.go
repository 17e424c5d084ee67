package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-service/internal/cache"
	"maintenance-service/internal/model"
)

func TestNopCache(t *testing.T) {
	var c cache.CalendarCache = cache.NopCache{}
	ctx := context.Background()

	version, err := c.CalendarVersion(ctx)
	require.NoError(t, err)
	stored, err := c.SetCalendar(ctx, version, []model.CalendarEvent{{ID: 1}})
	require.NoError(t, err)
	assert.False(t, stored)

	events, ok, err := c.GetCalendar(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, events)
	assert.NoError(t, c.InvalidateCalendar(ctx))
}

// Требует запущенный Redis: REDIS_ADDR=localhost:6379 go test ./internal/cache/...
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}
	ctx := context.Background()

	c, err := cache.NewRedisCache(ctx, addr, "", 0, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.InvalidateCalendar(ctx))

	_, ok, err := c.GetCalendar(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	want := []model.CalendarEvent{{
		ID:          4,
		Title:       "Oil change",
		Start:       start,
		End:         start.Add(time.Hour),
		RequestID:   4,
		Status:      model.StatusNew,
		RequestType: model.TypePreventive,
	}}
	version, err := c.CalendarVersion(ctx)
	require.NoError(t, err)
	stored, err := c.SetCalendar(ctx, version, want)
	require.NoError(t, err)
	require.True(t, stored)

	got, ok, err := c.GetCalendar(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, c.InvalidateCalendar(ctx))
	_, ok, err = c.GetCalendar(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Календарь, собранный до инвалидации, не должен вернуться в кэш.
	stored, err = c.SetCalendar(ctx, version, want)
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, err = c.GetCalendar(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	fresh, err := c.CalendarVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, version+1, fresh)
	stored, err = c.SetCalendar(ctx, fresh, want)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cache.NewRedisCache(ctx, "127.0.0.1:1", "", 0, time.Minute)

	assert.Error(t, err)
}
