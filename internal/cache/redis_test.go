package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}), time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestRedisCache_Flights(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	miss, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	flights := []domain.Flight{{ID: 7, Destination: "Lisbon", Depart: "09:30", Airline: "TAP", Date: "2026-11-02"}}
	require.NoError(t, c.SetFlights(ctx, flights))

	got, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Equal(t, flights, got)
	assert.Equal(t, time.Minute, srv.TTL(flightsKey()))

	require.NoError(t, c.InvalidateFlights(ctx))
	miss, err = c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestRedisCache_CheckoutLock(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	ok, err := c.AcquireCheckoutLock(ctx, 11, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.AcquireCheckoutLock(ctx, 11, 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	srv.FastForward(31 * time.Second)
	ok, err = c.AcquireCheckoutLock(ctx, 11, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.ReleaseCheckoutLock(ctx, 11))
	assert.False(t, srv.Exists(checkoutLockKey(11)))
}
