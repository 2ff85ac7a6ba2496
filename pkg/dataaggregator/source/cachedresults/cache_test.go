package cachedresults

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/linkalls/norikae/pkg/redis_client"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCache(t *testing.T) {
	ctx := context.Background()

	var c Cache
	c.Setup(time.Minute, 10)
	require.Nil(t, c.Cache)

	_, err := c.Get(ctx, "cachedresults/diainfo")
	assert.Error(t, err)

	require.NoError(t, c.Set(ctx, "cachedresults/diainfo", `[{"RailName":"山手線"}]`, time.Minute))

	value, err := c.Get(ctx, "cachedresults/diainfo")
	require.NoError(t, err)
	assert.Equal(t, `[{"RailName":"山手線"}]`, value)

	require.NoError(t, c.Delete(ctx, "cachedresults/diainfo"))
	_, err = c.Get(ctx, "cachedresults/diainfo")
	assert.Error(t, err)
}

func TestLocalCacheExpiry(t *testing.T) {
	ctx := context.Background()

	var c Cache
	c.Setup(time.Minute, 10)

	require.NoError(t, c.Set(ctx, "short", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.Error(t, err)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)

	redis_client.Client = redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer redis_client.Close()

	var c Cache
	c.Setup(time.Minute, 10)
	require.NotNil(t, c.Cache)

	_, err := c.Get(ctx, "cachedresults/suggest/渋谷")
	assert.Error(t, err)

	require.NoError(t, c.Set(ctx, "cachedresults/suggest/渋谷", `{"Stations":[]}`, 10*time.Minute))

	value, err := c.Get(ctx, "cachedresults/suggest/渋谷")
	require.NoError(t, err)
	assert.Equal(t, `{"Stations":[]}`, value)

	assert.True(t, server.Exists("cachedresults/suggest/渋谷"))
	assert.Equal(t, 10*time.Minute, server.TTL("cachedresults/suggest/渋谷"))
}
