package redis_client

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/linkalls/norikae/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSkipsWithoutAddress(t *testing.T) {
	require.NoError(t, Connect(context.Background(), config.RedisConfig{}))
	assert.Nil(t, Client)
}

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	require.NoError(t, Connect(context.Background(), config.RedisConfig{Address: server.Addr()}))
	defer Close()

	require.NotNil(t, Client)
	require.NoError(t, Client.Set(context.Background(), "k", "v", 0).Err())

	value, err := server.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestConnectUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	address := server.Addr()
	server.Close()

	err := Connect(context.Background(), config.RedisConfig{Address: address})
	assert.Error(t, err)
	assert.Nil(t, Client)
}
