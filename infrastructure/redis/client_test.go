package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraredis "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/redis"
)

func TestNewClient_EmptyAddress(t *testing.T) {
	t.Parallel()

	client, err := infraredis.NewClient(context.Background(), infraredis.Config{})
	require.ErrorIs(t, err, infraredis.ErrEmptyAddress)
	assert.Nil(t, client)
}

func TestNewClient_Connects(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client, err := infraredis.NewClient(context.Background(), infraredis.Config{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewClient_PingFailure(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := infraredis.NewClient(context.Background(), infraredis.Config{Address: addr})
	require.Error(t, err)
}
