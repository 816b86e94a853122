package notices

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
)

func newTestBoard(t *testing.T, ttl time.Duration) (*RedisBoard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisBoard(client, ttl), mr
}

func TestRedisBoardListsNewestFirst(t *testing.T) {
	board, mr := newTestBoard(t, time.Minute)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	older := fallback.NewNotice(gateway.Customers, base)
	newer := fallback.NewNotice(gateway.Invoices, base.Add(time.Second))
	require.NoError(t, board.Post(ctx, older))
	require.NoError(t, board.Post(ctx, newer))

	list, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, gateway.Invoices, list[0].Entity)
	assert.Equal(t, fallback.NoticeMessage, list[0].Message)
	assert.Equal(t, older.ID, list[1].ID)

	assert.True(t, mr.Exists(noticeKey(older.ID)))
	assert.Equal(t, time.Minute, mr.TTL(noticeKey(older.ID)))
}

func TestRedisBoardPrunesExpiredNotices(t *testing.T) {
	board, mr := newTestBoard(t, time.Minute)
	ctx := context.Background()

	n := fallback.NewNotice(gateway.Appointments, time.Now())
	require.NoError(t, board.Post(ctx, n))

	mr.FastForward(2 * time.Minute)

	list, err := board.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.False(t, mr.Exists(noticeKey(n.ID)))
	if mr.Exists(indexKey) {
		members, err := mr.ZMembers(indexKey)
		require.NoError(t, err)
		assert.Empty(t, members, "expired ids are pruned from the index")
	}
}

func TestRedisBoardDismiss(t *testing.T) {
	board, mr := newTestBoard(t, time.Minute)
	ctx := context.Background()

	n := fallback.NewNotice(gateway.Inventory, time.Now())
	require.NoError(t, board.Post(ctx, n))

	require.NoError(t, board.Dismiss(ctx, n.ID))
	assert.False(t, mr.Exists(noticeKey(n.ID)))

	list, err := board.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.True(t, apperr.IsNotFound(board.Dismiss(ctx, n.ID)))
}

func TestRedisBoardUnavailableIsTransportError(t *testing.T) {
	board, mr := newTestBoard(t, time.Minute)
	ctx := context.Background()
	mr.Close()

	err := board.Post(ctx, fallback.NewNotice(gateway.Customers, time.Now()))
	assert.True(t, apperr.IsTransport(err))

	_, err = board.List(ctx)
	assert.True(t, apperr.IsTransport(err))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = Connect(context.Background(), "not-a-url")
	assert.Error(t, err)
}

// Runs against a real server too when REDIS_TEST_URL is set,
// e.g. REDIS_TEST_URL=redis://localhost:6379/15
func TestRedisBoardRealServer(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	ctx := context.Background()

	client, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.FlushDB(ctx).Err())

	board := NewRedisBoard(client, time.Minute)
	n := fallback.NewNotice(gateway.Customers, time.Now())
	require.NoError(t, board.Post(ctx, n))

	require.NoError(t, client.Del(ctx, noticeKey(n.ID)).Err())
	list, err := board.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.True(t, apperr.IsNotFound(board.Dismiss(ctx, n.ID)))
}
