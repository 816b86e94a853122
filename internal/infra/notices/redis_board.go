// Package notices keeps fallback notices in redis so every API instance
// shows the same board.
package notices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
)

const (
	keyPrefix = "taller:notice:"
	indexKey  = "taller:notices"
)

type RedisBoard struct {
	client *redis.Client
	ttl    time.Duration
}

var _ fallback.NoticeBoard = (*RedisBoard)(nil)

func NewRedisBoard(client *redis.Client, ttl time.Duration) *RedisBoard {
	return &RedisBoard{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func noticeKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (b *RedisBoard) Post(ctx context.Context, n fallback.Notice) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	_, err = b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, noticeKey(n.ID), payload, b.ttl)
		pipe.ZAdd(ctx, indexKey, &redis.Z{
			Score:  float64(n.CreatedAt.UnixNano()),
			Member: n.ID.String(),
		})
		return nil
	})
	if err != nil {
		return apperr.Transport("post notice", err)
	}
	return nil
}

// List returns live notices newest first and prunes index entries whose
// notice already expired.
func (b *RedisBoard) List(ctx context.Context) ([]fallback.Notice, error) {
	ids, err := b.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, apperr.Transport("list notices", err)
	}
	if len(ids) == 0 {
		return []fallback.Notice{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyPrefix + id
	}
	values, err := b.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperr.Transport("list notices", err)
	}

	out := make([]fallback.Notice, 0, len(values))
	var expired []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}
		var n fallback.Notice
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			expired = append(expired, ids[i])
			continue
		}
		out = append(out, n)
	}

	if len(expired) > 0 {
		if err := b.client.ZRem(ctx, indexKey, expired...).Err(); err != nil {
			return nil, apperr.Transport("prune notices", err)
		}
	}
	return out, nil
}

func (b *RedisBoard) Dismiss(ctx context.Context, id uuid.UUID) error {
	var del *redis.IntCmd
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, noticeKey(id))
		pipe.ZRem(ctx, indexKey, id.String())
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return apperr.Transport("dismiss notice", err)
	}
	if del.Val() == 0 {
		return apperr.NotFound("notice", id)
	}
	return nil
}
