package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore: отдельный sorted set на каждого пользователя, score — время в миллисекундах.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore подключается по redis:// или rediss:// и делает Ping.
func NewRedisStore(ctx context.Context, url, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStoreWithClient(client, prefix), nil
}

func NewRedisStoreWithClient(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(userID string) string {
	return s.prefix + ":" + userID
}

func (s *RedisStore) Insert(ctx context.Context, msg *Message) error {
	stamp(msg)
	stored := *msg
	stored.ID = uuid.NewString()

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	entry := redis.Z{Score: float64(msg.Timestamp.UnixMilli()), Member: string(data)}
	if err := s.client.ZAdd(ctx, s.key(msg.UserID), entry).Err(); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	msg.ID = stored.ID
	return nil
}

// History читает записи по возрастанию score, т.е. времени сообщения.
func (s *RedisStore) History(ctx context.Context, userID string) ([]Message, error) {
	vals, err := s.client.ZRange(ctx, s.key(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}

	out := make([]Message, 0, len(vals))
	for _, v := range vals {
		var m Message
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			log.Printf("redis: skipping corrupt message in %s: %v", s.key(userID), err)
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *RedisStore) Close(context.Context) error {
	return s.client.Close()
}
