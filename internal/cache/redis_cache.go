package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentscout/hiring-assistant/internal/models"
)

type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func sessionKey(sessionID string) string { return "session:" + sessionID }

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, bool, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		// corrupt blob: treat as miss by deleting
		_ = s.rdb.Del(ctx, sessionKey(sessionID)).Err()
		return nil, false, nil
	}
	return &sess, true, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(sess.SessionID), b, ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}
