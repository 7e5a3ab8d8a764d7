package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/citizen-connect/grievance-service/internal/domain"
	"github.com/citizen-connect/grievance-service/pkg/util"
)

// RedisStore persists each grievance as a JSON value under a prefixed key
// and maintains a set of ids so Scan does not need KEYS.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps a connected client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "grievance"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) recordKey(id string) string {
	return fmt.Sprintf("%s:grv:%s", s.prefix, id)
}

func (s *RedisStore) indexKey() string {
	return s.prefix + ":ids"
}

// Put writes the record and registers its id in the index set.
func (s *RedisStore) Put(ctx context.Context, grievance *domain.Grievance) error {
	payload, err := json.Marshal(grievance)
	if err != nil {
		return util.NewBackendError("put", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.recordKey(grievance.ID), payload, 0)
	pipe.SAdd(ctx, s.indexKey(), grievance.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return util.NewBackendError("put", err)
	}
	return nil
}

// Get fetches and decodes a single record.
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Grievance, error) {
	payload, err := s.client.Get(ctx, s.recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, util.NewBackendError("get", err)
	}
	var grievance domain.Grievance
	if err := json.Unmarshal(payload, &grievance); err != nil {
		return nil, util.NewBackendError("get", err)
	}
	return &grievance, nil
}

// Scan loads every record registered in the index set. Ids whose record has
// gone missing are skipped rather than failing the whole scan.
func (s *RedisStore) Scan(ctx context.Context) ([]domain.Grievance, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, util.NewBackendError("scan", err)
	}
	if len(ids) == 0 {
		return []domain.Grievance{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.recordKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, util.NewBackendError("scan", err)
	}

	result := make([]domain.Grievance, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var grievance domain.Grievance
		if err := json.Unmarshal([]byte(raw), &grievance); err != nil {
			continue
		}
		result = append(result, grievance)
	}
	return result, nil
}

// Delete removes the record and its index entry.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, s.recordKey(id)).Result()
	if err != nil {
		return util.NewBackendError("delete", err)
	}
	if _, err := s.client.SRem(ctx, s.indexKey(), id).Result(); err != nil {
		return util.NewBackendError("delete", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
