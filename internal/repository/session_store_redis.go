package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "clinic-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) domainRepo.SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(role, subjectID, tokenID string) string {
	return fmt.Sprintf("session:%s:%s:%s", role, subjectID, tokenID)
}

func (s *redisSessionStore) Put(ctx context.Context, role, subjectID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(role, subjectID, tokenID), "valid", ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, role, subjectID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(role, subjectID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, role, subjectID, tokenID string) error {
	return s.client.Del(ctx, sessionKey(role, subjectID, tokenID)).Err()
}
