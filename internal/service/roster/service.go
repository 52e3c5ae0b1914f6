// Package roster serves the group member snapshot used for identity
// resolution. Snapshots are cached in Redis and invalidated whenever a
// membership mutation changes who belongs to the group.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/repository"
)

type Service interface {
	Snapshot(ctx context.Context, groupID uuid.UUID) ([]domain.User, error)
	Invalidate(ctx context.Context, groupID uuid.UUID) error
}

type service struct {
	userRepo repository.UserRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewService(userRepo repository.UserRepository, redisClient *redis.Client, ttl time.Duration) Service {
	return &service{
		userRepo: userRepo,
		redis:    redisClient,
		ttl:      ttl,
	}
}

func cacheKey(groupID uuid.UUID) string {
	return fmt.Sprintf("roster:%s", groupID)
}

func (s *service) Snapshot(ctx context.Context, groupID uuid.UUID) ([]domain.User, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey(groupID)).Bytes()
		if err == nil {
			var users []domain.User
			if err := json.Unmarshal(cached, &users); err == nil {
				return users, nil
			}
		}
	}

	users, err := s.userRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group roster: %w", err)
	}

	if s.redis != nil {
		if payload, err := json.Marshal(users); err == nil {
			_ = s.redis.Set(ctx, cacheKey(groupID), payload, s.ttl).Err()
		}
	}

	return users, nil
}

func (s *service) Invalidate(ctx context.Context, groupID uuid.UUID) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, cacheKey(groupID)).Err()
}
