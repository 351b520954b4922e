package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/safedumaguide/api/internal/domain"
	"github.com/safedumaguide/api/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	keyContacts   = "safety:contacts"
	keyTips       = "safety:tips"
	keyCategories = "directory:categories"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func (r *cacheRepository) GetContacts(ctx context.Context) ([]*domain.EmergencyContact, error) {
	data, err := r.Get(ctx, keyContacts)
	if err != nil || data == nil {
		return nil, err
	}

	var contacts []*domain.EmergencyContact
	if err := json.Unmarshal(data, &contacts); err != nil {
		r.logger.Error("Failed to unmarshal cached contacts", zap.Error(err))
		return nil, fmt.Errorf("unmarshal contacts: %w", err)
	}

	return contacts, nil
}

func (r *cacheRepository) SetContacts(ctx context.Context, contacts []*domain.EmergencyContact, ttl time.Duration) error {
	data, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("marshal contacts: %w", err)
	}

	return r.Set(ctx, keyContacts, data, ttl)
}

func (r *cacheRepository) GetTips(ctx context.Context) ([]*domain.SafetyTip, error) {
	data, err := r.Get(ctx, keyTips)
	if err != nil || data == nil {
		return nil, err
	}

	var tips []*domain.SafetyTip
	if err := json.Unmarshal(data, &tips); err != nil {
		r.logger.Error("Failed to unmarshal cached tips", zap.Error(err))
		return nil, fmt.Errorf("unmarshal tips: %w", err)
	}

	return tips, nil
}

func (r *cacheRepository) SetTips(ctx context.Context, tips []*domain.SafetyTip, ttl time.Duration) error {
	data, err := json.Marshal(tips)
	if err != nil {
		return fmt.Errorf("marshal tips: %w", err)
	}

	return r.Set(ctx, keyTips, data, ttl)
}

func (r *cacheRepository) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	data, err := r.Get(ctx, keyCategories)
	if err != nil || data == nil {
		return nil, err
	}

	var categories []*domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		r.logger.Error("Failed to unmarshal cached categories", zap.Error(err))
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}

	return categories, nil
}

func (r *cacheRepository) SetCategories(ctx context.Context, categories []*domain.Category, ttl time.Duration) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	return r.Set(ctx, keyCategories, data, ttl)
}

func (r *cacheRepository) InvalidateCategories(ctx context.Context) error {
	return r.Delete(ctx, keyCategories)
}
