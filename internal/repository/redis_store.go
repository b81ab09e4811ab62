package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"inventory-manager/internal/models"
	"inventory-manager/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisItemsKey = "inventory:items" // field: id, value: item JSON
	redisSKUsKey  = "inventory:skus"  // field: normalized sku, value: id
)

// RedisStore keeps items in a hash keyed by id plus a second hash mapping
// normalized SKU to id, which serves as the storage-layer uniqueness
// backstop.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisStore(addr, password string, db int, log *zap.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: connect to redis: %v", service.ErrStorageUnavailable, err)
	}

	log.Info("Redis connected", zap.String("addr", addr))
	return &RedisStore{client: rdb, log: log}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) LoadAll(ctx context.Context) ([]models.Item, error) {
	raw, err := s.client.HGetAll(ctx, redisItemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}

	items := make([]models.Item, 0, len(raw))
	for _, data := range raw {
		var it models.Item
		if err := json.Unmarshal([]byte(data), &it); err != nil {
			return nil, fmt.Errorf("%w: decode item: %v", service.ErrStorageUnavailable, err)
		}
		items = append(items, it)
	}

	// hash iteration order is arbitrary; restore insertion order, with the
	// id as tiebreaker so records sharing a timestamp (bulk seeds) come
	// back in the same order on every load
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID.String() < items[j].ID.String()
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *RedisStore) Upsert(ctx context.Context, item models.Item) error {
	sku := service.NormalizeSKU(item.SKU)

	owner, err := s.client.HGet(ctx, redisSKUsKey, sku).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	if err == nil && owner != item.ID.String() {
		return fmt.Errorf("%w: %s", service.ErrStorageConflict, item.SKU)
	}

	prevSKU, err := s.skuOf(ctx, item.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%w: encode item: %v", service.ErrStorageUnavailable, err)
	}

	pipe := s.client.TxPipeline()
	if prevSKU != "" && prevSKU != sku {
		pipe.HDel(ctx, redisSKUsKey, prevSKU)
	}
	pipe.HSet(ctx, redisItemsKey, item.ID.String(), data)
	pipe.HSet(ctx, redisSKUsKey, sku, item.ID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) RemoveByID(ctx context.Context, id uuid.UUID) error {
	sku, err := s.skuOf(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, redisItemsKey, id.String())
	if sku != "" {
		pipe.HDel(ctx, redisSKUsKey, sku)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) ReplaceAll(ctx context.Context, items []models.Item) error {
	itemFields := make(map[string]any, len(items))
	skuFields := make(map[string]any, len(items))
	for _, it := range items {
		sku := service.NormalizeSKU(it.SKU)
		if _, ok := skuFields[sku]; ok {
			return fmt.Errorf("%w: %s", service.ErrStorageConflict, it.SKU)
		}
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("%w: encode item: %v", service.ErrStorageUnavailable, err)
		}
		itemFields[it.ID.String()] = data
		skuFields[sku] = it.ID.String()
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisItemsKey, redisSKUsKey)
	if len(itemFields) > 0 {
		pipe.HSet(ctx, redisItemsKey, itemFields)
		pipe.HSet(ctx, redisSKUsKey, skuFields)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	return nil
}

// skuOf reads the stored record for id and returns its normalized SKU, or
// "" when the record does not exist.
func (s *RedisStore) skuOf(ctx context.Context, id uuid.UUID) (string, error) {
	data, err := s.client.HGet(ctx, redisItemsKey, id.String()).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}

	var it models.Item
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		return "", fmt.Errorf("%w: decode item: %v", service.ErrStorageUnavailable, err)
	}
	return service.NormalizeSKU(it.SKU), nil
}
