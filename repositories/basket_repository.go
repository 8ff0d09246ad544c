package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sharpcut.app/configs"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/configs/configsredis"
	"sharpcut.app/models"
)

// IBasketRepository stores customer baskets as JSON documents with a TTL.
type IBasketRepository interface {
	Get(ctx context.Context, id string) (*models.CustomerBasket, error)
	Save(ctx context.Context, basket *models.CustomerBasket) error
	Delete(ctx context.Context, id string) error
}

// BasketRepository implements IBasketRepository on Redis.
type BasketRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBasketRepository() IBasketRepository {
	return &BasketRepository{
		client: configsredis.GetRedis(),
		ttl:    configs.BasketTTL(),
	}
}

func NewBasketRepositoryWithClient(client *redis.Client, ttl time.Duration) IBasketRepository {
	return &BasketRepository{client: client, ttl: ttl}
}

func basketKey(id string) string { return "basket:" + id }

func (r *BasketRepository) Get(ctx context.Context, id string) (*models.CustomerBasket, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	raw, err := r.client.Get(ctx, basketKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BasketRepository.Get: redis error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	var basket models.CustomerBasket
	if err := json.Unmarshal(raw, &basket); err != nil {
		configslog.Log.Error("BasketRepository.Get: corrupt basket document", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &basket, nil
}

// Save upserts the whole document and refreshes its TTL.
func (r *BasketRepository) Save(ctx context.Context, basket *models.CustomerBasket) error {
	if basket == nil || basket.ID == "" {
		return errors.New("basket to save is not valid")
	}
	raw, err := json.Marshal(basket)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, basketKey(basket.ID), raw, r.ttl).Err(); err != nil {
		configslog.Log.Error("BasketRepository.Save: redis error", zap.String("id", basket.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *BasketRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	deleted, err := r.client.Del(ctx, basketKey(id)).Result()
	if err != nil {
		configslog.Log.Error("BasketRepository.Delete: redis error", zap.String("id", id), zap.Error(err))
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IBasketRepository = (*BasketRepository)(nil)
