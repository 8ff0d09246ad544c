package configsredis

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
)

var client *redis.Client

// InitRedis connects the basket store. Fatal on failure: the shop flow is
// part of the product, not an optional add-on.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		configslog.Log.Fatal("redis connection failed", zap.String("addr", addr), zap.Error(err))
	}
	configslog.SLog.Info("redis connection established")
}

// GetRedis returns the shared client. InitRedis must have been called.
func GetRedis() *redis.Client {
	if client == nil {
		configslog.Log.Fatal("GetRedis called before InitRedis")
	}
	return client
}

// CloseRedis closes the client connection.
func CloseRedis() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		configslog.Log.Error("redis close failed", zap.Error(err))
	}
}
