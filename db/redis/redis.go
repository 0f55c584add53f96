package redis

import (
	"context"
	"fmt"
	"movie_catalog/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func ConnectRedis() {
	if configs.GetConfigs().RedisUrl == "" {
		return
	}
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[MovieCatalog Redis Client:", pong, err, "]]")
}

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", redis.Nil
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return redis.Nil
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}

func DelRedis(ctx context.Context, key string) error {
	if redisClient == nil {
		return redis.Nil
	}
	err := redisClient.Del(ctx, key).Err()
	return err
}
