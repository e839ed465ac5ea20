package client

import (
	"Agora/config"
	"Agora/pkg/log"
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when redis is not configured; presence lookups
// then report everyone offline.
func NewRedisClient(conf *config.Config) *redis.Client {
	if conf.Redis == nil {
		log.L.Warn("redis not configured, presence disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}
