package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// InitRedis initializes Redis client with config. It returns nil when the
// server cannot be reached.
func InitRedis(ctx context.Context) *redis.Client {
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	addr := viper.GetString("redis.host") + ":" + viper.GetString("redis.port")
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).WithField("addr", addr).Warn("Redis connection failed")
		rdb.Close()
		return nil
	}

	log.WithField("addr", addr).Info("Redis connection established")
	return rdb
}
