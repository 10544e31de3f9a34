package redis

import (
	"records-srv/config"
	pkgRedis "records-srv/pkg/redis"
)

// Connect builds the shared Redis client from service configuration.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	return pkgRedis.New(pkgRedis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
