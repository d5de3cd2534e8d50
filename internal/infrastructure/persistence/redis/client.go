package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// 启动时连接探活的最长等待时间
const pingTimeout = 3 * time.Second

// NewClient 创建Redis客户端
// 书城只把Redis用于会话与Token黑名单，单实例客户端足够，
// 连接池与超时参数全部来自配置
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(buildOptions(cfg.Redis))

	// 启动即探活，连不上直接失败而不是等第一次登录才暴露
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis连接失败(%s): %w", cfg.Redis.Addr(), err)
	}

	return client, nil
}

// buildOptions 由配置组装go-redis连接参数
func buildOptions(rc config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         rc.Addr(),
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		MinIdleConns: rc.MinIdleConns,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	}
}
