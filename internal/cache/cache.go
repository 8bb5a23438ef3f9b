package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "autoshop:reports:"

// Chaves dos relatórios que não dependem da data corrente.
const (
	KeyMonthlyAppointments = keyPrefix + "monthly_appointments"
	KeyServiceUsage        = keyPrefix + "service_usage"
	KeyInventoryUsage      = keyPrefix + "inventory_usage"
	KeyLowInventory        = keyPrefix + "low_inventory"
)

var allKeys = []string{
	KeyMonthlyAppointments,
	KeyServiceUsage,
	KeyInventoryUsage,
	KeyLowInventory,
}

type ReportCache interface {
	// Get devolve false quando a chave não existe.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) error
}

// ===============================
// Redis
// ===============================

type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

// Connect abre o cliente a partir de uma URL redis:// e testa a conexão.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (c *RedisReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *RedisReportCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, allKeys...).Err()
}

// ===============================
// Noop (cache desligado)
// ===============================

type NoopReportCache struct{}

func (NoopReportCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopReportCache) Set(context.Context, string, any) error         { return nil }
func (NoopReportCache) Invalidate(context.Context) error               { return nil }

// ===============================
// Helpers
// ===============================

// Remember lê key do cache ou executa load e guarda o resultado.
// Falhas do cache só geram log: o relatório sempre vem do banco nesse caso.
func Remember[T any](
	ctx context.Context,
	c ReportCache,
	logger *zap.Logger,
	key string,
	load func() (T, error),
) (T, error) {

	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

// Invalidator adapta o cache para repository.WriteHook.
func Invalidator(c ReportCache, logger *zap.Logger) func(ctx context.Context) {
	return func(ctx context.Context) {
		if err := c.Invalidate(ctx); err != nil {
			logger.Warn("report cache invalidation failed", zap.Error(err))
		}
	}
}
