package modules

import (
	"github.com/redis/go-redis/v9"

	"github.com/rakapradana/goaltrack/internal/container"
)

// limiterRedis returns the redis client backing rate limits, or nil when rate
// limiting is disabled. A nil client turns the limiter into a no-op.
func limiterRedis() *redis.Client {
	if cfg := container.GetConfig(); cfg != nil && !cfg.RateLimitEnabled {
		return nil
	}
	return container.GetRedis()
}
