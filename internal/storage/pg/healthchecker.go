package pg

import (
	"context"
	"log/slog"
	"time"
)

const healthCheckTimeout = 2 * time.Second

type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("PostgreSQL health check failed", "error", err)
		return false
	}

	return true
}
