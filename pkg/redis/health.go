package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const healthProbeKey = "taskboard:health:probe"

// HealthCheck pings Redis and runs a set/get/delete round trip on a probe key.
// details is filled even when err is not nil.
func (c *Client) HealthCheck(ctx context.Context) (map[string]string, error) {
	details := map[string]string{
		"addr":     c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
	}

	start := time.Now()
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return details, fmt.Errorf("ping failed: %w", err)
	}
	details["ping_latency"] = time.Since(start).String()

	if err := c.testBasicOperations(ctx); err != nil {
		return details, err
	}

	stats := c.rdb.PoolStats()
	details["total_connections"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_connections"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["pool_timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)
	return details, nil
}

func (c *Client) testBasicOperations(ctx context.Context) error {
	value := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := c.rdb.Set(ctx, healthProbeKey, value, 10*time.Second).Err(); err != nil {
		return fmt.Errorf("set probe failed: %w", err)
	}
	got, err := c.rdb.Get(ctx, healthProbeKey).Result()
	if err != nil {
		return fmt.Errorf("get probe failed: %w", err)
	}
	if got != value {
		return fmt.Errorf("probe value mismatch: got %s", got)
	}
	return c.rdb.Del(ctx, healthProbeKey).Err()
}
