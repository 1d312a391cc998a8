package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ukydev/transit-fleet/internal/models"
)

// RedisNotifier publishes alerts on a Redis channel for live dashboards.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

// NewRedisNotifier connects to Redis and returns the channel.
func NewRedisNotifier(addr, password, channel string) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisNotifier{client: client, channel: channel}, nil
}

func (r *RedisNotifier) Name() string { return "redis" }

// Notify publishes a dashboard payload on the alert channel.
func (r *RedisNotifier) Notify(ctx context.Context, alert models.Alert) error {
	payload, err := json.Marshal(map[string]interface{}{
		"vehicle_id":   alert.VehicleID,
		"alert_type":   alert.Type,
		"severity":     alert.Severity,
		"message":      alert.Message,
		"triggered_at": alert.CreatedAt.Unix(),
	})
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Close releases the Redis connection.
func (r *RedisNotifier) Close() error {
	return r.client.Close()
}
