// Package realtime implements the per-user notification channel layer on
// Redis pub/sub. One logical channel exists per user id; publishers and
// websocket subscribers meet on it. Delivery is fire-and-forget: a seeker
// with no open connection at publish time never sees that message.
package realtime

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

type Layer struct {
	rdb *redis.Client
}

func NewLayer(rdb *redis.Client) *Layer {
	return &Layer{rdb: rdb}
}

// UserChannel names the channel carrying one user's job updates.
func UserChannel(userID string) string {
	return "user:" + userID
}

// PublishJobUpdate sends one frame to the user's channel. No delivery
// acknowledgment, no replay.
func (l *Layer) PublishJobUpdate(ctx context.Context, userID string, payload []byte) error {
	return l.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// Subscribe opens a subscription on the user's channel. The caller owns
// the returned PubSub and must close it.
func (l *Layer) Subscribe(ctx context.Context, userID string) *redis.PubSub {
	return l.rdb.Subscribe(ctx, UserChannel(userID))
}
