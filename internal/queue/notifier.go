// Package queue publishes reviewer notifications to a Redis stream.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mishasvintus/product_review_service/internal/service"
)

const publishTimeout = 3 * time.Second

// RedisNotifier appends every notification to a Redis stream, one entry per reviewer.
type RedisNotifier struct {
	client *redis.Client
	stream string
	log    *slog.Logger
}

// NewRedisNotifier creates a notifier writing to stream.
func NewRedisNotifier(client *redis.Client, stream string, log *slog.Logger) *RedisNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &RedisNotifier{client: client, stream: stream, log: log}
}

// Connect parses url and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NotifyReviewer implements service.Notifier.
func (n *RedisNotifier) NotifyReviewer(msg service.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	id, err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		Values: Fields(msg),
	}).Result()
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	n.log.DebugContext(ctx, "notification published",
		slog.String("stream", n.stream),
		slog.String("entry_id", id),
		slog.String("document_id", msg.DocumentID),
		slog.String("reviewer_id", msg.ReviewerID),
	)
	return nil
}

// Close closes the underlying client.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}

// Fields is the stream entry written for msg.
func Fields(msg service.Notification) map[string]any {
	return map[string]any{
		"document_id": msg.DocumentID,
		"reviewer_id": msg.ReviewerID,
		"level":       int(msg.Level),
	}
}

var _ service.Notifier = (*RedisNotifier)(nil)
