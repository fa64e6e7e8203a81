// Package frequency implements SenderFrequencyPort with a Redis sorted
// window counter, grounded on the teacher's go-redis client usage.
package frequency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"worker_server/core/port/out"
)

// RedisTracker records a sender hit and returns how many times that
// sender has been seen within the trailing window, using a Redis sorted
// set keyed by sender so the window slides without a background sweep.
type RedisTracker struct {
	client *redis.Client
}

func New(client *redis.Client) *RedisTracker {
	return &RedisTracker{client: client}
}

// RecordAndCount implements out.SenderFrequencyPort.
func (t *RedisTracker) RecordAndCount(ctx context.Context, sender string, window time.Duration) (int, error) {
	key := fmt.Sprintf("triage:sender_freq:%s", sender)
	now := time.Now()
	member := fmt.Sprintf("%d", now.UnixNano())

	pipe := t.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("%d", now.Add(-window).UnixNano()))
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("sender frequency pipeline: %w", err)
	}
	return int(count.Val()), nil
}

var _ out.SenderFrequencyPort = (*RedisTracker)(nil)
