// Package persistence holds catering adapters for external stores that are
// not the primary MongoDB database.
package persistence

import (
	"context"
	"encoding/json"

	"campushub/internal/shared/eventbus"
	"campushub/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// journalStream is the Redis Stream that receives every domain event.
const journalStream = "campushub:events"

// journalMaxLen caps the stream length so the journal never grows unbounded.
const journalMaxLen = 10000

// RedisEventJournal appends domain events to a Redis Stream. It is an
// optional audit trail: when Redis is not configured the bus simply has no
// journal subscriber.
type RedisEventJournal struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisEventJournal creates a Redis-backed event journal
func NewRedisEventJournal(client *redis.Client, log logger.Logger) *RedisEventJournal {
	return &RedisEventJournal{
		client: client,
		logger: log.WithComponent("event_journal"),
	}
}

// Record writes one event to the journal stream. It satisfies the event bus
// Handler signature, so it can be subscribed to any event type.
func (j *RedisEventJournal) Record(ctx context.Context, event eventbus.Event) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		j.logger.Error("Failed to serialize event data", zap.Error(err))
		return err
	}

	_, err = j.client.XAdd(ctx, &redis.XAddArgs{
		Stream: journalStream,
		MaxLen: journalMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"id":        event.ID,
			"type":      event.Type,
			"source":    event.Source,
			"timestamp": event.Timestamp.UnixNano(),
			"data":      data,
		},
	}).Result()
	if err != nil {
		j.logger.Error("Failed to journal event",
			zap.String("eventType", event.Type),
			zap.String("eventId", event.ID),
			zap.Error(err))
		return err
	}

	j.logger.Debug("Event journaled",
		zap.String("eventType", event.Type),
		zap.String("eventId", event.ID))
	return nil
}

// Length returns the current journal stream length.
func (j *RedisEventJournal) Length(ctx context.Context) (int64, error) {
	return j.client.XLen(ctx, journalStream).Result()
}
