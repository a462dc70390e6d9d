// Package events publishes content lifecycle events to Redis Streams.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	infraevents "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/events"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

const notifyTimeout = 5 * time.Second

// Publisher writes ContentEvents to infraevents.StreamName. A nil
// *Publisher is valid and drops every event.
type Publisher struct {
	client *redis.Client
	log    logger.Logger
}

// NewPublisher returns nil when client is nil.
func NewPublisher(client *redis.Client, log logger.Logger) *Publisher {
	if client == nil {
		return nil
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Publisher{client: client, log: log}
}

// Publish appends evt to the stream, filling a missing id or timestamp.
func (p *Publisher) Publish(ctx context.Context, evt infraevents.ContentEvent) error {
	if p == nil {
		return nil
	}
	if evt.EventID == uuid.Nil {
		evt.EventID = uuid.New()
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: infraevents.StreamName,
		MaxLen: infraevents.MaxStreamLen,
		Approx: true,
		Values: map[string]any{
			"event_type": string(evt.EventType),
			"resource":   evt.Resource,
			"event":      string(payload),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("publish to stream: %w", err)
	}

	p.log.Debug("Published content event",
		logger.String("event_type", string(evt.EventType)),
		logger.String("resource", evt.Resource),
		logger.String("entity_id", evt.EntityID),
		logger.String("stream_id", id),
	)
	return nil
}

// Notify publishes with its own timeout and logs failures instead of
// returning them: a write that reached the backend must not fail because
// the notification did not.
func (p *Publisher) Notify(ctx context.Context, evt infraevents.ContentEvent) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := p.Publish(ctx, evt); err != nil {
		p.log.Warn("Content event not published",
			logger.String("event_type", string(evt.EventType)),
			logger.String("resource", evt.Resource),
			logger.String("entity_id", evt.EntityID),
			logger.Error(err),
		)
	}
}
