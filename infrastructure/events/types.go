// Package events defines the content lifecycle envelope written to Redis
// Streams when an entity changes, so site front ends can revalidate cached
// pages.
package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream carrying ContentEvent entries.
const StreamName = "content-events"

// MaxStreamLen caps the stream (approximate trimming).
const MaxStreamLen = 10000

type EventType string

const (
	ContentCreated EventType = "CONTENT_CREATED"
	ContentUpdated EventType = "CONTENT_UPDATED"
	ContentDeleted EventType = "CONTENT_DELETED"
)

// ContentEvent is the envelope for every lifecycle change. Sources is empty
// when the entity is visible on every site, or when it is not known
// (deletions).
type ContentEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	Resource  string    `json:"resource"`
	EntityID  string    `json:"entity_id"`
	Sources   []string  `json:"sources,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New stamps a fresh id and the current UTC time.
func New(eventType EventType, resource, entityID string, sources []string) ContentEvent {
	return ContentEvent{
		EventID:   uuid.New(),
		EventType: eventType,
		Resource:  resource,
		EntityID:  entityID,
		Sources:   sources,
		Timestamp: time.Now().UTC(),
	}
}
