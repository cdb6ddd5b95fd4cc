package mq

import (
	"context"
	"encoding/json"
	"log"

	"mineshop/models"

	"github.com/redis/go-redis/v9"
)

// Channel carries every shop event published to Redis.
const Channel = "shop-events"

// Event is the envelope broadcast for each domain event.
type Event struct {
	Name    string       `json:"name"`
	Content models.Index `json:"content"`
}

// Emitter publishes domain events to Redis pub/sub and, when a sink is set,
// to an in-process consumer (the live websocket hub). Both targets are
// optional; a zero Emitter just logs.
type Emitter struct {
	Conn *redis.Client
	Sink func(event string, data []byte)
}

// Emit publishes an event. Failures are logged, never returned: events are
// advisory and must not fail the triggering operation.
func (e *Emitter) Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(Event{Name: eventName, Content: content})
	if err != nil {
		log.Printf("[Emit] failed to marshal event content: %v", err)
		return
	}

	if e.Sink != nil {
		e.Sink(eventName, data)
	}

	if e.Conn == nil {
		return
	}
	if err := e.Conn.Publish(ctx, Channel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish event to Redis: %v", err)
	}
}
