package rabbitmq

import (
	"encoding/json"
	"time"
)

const (
	ExchangeName = "events"
	ExchangeKind = "topic"
)

const (
	KeyEventCreated   = "event.created"
	KeyEventUpdated   = "event.updated"
	KeyProfileUpdated = "profile.updated"
)

// Message is the envelope every published payload travels in.
type Message struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}
