package messaging

import (
	"context"
	"time"
)

// Action is what happened to a record
type Action string

// Record actions
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// RecordEvent announces a committed change to one record
type RecordEvent struct {
	Kind       string    `json:"kind"`
	Action     Action    `json:"action"`
	RecordID   uint64    `json:"recordId"`
	OwnerID    string    `json:"ownerId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Key returns the partitioning key of the event
func (e RecordEvent) Key() string {
	if e.OwnerID != "" {
		return e.OwnerID
	}
	return e.Kind
}

// EventPublisher delivers record events to interested consumers
type EventPublisher interface {
	// Publish sends the event
	Publish(ctx context.Context, event RecordEvent) error

	// Close flushes and releases the publisher
	Close() error
}
