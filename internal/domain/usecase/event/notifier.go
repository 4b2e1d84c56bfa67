package event

import (
	"context"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
)

// Notifier publishes record events after a unit of work has committed.
// Delivery failures are logged and never reach the caller.
type Notifier struct {
	publisher    messaging.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewNotifier creates a notifier. A nil publisher disables publishing.
func NewNotifier(publisher messaging.EventPublisher, timeProvider coreport.TimeProvider, logger coreport.Logger) *Notifier {
	return &Notifier{
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Notify publishes one event for the record
func (n *Notifier) Notify(ctx context.Context, kind string, action messaging.Action, id uint64, ownerID string) {
	if n == nil || n.publisher == nil {
		return
	}

	evt := messaging.RecordEvent{
		Kind:       kind,
		Action:     action,
		RecordID:   id,
		OwnerID:    ownerID,
		OccurredAt: n.timeProvider.Now(),
	}
	if err := n.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
		n.logger.Warn("Failed to publish record event", map[string]any{
			"kind":      kind,
			"action":    string(action),
			"record_id": id,
			"error":     err.Error(),
		})
	}
}
