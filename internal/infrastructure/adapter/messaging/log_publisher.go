package messaging

import (
	"context"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
)

// LogPublisher records events in the log instead of a broker. It is used
// when event publishing is disabled.
type LogPublisher struct {
	logger coreport.Logger
}

var _ messaging.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger coreport.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event messaging.RecordEvent) error {
	p.logger.Debug("Record event", map[string]any{
		"kind":      event.Kind,
		"action":    string(event.Action),
		"record_id": event.RecordID,
		"owner_id":  event.OwnerID,
	})
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
