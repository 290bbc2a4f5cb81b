package mbiri

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Analytics subjects published by the API.
const (
	SubjectUserRegistered    = "analytics.user.registered"
	SubjectVideoWatched      = "analytics.video.watched"
	SubjectPointsTransferred = "analytics.points.transferred"
)

// Event is the envelope sent to every analytics.* subject.
type Event struct {
	EventID    string         `json:"event_id"`
	EventName  string         `json:"event_name"`
	UserID     string         `json:"user_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Publisher sends analytics events to NATS JetStream, fire-and-forget.
// A nil Publisher is a safe no-op, so services can run without NATS.
type Publisher struct {
	js     nats.JetStreamContext
	logger *zap.Logger
}

func NewPublisher(js nats.JetStreamContext, logger *zap.Logger) *Publisher {
	return &Publisher{js, logger}
}

// Publish never surfaces failures to the caller; they are logged and dropped.
func (p *Publisher) Publish(subject, eventName, userID string, props map[string]any) {
	if p == nil || p.js == nil {
		return
	}
	ev := Event{
		EventID:    uuid.NewString(),
		EventName:  eventName,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Properties: props,
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.logger.Warn("events: marshal failed", zap.String("event", eventName), zap.Error(err))
		return
	}
	if _, err := p.js.PublishAsync(subject, data); err != nil {
		p.logger.Warn("events: publish failed", zap.String("subject", subject), zap.Error(err))
	}
}
