package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/cenkalti/backoff/v4"
	"github.com/flexprice/taxengine/internal/config"
	"github.com/flexprice/taxengine/internal/domain/taxcalc"
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/flexprice/taxengine/internal/logger"
	"github.com/flexprice/taxengine/internal/pubsub"
	"github.com/flexprice/taxengine/internal/types"
)

const (
	EventTaxCalculated = "tax.calculated"

	maxPublishRetries = 2
)

// TaxCalculatedEvent is the payload sent to the page that owns a calculation
type TaxCalculatedEvent struct {
	ID            string                `json:"id"`
	EventName     string                `json:"event_name"`
	Flow          types.TaxFlow         `json:"flow,omitempty"`
	RequestID     string                `json:"request_id,omitempty"`
	Configuration taxcalc.Configuration `json:"configuration"`
	Result        taxcalc.Result        `json:"result"`
	Timestamp     time.Time             `json:"timestamp"`
}

// TaxEventPublisher delivers tax.calculated notifications
type TaxEventPublisher interface {
	PublishCalculated(ctx context.Context, flow types.TaxFlow, cfg taxcalc.Configuration, result taxcalc.Result) error
	// Listener adapts the publisher to a taxcalc.Session listener
	Listener(ctx context.Context, flow types.TaxFlow) taxcalc.Listener
}

type taxEventPublisher struct {
	pubsub  pubsub.Publisher
	topic   string
	enabled bool
	logger  *logger.Logger
	backoff func() backoff.BackOff
}

// NewTaxEventPublisher creates a publisher on the configured events topic
func NewTaxEventPublisher(cfg *config.Configuration, ps pubsub.PubSub, logger *logger.Logger) TaxEventPublisher {
	return &taxEventPublisher{
		pubsub:  ps,
		topic:   cfg.Events.Topic,
		enabled: cfg.Events.Enabled,
		logger:  logger,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			b.MaxInterval = 500 * time.Millisecond
			b.MaxElapsedTime = 2 * time.Second
			return backoff.WithMaxRetries(b, maxPublishRetries)
		},
	}
}

func (p *taxEventPublisher) PublishCalculated(ctx context.Context, flow types.TaxFlow, cfg taxcalc.Configuration, result taxcalc.Result) error {
	if !p.enabled {
		return nil
	}

	event := TaxCalculatedEvent{
		ID:            watermill.NewUUID(),
		EventName:     EventTaxCalculated,
		Flow:          flow,
		RequestID:     types.GetRequestID(ctx),
		Configuration: cfg,
		Result:        result,
		Timestamp:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode tax notification").
			Mark(ierr.ErrSystem)
	}

	operation := func() error {
		msg := message.NewMessage(event.ID, payload)
		msg.Metadata.Set("event_name", EventTaxCalculated)
		msg.Metadata.Set("flow", flow.String())
		return p.pubsub.Publish(ctx, p.topic, msg)
	}

	if err := backoff.Retry(operation, backoff.WithContext(p.backoff(), ctx)); err != nil {
		p.logger.Errorw("failed to publish tax notification",
			"error", err,
			"event_id", event.ID,
			"topic", p.topic,
			"flow", flow,
		)
		return ierr.WithError(err).
			WithHint("Failed to publish tax notification").
			Mark(ierr.ErrNotification)
	}

	p.logger.Debugw("published tax notification",
		"event_id", event.ID,
		"topic", p.topic,
		"flow", flow,
	)
	return nil
}

func (p *taxEventPublisher) Listener(ctx context.Context, flow types.TaxFlow) taxcalc.Listener {
	return func(cfg taxcalc.Configuration, result taxcalc.Result) {
		// Publishing failures are already logged and must not interrupt the session.
		_ = p.PublishCalculated(ctx, flow, cfg, result)
	}
}
