// Package pubsub abstracts the transport that carries tax.calculated
// notifications. The memory backend serves local mode and tests; the kafka
// backend serves deployments.
package pubsub

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher sends an encoded tax.calculated event to a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, msg *message.Message) error
	Close() error
}

// Subscriber streams tax.calculated events from a topic until ctx is done
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}

// PubSub is one backend used for both sides of the notification flow
type PubSub interface {
	Publisher
	Subscriber
}
