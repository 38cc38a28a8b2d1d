package types

import (
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/samber/lo"
)

// PubSubType selects the transport for tax.calculated notifications
type PubSubType string

const (
	// MemoryPubSub keeps notifications inside the process
	MemoryPubSub PubSubType = "memory"

	// KafkaPubSub publishes notifications to Kafka
	KafkaPubSub PubSubType = "kafka"
)

func (p PubSubType) String() string {
	return string(p)
}

func (p PubSubType) Validate() error {
	allowedValues := []PubSubType{MemoryPubSub, KafkaPubSub}
	if !lo.Contains(allowedValues, p) {
		return ierr.NewError("invalid pubsub type").
			WithHint("Events pubsub must be either memory or kafka").
			WithReportableDetails(map[string]any{"pubsub": p}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
