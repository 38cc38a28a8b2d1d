package kafka

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/flexprice/taxengine/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestApplySecurity(t *testing.T) {
	plain := applySecurity(sarama.NewConfig(), &config.KafkaConfig{ClientID: "taxengine"})
	assert.Equal(t, "taxengine", plain.ClientID)
	assert.False(t, plain.Net.TLS.Enable)
	assert.False(t, plain.Net.SASL.Enable)

	secured := applySecurity(sarama.NewConfig(), &config.KafkaConfig{
		ClientID:      "taxengine",
		UseSASL:       true,
		SASLMechanism: sarama.SASLTypePlaintext,
		SASLUser:      "user",
		SASLPassword:  "secret",
	})
	assert.True(t, secured.Net.TLS.Enable)
	assert.True(t, secured.Net.SASL.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypePlaintext), secured.Net.SASL.Mechanism)
	assert.Equal(t, "user", secured.Net.SASL.User)
}
