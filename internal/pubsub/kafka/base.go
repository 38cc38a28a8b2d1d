package kafka

import (
	"crypto/tls"

	"github.com/Shopify/sarama"
	"github.com/flexprice/taxengine/internal/config"
)

// applySecurity copies TLS and SASL settings onto a sarama config
func applySecurity(saramaConfig *sarama.Config, cfg *config.KafkaConfig) *sarama.Config {
	saramaConfig.Version = sarama.V2_1_0_0
	saramaConfig.ClientID = cfg.ClientID

	if cfg.TLS {
		saramaConfig.Net.TLS.Enable = true
		saramaConfig.Net.TLS.Config = &tls.Config{
			InsecureSkipVerify: false,
		}
	}

	if !cfg.UseSASL {
		return saramaConfig
	}

	saramaConfig.Net.SASL.Enable = true
	saramaConfig.Net.TLS.Enable = true
	saramaConfig.Net.SASL.Mechanism = sarama.SASLMechanism(cfg.SASLMechanism)
	saramaConfig.Net.SASL.User = cfg.SASLUser
	saramaConfig.Net.SASL.Password = cfg.SASLPassword

	return saramaConfig
}
