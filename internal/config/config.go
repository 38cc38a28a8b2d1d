package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flexprice/taxengine/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Sentry     SentryConfig
	Events     EventsConfig
	Kafka      KafkaConfig
	Tax        TaxConfig `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// EventsConfig controls the tax.calculated notifications
type EventsConfig struct {
	Enabled bool             `mapstructure:"enabled"`
	PubSub  types.PubSubType `mapstructure:"pubsub"`
	Topic   string           `mapstructure:"topic"`
}

type KafkaConfig struct {
	Brokers       []string `mapstructure:"brokers"`
	ClientID      string   `mapstructure:"client_id"`
	ConsumerGroup string   `mapstructure:"consumer_group"`
	TLS           bool     `mapstructure:"tls"`
	UseSASL       bool     `mapstructure:"use_sasl"`
	SASLMechanism string   `mapstructure:"sasl_mechanism"`
	SASLUser      string   `mapstructure:"sasl_user"`
	SASLPassword  string   `mapstructure:"sasl_password"`
}

// TaxConfig holds the defaults applied when a request leaves a choice empty
type TaxConfig struct {
	DefaultMode        types.TaxMode           `mapstructure:"default_mode" validate:"required"`
	DefaultVATRate     types.VATRate           `mapstructure:"default_vat_rate" validate:"required"`
	DefaultWithholding types.WithholdingScheme `mapstructure:"default_withholding" validate:"required"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional and only feeds the environment viper reads below
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/taxengine")

	v.SetEnvPrefix("TAXENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	defaults := GetDefaultConfig()
	v.SetDefault("deployment.mode", defaults.Deployment.Mode)
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("events.enabled", defaults.Events.Enabled)
	v.SetDefault("events.pubsub", defaults.Events.PubSub)
	v.SetDefault("events.topic", defaults.Events.Topic)
	v.SetDefault("kafka.client_id", defaults.Kafka.ClientID)
	v.SetDefault("tax.default_mode", defaults.Tax.DefaultMode)
	v.SetDefault("tax.default_vat_rate", defaults.Tax.DefaultVATRate)
	v.SetDefault("tax.default_withholding", defaults.Tax.DefaultWithholding)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if err := c.Tax.DefaultMode.Validate(); err != nil {
		return err
	}
	if err := c.Tax.DefaultVATRate.Validate(); err != nil {
		return err
	}
	if err := c.Tax.DefaultWithholding.Validate(); err != nil {
		return err
	}

	if err := c.Events.PubSub.Validate(); err != nil {
		return err
	}

	if c.Events.Enabled && c.Events.PubSub == types.KafkaPubSub && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required when events.pubsub is kafka")
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// and for scripts that never read config.yaml.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Events: EventsConfig{
			Enabled: true,
			PubSub:  types.MemoryPubSub,
			Topic:   "tax_events",
		},
		Kafka: KafkaConfig{ClientID: "taxengine"},
		Tax: TaxConfig{
			DefaultMode:        types.TaxModeBeforeTax,
			DefaultVATRate:     types.VATRate11,
			DefaultWithholding: types.WithholdingPPh23,
		},
	}
}
