package service

import (
	"github.com/flexprice/taxengine/internal/config"
	"github.com/flexprice/taxengine/internal/logger"
	"github.com/flexprice/taxengine/internal/publisher"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	TaxPublisher publisher.TaxEventPublisher
}

// NewServiceParams creates a new ServiceParams
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	taxPublisher publisher.TaxEventPublisher,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		TaxPublisher: taxPublisher,
	}
}
