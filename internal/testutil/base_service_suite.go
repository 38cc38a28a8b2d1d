package testutil

import (
	"context"

	"github.com/flexprice/taxengine/internal/config"
	"github.com/flexprice/taxengine/internal/logger"
	"github.com/flexprice/taxengine/internal/publisher"
	"github.com/flexprice/taxengine/internal/types"
	"github.com/flexprice/taxengine/internal/validator"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	config    *config.Configuration
	logger    *logger.Logger
	pubsub    *InMemoryPubSub
	publisher publisher.TaxEventPublisher
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.pubsub = NewInMemoryPubSub()
	s.publisher = publisher.NewTaxEventPublisher(s.config, s.pubsub, s.logger)
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	_ = s.pubsub.Close()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetPubSub returns the in-memory pubsub backing the test publisher
func (s *BaseServiceTestSuite) GetPubSub() *InMemoryPubSub {
	return s.pubsub
}

// GetPublisher returns the tax event publisher wired to the in-memory pubsub
func (s *BaseServiceTestSuite) GetPublisher() publisher.TaxEventPublisher {
	return s.publisher
}
