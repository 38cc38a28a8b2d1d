package service

import (
	"context"

	"github.com/flexprice/taxengine/internal/api/dto"
	"github.com/flexprice/taxengine/internal/domain/taxcalc"
	"github.com/flexprice/taxengine/internal/types"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/iter"
)

// TaxCalculationService runs the tax engine for the sales and purchase flows
type TaxCalculationService interface {
	// Calculate computes one tax breakdown
	Calculate(ctx context.Context, req dto.CalculateTaxRequest) (*dto.CalculateTaxResponse, error)

	// CalculateBatch computes every item after validating all of them, results keep request order
	CalculateBatch(ctx context.Context, req dto.CalculateTaxBatchRequest) (*dto.CalculateTaxBatchResponse, error)

	// PreviewCustomRate shows how free text is read as a custom withholding rate
	PreviewCustomRate(ctx context.Context, value string) *dto.CustomRatePreviewResponse

	// OpenSession is the in-process embedding API for the sales and purchase
	// forms. It starts an interactive calculation seeded from the configured
	// defaults and publishes a notification on every change. The HTTP API is
	// stateless and does not use it.
	OpenSession(ctx context.Context, flow types.TaxFlow) *taxcalc.Session
}

type taxCalculationService struct {
	ServiceParams
}

// NewTaxCalculationService creates a new instance of TaxCalculationService
func NewTaxCalculationService(params ServiceParams) TaxCalculationService {
	return &taxCalculationService{
		ServiceParams: params,
	}
}

func (s *taxCalculationService) Calculate(ctx context.Context, req dto.CalculateTaxRequest) (*dto.CalculateTaxResponse, error) {
	if err := req.Validate(); err != nil {
		s.Logger.Warnw("tax calculation validation failed",
			"error", err,
			"flow", req.Flow,
			"request_id", types.GetRequestID(ctx),
		)
		return nil, err
	}

	return s.compute(ctx, &req), nil
}

func (s *taxCalculationService) CalculateBatch(ctx context.Context, req dto.CalculateTaxBatchRequest) (*dto.CalculateTaxBatchResponse, error) {
	if err := req.Validate(); err != nil {
		s.Logger.Warnw("tax batch validation failed",
			"error", err,
			"items", len(req.Items),
			"request_id", types.GetRequestID(ctx),
		)
		return nil, err
	}

	items := iter.Map(req.Items, func(item *dto.CalculateTaxRequest) *dto.CalculateTaxResponse {
		return s.compute(ctx, item)
	})

	s.Logger.Debugw("computed tax batch",
		"items", len(items),
		"request_id", types.GetRequestID(ctx),
	)

	return &dto.CalculateTaxBatchResponse{Items: items}, nil
}

func (s *taxCalculationService) PreviewCustomRate(ctx context.Context, value string) *dto.CustomRatePreviewResponse {
	sanitized := taxcalc.SanitizeRateInput(value)
	return &dto.CustomRatePreviewResponse{
		Value:     value,
		Sanitized: sanitized,
		Rate:      decimal.NewFromFloat(taxcalc.ParseRate(sanitized)),
	}
}

func (s *taxCalculationService) OpenSession(ctx context.Context, flow types.TaxFlow) *taxcalc.Session {
	session := taxcalc.NewSession(taxcalc.Configuration{
		Mode:        s.Config.Tax.DefaultMode,
		VATRate:     s.Config.Tax.DefaultVATRate,
		Withholding: s.Config.Tax.DefaultWithholding,
	})
	session.OnChange(s.TaxPublisher.Listener(ctx, flow))
	return session
}

// compute expects an already validated request
func (s *taxCalculationService) compute(ctx context.Context, req *dto.CalculateTaxRequest) *dto.CalculateTaxResponse {
	cfg := req.ToConfiguration(s.Config.Tax)
	result := taxcalc.Compute(cfg)

	s.Logger.Infow("computed tax",
		"flow", req.Flow,
		"mode", cfg.Mode,
		"vat_rate", cfg.VATRate,
		"withholding", cfg.Withholding,
		"dpp", result.DPP,
		"ppn", result.PPN,
		"pph", result.PPh,
		"grand_total", result.GrandTotal,
		"request_id", types.GetRequestID(ctx),
	)

	// failures are logged by the publisher and never fail the calculation
	_ = s.TaxPublisher.PublishCalculated(ctx, req.Flow, cfg, result)

	return dto.NewCalculateTaxResponse(req.Flow, cfg, result)
}
