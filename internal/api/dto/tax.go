package dto

import (
	"github.com/flexprice/taxengine/internal/config"
	"github.com/flexprice/taxengine/internal/domain/taxcalc"
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/flexprice/taxengine/internal/types"
	"github.com/flexprice/taxengine/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MaxBatchSize caps the number of calculations in one batch request
const MaxBatchSize = 100

// TaxLineItem is one upstream line of a sales or purchase document
type TaxLineItem struct {
	// description is a free text label for the line
	Description string `json:"description,omitempty"`

	// quantity is the number of units, must be positive
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string"`

	// unit_price is the price per unit in IDR
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`

	// discount is the absolute discount for the whole line in IDR
	Discount decimal.Decimal `json:"discount" swaggertype:"string"`
}

// Total returns quantity * unit_price - discount
func (i TaxLineItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Sub(i.Discount)
}

func (i TaxLineItem) Validate() error {
	if !i.Quantity.IsPositive() {
		return ierr.NewError("quantity must be positive").
			WithHint("Line item quantity must be greater than zero").
			WithReportableDetails(map[string]any{"quantity": i.Quantity.String()}).
			Mark(ierr.ErrValidation)
	}
	if i.UnitPrice.IsNegative() {
		return ierr.NewError("unit_price cannot be negative").
			WithHint("Line item unit price cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if i.Discount.IsNegative() {
		return ierr.NewError("discount cannot be negative").
			WithHint("Line item discount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CalculateTaxRequest asks for one tax calculation
// @Description Either subtotal or items must be provided. Empty mode, vat_rate and withholding fall back to the configured defaults.
type CalculateTaxRequest struct {
	// flow is the page the calculation comes from (sales or purchase)
	Flow types.TaxFlow `json:"flow" validate:"required"`

	// subtotal is the pre-tax amount when items are not sent
	Subtotal *decimal.Decimal `json:"subtotal,omitempty" swaggertype:"string"`

	// items are summed into the subtotal when subtotal is not sent
	Items []TaxLineItem `json:"items,omitempty"`

	// shipping_cost is added to the sales subtotal, and to the PPh23 base only for purchases
	ShippingCost decimal.Decimal `json:"shipping_cost" swaggertype:"string"`

	// other_cost is added to the subtotal in both flows
	OtherCost decimal.Decimal `json:"other_cost" swaggertype:"string"`

	// mode is before_tax or after_tax
	Mode types.TaxMode `json:"mode,omitempty"`

	// vat_rate is "11" or "12"
	VATRate types.VATRate `json:"vat_rate,omitempty"`

	// withholding is pph22, pph23 or custom
	Withholding types.WithholdingScheme `json:"withholding,omitempty"`

	// custom_rate is the free text percentage used by the custom scheme
	CustomRate string `json:"custom_rate,omitempty"`
}

func (r *CalculateTaxRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if err := r.Flow.Validate(); err != nil {
		return err
	}

	if r.Subtotal == nil && len(r.Items) == 0 {
		return ierr.NewError("subtotal or items is required").
			WithHint("Provide either a subtotal or at least one line item").
			Mark(ierr.ErrValidation)
	}

	if r.Subtotal != nil && len(r.Items) > 0 {
		return ierr.NewError("subtotal and items are mutually exclusive").
			WithHint("Provide either a subtotal or line items, not both").
			Mark(ierr.ErrValidation)
	}

	if r.Subtotal != nil && r.Subtotal.IsNegative() {
		return ierr.NewError("subtotal cannot be negative").
			WithHint("Subtotal cannot be negative").
			Mark(ierr.ErrValidation)
	}

	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	if r.ShippingCost.IsNegative() || r.OtherCost.IsNegative() {
		return ierr.NewError("costs cannot be negative").
			WithHint("Shipping and other costs cannot be negative").
			Mark(ierr.ErrValidation)
	}

	if r.Mode != "" {
		if err := r.Mode.Validate(); err != nil {
			return err
		}
	}

	if r.VATRate != "" {
		if err := r.VATRate.Validate(); err != nil {
			return err
		}
	}

	if r.Withholding != "" {
		if err := r.Withholding.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// LinesSubtotal returns the subtotal before any flow specific costs
func (r *CalculateTaxRequest) LinesSubtotal() decimal.Decimal {
	if r.Subtotal != nil {
		return *r.Subtotal
	}
	return lo.Reduce(r.Items, func(acc decimal.Decimal, item TaxLineItem, _ int) decimal.Decimal {
		return acc.Add(item.Total())
	}, decimal.Zero)
}

// CostBases splits the request into the engine subtotal and the extra
// PPh23 base. Sales add every cost to the subtotal. Purchases keep
// shipping out of the subtotal and feed it to PPh23 instead.
func (r *CalculateTaxRequest) CostBases() (subtotal decimal.Decimal, additional decimal.Decimal) {
	lines := r.LinesSubtotal()
	if r.Flow == types.TaxFlowPurchase {
		return lines.Add(r.OtherCost), r.ShippingCost
	}
	return lines.Add(r.ShippingCost).Add(r.OtherCost), decimal.Zero
}

// ToConfiguration builds the engine input, filling empty choices from defaults.
// The custom rate is read through the same input filter as the rate preview.
func (r *CalculateTaxRequest) ToConfiguration(defaults config.TaxConfig) taxcalc.Configuration {
	subtotal, additional := r.CostBases()

	return taxcalc.Configuration{
		Subtotal:           subtotal.InexactFloat64(),
		Mode:               lo.Ternary(r.Mode != "", r.Mode, defaults.DefaultMode),
		VATRate:            lo.Ternary(r.VATRate != "", r.VATRate, defaults.DefaultVATRate),
		Withholding:        lo.Ternary(r.Withholding != "", r.Withholding, defaults.DefaultWithholding),
		CustomRate:         taxcalc.SanitizeRateInput(r.CustomRate),
		AdditionalCostBase: additional.InexactFloat64(),
	}
}

// CalculateTaxResponse carries one computed tax breakdown
type CalculateTaxResponse struct {
	Flow                         types.TaxFlow           `json:"flow"`
	Mode                         types.TaxMode           `json:"mode"`
	VATRate                      types.VATRate           `json:"vat_rate"`
	Withholding                  types.WithholdingScheme `json:"withholding"`
	CustomRate                   string                  `json:"custom_rate,omitempty"`
	Subtotal                     decimal.Decimal         `json:"subtotal" swaggertype:"string"`
	AdditionalCostBase           decimal.Decimal         `json:"additional_cost_base" swaggertype:"string"`
	DPP                          decimal.Decimal         `json:"dpp" swaggertype:"string"`
	PPN                          decimal.Decimal         `json:"ppn" swaggertype:"string"`
	PPh                          decimal.Decimal         `json:"pph" swaggertype:"string"`
	GrandTotal                   decimal.Decimal         `json:"grand_total" swaggertype:"string"`
	VATPercentageApplied         decimal.Decimal         `json:"vat_percentage_applied" swaggertype:"string"`
	WithholdingPercentageApplied decimal.Decimal         `json:"withholding_percentage_applied" swaggertype:"string"`
}

// NewCalculateTaxResponse maps an engine result onto the API shape
func NewCalculateTaxResponse(flow types.TaxFlow, cfg taxcalc.Configuration, result taxcalc.Result) *CalculateTaxResponse {
	return &CalculateTaxResponse{
		Flow:                         flow,
		Mode:                         cfg.Mode,
		VATRate:                      cfg.VATRate,
		Withholding:                  cfg.Withholding,
		CustomRate:                   cfg.CustomRate,
		Subtotal:                     decimal.NewFromFloat(cfg.Subtotal),
		AdditionalCostBase:           decimal.NewFromFloat(cfg.AdditionalCostBase),
		DPP:                          decimal.NewFromFloat(result.DPP),
		PPN:                          decimal.NewFromFloat(result.PPN),
		PPh:                          decimal.NewFromFloat(result.PPh),
		GrandTotal:                   decimal.NewFromFloat(result.GrandTotal),
		VATPercentageApplied:         decimal.NewFromFloat(result.VATPercentageApplied),
		WithholdingPercentageApplied: decimal.NewFromFloat(result.WithholdingPercentageApplied),
	}
}

// CalculateTaxBatchRequest asks for several independent calculations
type CalculateTaxBatchRequest struct {
	Items []CalculateTaxRequest `json:"items" validate:"required,min=1"`
}

func (r *CalculateTaxBatchRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if len(r.Items) > MaxBatchSize {
		return ierr.NewError("too many items in batch").
			WithHintf("A batch can hold at most %d calculations", MaxBatchSize).
			Mark(ierr.ErrValidation)
	}

	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return ierr.WithError(err).
				WithReportableDetails(map[string]any{"index": i}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// CalculateTaxBatchResponse holds results in request order
type CalculateTaxBatchResponse struct {
	Items []*CalculateTaxResponse `json:"items"`
}

// CustomRatePreviewResponse shows how a custom rate text is read
type CustomRatePreviewResponse struct {
	Value     string          `json:"value"`
	Sanitized string          `json:"sanitized"`
	Rate      decimal.Decimal `json:"rate" swaggertype:"string"`
}
