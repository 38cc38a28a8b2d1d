package types

import (
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/samber/lo"
)

// TaxMode tells whether a subtotal excludes VAT (before_tax) or already
// includes it (after_tax).
type TaxMode string

const (
	TaxModeBeforeTax TaxMode = "before_tax"
	TaxModeAfterTax  TaxMode = "after_tax"
)

func (m TaxMode) String() string {
	return string(m)
}

func (m TaxMode) Validate() error {
	allowedValues := []TaxMode{TaxModeBeforeTax, TaxModeAfterTax}
	if !lo.Contains(allowedValues, m) {
		return ierr.NewError("invalid tax mode").
			WithHint("Tax mode must be either before_tax or after_tax").
			WithReportableDetails(map[string]any{"mode": m}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// VATRate is the PPN rate in force, as a whole percentage.
type VATRate string

const (
	VATRate11 VATRate = "11"
	VATRate12 VATRate = "12"
)

func (r VATRate) String() string {
	return string(r)
}

func (r VATRate) Validate() error {
	allowedValues := []VATRate{VATRate11, VATRate12}
	if !lo.Contains(allowedValues, r) {
		return ierr.NewError("invalid vat rate").
			WithHint("VAT rate must be either 11 or 12").
			WithReportableDetails(map[string]any{"vat_rate": r}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Percentage returns the rate as a whole percentage, 11 unless the rate is 12.
func (r VATRate) Percentage() float64 {
	if r == VATRate12 {
		return 12
	}
	return 11
}

// Fraction returns the rate as a multiplier (0.11 or 0.12).
func (r VATRate) Fraction() float64 {
	if r == VATRate12 {
		return 0.12
	}
	return 0.11
}

// WithholdingScheme selects the PPh regime applied to a transaction.
type WithholdingScheme string

const (
	WithholdingPPh22  WithholdingScheme = "pph22"
	WithholdingPPh23  WithholdingScheme = "pph23"
	WithholdingCustom WithholdingScheme = "custom"
)

func (w WithholdingScheme) String() string {
	return string(w)
}

func (w WithholdingScheme) Validate() error {
	allowedValues := []WithholdingScheme{
		WithholdingPPh22,
		WithholdingPPh23,
		WithholdingCustom,
	}
	if !lo.Contains(allowedValues, w) {
		return ierr.NewError("invalid withholding scheme").
			WithHint("Withholding scheme must be one of pph22, pph23, custom").
			WithReportableDetails(map[string]any{"withholding": w}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TaxFlow identifies the page a calculation comes from. The flows differ
// only in how the subtotal and the PPh23 cost base are assembled.
type TaxFlow string

const (
	TaxFlowSales    TaxFlow = "sales"
	TaxFlowPurchase TaxFlow = "purchase"
)

func (f TaxFlow) String() string {
	return string(f)
}

func (f TaxFlow) Validate() error {
	allowedValues := []TaxFlow{TaxFlowSales, TaxFlowPurchase}
	if !lo.Contains(allowedValues, f) {
		return ierr.NewError("invalid tax flow").
			WithHint("Flow must be either sales or purchase").
			WithReportableDetails(map[string]any{"flow": f}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
