// Package taxcalc computes Indonesian PPN and PPh figures for the sales and
// purchase tax panels.
//
// All arithmetic is float64 evaluated in a fixed order. DPP, PPN and PPh are
// rounded on their own before the grand total is assembled, and the grand
// total depends on that order, so formulas here must not be rearranged.
package taxcalc

import (
	"github.com/flexprice/taxengine/internal/types"
)

const (
	// PPh22 tier ceilings, inclusive.
	PPh22LowerTierCeiling  = 500_000_000
	PPh22MiddleTierCeiling = 10_000_000_000

	pph23Rate = 0.0265
	// pph23ReportedPercentage is what the panels display for PPh23. It does
	// not match pph23Rate.
	pph23ReportedPercentage = 2

	pph23BeforeTaxDivisor = 1.11
	pph23AfterTaxDivisor  = 1.011
)

// Compute derives DPP, PPN, PPh and the grand total for cfg. It never fails:
// unknown enum values fall back to before_tax, 11% and the custom scheme
// respectively, and unreadable custom rates count as 0.
func Compute(cfg Configuration) Result {
	vatPercentage := cfg.VATRate.Percentage()

	dpp := taxableBase(cfg)
	ppn := vat(cfg, dpp)
	pph, withholdingPercentage := withholding(cfg, dpp, ppn)

	roundedPPN := Round(ppn)
	roundedPPh := Round(pph)

	var grandTotal float64
	if cfg.Mode == types.TaxModeAfterTax {
		grandTotal = Round(dpp) + roundedPPN - roundedPPh
	} else {
		grandTotal = cfg.Subtotal + roundedPPN - roundedPPh
	}

	return Result{
		DPP:                          Round(dpp),
		PPN:                          roundedPPN,
		PPh:                          roundedPPh,
		GrandTotal:                   grandTotal,
		VATPercentageApplied:         vatPercentage,
		WithholdingPercentageApplied: withholdingPercentage,
	}
}

// taxableBase returns the unrounded DPP.
func taxableBase(cfg Configuration) float64 {
	if cfg.Mode == types.TaxModeAfterTax {
		if cfg.VATRate == types.VATRate12 {
			return cfg.Subtotal / 1.12
		}
		return cfg.Subtotal / 1.11
	}

	// The 12% regime keeps its base at 11/12 of the subtotal.
	if cfg.VATRate == types.VATRate12 {
		return cfg.Subtotal * 11 / 12
	}
	return cfg.Subtotal
}

// vat returns the unrounded PPN. The conversions keep the product from
// being fused into the PPh23 sum.
func vat(cfg Configuration, dpp float64) float64 {
	if cfg.Mode == types.TaxModeAfterTax {
		return float64(dpp * cfg.VATRate.Percentage() / 100)
	}
	return float64(dpp * cfg.VATRate.Fraction())
}

// withholding returns the PPh amount and the percentage to report for it.
func withholding(cfg Configuration, dpp, ppn float64) (float64, float64) {
	switch cfg.Withholding {
	case types.WithholdingPPh23:
		base := cfg.Subtotal + cfg.AdditionalCostBase + ppn
		divisor := pph23BeforeTaxDivisor
		if cfg.Mode == types.TaxModeAfterTax {
			divisor = pph23AfterTaxDivisor
		}
		return Round(base / divisor * pph23Rate), pph23ReportedPercentage

	case types.WithholdingPPh22:
		switch {
		case dpp <= PPh22LowerTierCeiling:
			return dpp * 0.01, 1
		case dpp <= PPh22MiddleTierCeiling:
			return dpp * 0.015, 1.5
		default:
			return dpp * 0.025, 2.5
		}

	default:
		rate := ParseRate(cfg.CustomRate)
		return dpp * rate / 100, rate
	}
}
