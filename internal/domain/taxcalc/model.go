package taxcalc

import (
	"github.com/flexprice/taxengine/internal/types"
)

// Configuration is everything the engine needs for one calculation.
// It is a value: callers replace it wholesale on every edit.
type Configuration struct {
	// Subtotal is the pre-tax base figure assembled by the calling page.
	Subtotal float64 `json:"subtotal"`
	// Mode says whether Subtotal excludes (before_tax) or includes (after_tax) PPN.
	Mode types.TaxMode `json:"mode"`
	// VATRate is the PPN rate in force.
	VATRate types.VATRate `json:"vat_rate"`
	// Withholding selects the PPh regime.
	Withholding types.WithholdingScheme `json:"withholding"`
	// CustomRate is the free-text percentage used by the custom scheme.
	CustomRate string `json:"custom_rate,omitempty"`
	// AdditionalCostBase is added to Subtotal in the PPh23 base only.
	AdditionalCostBase float64 `json:"additional_cost_base,omitempty"`
}

// Result holds the computed figures. DPP, PPN and PPh are whole currency
// units; GrandTotal is assembled from them.
type Result struct {
	DPP                          float64 `json:"dpp"`
	PPN                          float64 `json:"ppn"`
	PPh                          float64 `json:"pph"`
	GrandTotal                   float64 `json:"grand_total"`
	VATPercentageApplied         float64 `json:"vat_percentage_applied"`
	WithholdingPercentageApplied float64 `json:"withholding_percentage_applied"`
}
