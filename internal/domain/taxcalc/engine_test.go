package taxcalc

import (
	"testing"

	"github.com/flexprice/taxengine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		cfg  Configuration
		want Result
	}{
		{
			name: "pph23 before tax at 11%",
			cfg: Configuration{
				Subtotal:    1_000_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingPPh23,
			},
			want: Result{DPP: 1_000_000, PPN: 110_000, PPh: 26_500, GrandTotal: 1_083_500, VATPercentageApplied: 11, WithholdingPercentageApplied: 2},
		},
		{
			name: "12% before tax keeps the base at 11/12 of the subtotal",
			cfg: Configuration{
				Subtotal:    1_200_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingPPh23,
			},
			want: Result{DPP: 1_100_000, PPN: 132_000, PPh: 31_800, GrandTotal: 1_300_200, VATPercentageApplied: 12, WithholdingPercentageApplied: 2},
		},
		{
			name: "12% before tax with pph22",
			cfg: Configuration{
				Subtotal:    1_200_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingPPh22,
			},
			want: Result{DPP: 1_100_000, PPN: 132_000, PPh: 11_000, GrandTotal: 1_321_000, VATPercentageApplied: 12, WithholdingPercentageApplied: 1},
		},
		{
			name: "pph23 after tax at 11% uses the 1.011 divisor",
			cfg: Configuration{
				Subtotal:    1_110_000,
				Mode:        types.TaxModeAfterTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingPPh23,
			},
			want: Result{DPP: 1_000_000, PPN: 110_000, PPh: 31_978, GrandTotal: 1_078_022, VATPercentageApplied: 11, WithholdingPercentageApplied: 2},
		},
		{
			name: "pph23 after tax at 12%",
			cfg: Configuration{
				Subtotal:    1_120_000,
				Mode:        types.TaxModeAfterTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingPPh23,
			},
			want: Result{DPP: 1_000_000, PPN: 120_000, PPh: 32_502, GrandTotal: 1_087_498, VATPercentageApplied: 12, WithholdingPercentageApplied: 2},
		},
		{
			name: "after tax with a fractional base rounds each part",
			cfg: Configuration{
				Subtotal:    1_000_000,
				Mode:        types.TaxModeAfterTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingPPh23,
			},
			want: Result{DPP: 900_901, PPN: 99_099, PPh: 28_809, GrandTotal: 971_191, VATPercentageApplied: 11, WithholdingPercentageApplied: 2},
		},
		{
			name: "pph22 after tax at 12%",
			cfg: Configuration{
				Subtotal:    1_234_567,
				Mode:        types.TaxModeAfterTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingPPh22,
			},
			want: Result{DPP: 1_102_292, PPN: 132_275, PPh: 11_023, GrandTotal: 1_223_544, VATPercentageApplied: 12, WithholdingPercentageApplied: 1},
		},
		{
			name: "custom rate with comma separator",
			cfg: Configuration{
				Subtotal:    2_000_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingCustom,
				CustomRate:  "1,5",
			},
			want: Result{DPP: 2_000_000, PPN: 220_000, PPh: 30_000, GrandTotal: 2_190_000, VATPercentageApplied: 11, WithholdingPercentageApplied: 1.5},
		},
		{
			name: "custom rate after tax at 12% ignores trailing text",
			cfg: Configuration{
				Subtotal:    2_000_000,
				Mode:        types.TaxModeAfterTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingCustom,
				CustomRate:  "2.5%",
			},
			want: Result{DPP: 1_785_714, PPN: 214_286, PPh: 44_643, GrandTotal: 1_955_357, VATPercentageApplied: 12, WithholdingPercentageApplied: 2.5},
		},
		{
			name: "custom rate before tax at 12%",
			cfg: Configuration{
				Subtotal:    1_234_567,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingCustom,
				CustomRate:  "2",
			},
			want: Result{DPP: 1_131_686, PPN: 135_802, PPh: 22_634, GrandTotal: 1_347_735, VATPercentageApplied: 12, WithholdingPercentageApplied: 2},
		},
		{
			name: "unparsable custom rate counts as zero",
			cfg: Configuration{
				Subtotal:    2_000_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingCustom,
				CustomRate:  "abc",
			},
			want: Result{DPP: 2_000_000, PPN: 220_000, PPh: 0, GrandTotal: 2_220_000, VATPercentageApplied: 11, WithholdingPercentageApplied: 0},
		},
		{
			name: "empty custom rate counts as zero",
			cfg: Configuration{
				Subtotal:    2_000_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingCustom,
			},
			want: Result{DPP: 2_000_000, PPN: 220_000, PPh: 0, GrandTotal: 2_220_000, VATPercentageApplied: 11, WithholdingPercentageApplied: 0},
		},
		{
			name: "negative custom rate is applied as given",
			cfg: Configuration{
				Subtotal:    2_000_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingCustom,
				CustomRate:  "-1",
			},
			want: Result{DPP: 2_000_000, PPN: 220_000, PPh: -20_000, GrandTotal: 2_240_000, VATPercentageApplied: 11, WithholdingPercentageApplied: -1},
		},
		{
			name: "zero subtotal",
			cfg: Configuration{
				Subtotal:    0,
				Mode:        types.TaxModeAfterTax,
				VATRate:     types.VATRate12,
				Withholding: types.WithholdingPPh22,
			},
			want: Result{DPP: 0, PPN: 0, PPh: 0, GrandTotal: 0, VATPercentageApplied: 12, WithholdingPercentageApplied: 1},
		},
		{
			name: "negative subtotal is not rejected",
			cfg: Configuration{
				Subtotal:    -1_000_000,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingPPh22,
			},
			want: Result{DPP: -1_000_000, PPN: -110_000, PPh: -10_000, GrandTotal: -1_100_000, VATPercentageApplied: 11, WithholdingPercentageApplied: 1},
		},
		{
			name: "before tax grand total keeps the unrounded subtotal",
			cfg: Configuration{
				Subtotal:    100.5,
				Mode:        types.TaxModeBeforeTax,
				VATRate:     types.VATRate11,
				Withholding: types.WithholdingCustom,
				CustomRate:  "0",
			},
			want: Result{DPP: 101, PPN: 11, PPh: 0, GrandTotal: 111.5, VATPercentageApplied: 11, WithholdingPercentageApplied: 0},
		},
		{
			name: "additional cost base only feeds pph23",
			cfg: Configuration{
				Subtotal:           1_000_000,
				Mode:               types.TaxModeBeforeTax,
				VATRate:            types.VATRate11,
				Withholding:        types.WithholdingPPh23,
				AdditionalCostBase: 500_000,
			},
			want: Result{DPP: 1_000_000, PPN: 110_000, PPh: 38_437, GrandTotal: 1_071_563, VATPercentageApplied: 11, WithholdingPercentageApplied: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.cfg))
		})
	}
}

func TestComputePPh22Tiers(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		mode     types.TaxMode
		vat      types.VATRate
		wantPPh  float64
		wantRate float64
	}{
		{name: "lower tier ceiling is inclusive", subtotal: 500_000_000, mode: types.TaxModeBeforeTax, vat: types.VATRate11, wantPPh: 5_000_000, wantRate: 1},
		{name: "one unit above lower tier", subtotal: 500_000_001, mode: types.TaxModeBeforeTax, vat: types.VATRate11, wantPPh: 7_500_000, wantRate: 1.5},
		{name: "middle tier ceiling is inclusive", subtotal: 10_000_000_000, mode: types.TaxModeBeforeTax, vat: types.VATRate11, wantPPh: 150_000_000, wantRate: 1.5},
		{name: "one unit above middle tier", subtotal: 10_000_000_001, mode: types.TaxModeBeforeTax, vat: types.VATRate11, wantPPh: 250_000_000, wantRate: 2.5},
		{name: "after tax base lands on the lower ceiling at 11%", subtotal: 555_000_000, mode: types.TaxModeAfterTax, vat: types.VATRate11, wantPPh: 5_000_000, wantRate: 1},
		{name: "after tax base lands on the lower ceiling at 12%", subtotal: 560_000_000, mode: types.TaxModeAfterTax, vat: types.VATRate12, wantPPh: 5_000_000, wantRate: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(Configuration{
				Subtotal:    tt.subtotal,
				Mode:        tt.mode,
				VATRate:     tt.vat,
				Withholding: types.WithholdingPPh22,
			})
			assert.Equal(t, tt.wantPPh, got.PPh)
			assert.Equal(t, tt.wantRate, got.WithholdingPercentageApplied)
		})
	}
}

func TestComputeAfterTaxRoundTrip(t *testing.T) {
	for _, vat := range []types.VATRate{types.VATRate11, types.VATRate12} {
		for subtotal := 0.0; subtotal <= 5_000_000; subtotal += 12_345 {
			got := Compute(Configuration{
				Subtotal:    subtotal,
				Mode:        types.TaxModeAfterTax,
				VATRate:     vat,
				Withholding: types.WithholdingPPh22,
			})
			assert.Equal(t, Round(subtotal/(1+vat.Fraction())), got.DPP, "subtotal %v vat %s", subtotal, vat)
			assert.InDelta(t, subtotal, got.DPP+got.PPN, 1, "subtotal %v vat %s", subtotal, vat)
		}
	}
}

func TestComputeModeChangeKeepsReportedRates(t *testing.T) {
	for _, scheme := range []types.WithholdingScheme{types.WithholdingPPh22, types.WithholdingPPh23, types.WithholdingCustom} {
		cfg := Configuration{
			Subtotal:    1_110_000,
			Mode:        types.TaxModeBeforeTax,
			VATRate:     types.VATRate11,
			Withholding: scheme,
			CustomRate:  "3",
		}
		before := Compute(cfg)
		cfg.Mode = types.TaxModeAfterTax
		after := Compute(cfg)

		assert.NotEqual(t, before.DPP, after.DPP, scheme)
		assert.Equal(t, before.VATPercentageApplied, after.VATPercentageApplied, scheme)
		assert.Equal(t, before.WithholdingPercentageApplied, after.WithholdingPercentageApplied, scheme)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	cfg := Configuration{
		Subtotal:    7_654_321.75,
		Mode:        types.TaxModeAfterTax,
		VATRate:     types.VATRate12,
		Withholding: types.WithholdingPPh23,
	}
	assert.Equal(t, Compute(cfg), Compute(cfg))
}

func TestComputeUnknownChoicesFallBack(t *testing.T) {
	got := Compute(Configuration{
		Subtotal:    1_000_000,
		Mode:        types.TaxMode("gross"),
		VATRate:     types.VATRate("10"),
		Withholding: types.WithholdingScheme("pph21"),
		CustomRate:  "1",
	})
	assert.Equal(t, Result{DPP: 1_000_000, PPN: 110_000, PPh: 10_000, GrandTotal: 1_100_000, VATPercentageApplied: 11, WithholdingPercentageApplied: 1}, got)
}
