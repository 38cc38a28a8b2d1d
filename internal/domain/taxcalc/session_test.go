package taxcalc

import (
	"testing"

	"github.com/flexprice/taxengine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(Configuration{
		Subtotal:    1_000_000,
		Mode:        types.TaxModeBeforeTax,
		VATRate:     types.VATRate11,
		Withholding: types.WithholdingPPh23,
	})
}

func TestNewSessionComputesImmediately(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, 1_083_500.0, s.Result().GrandTotal)
}

func TestSessionNotifiesOnEveryChange(t *testing.T) {
	s := newTestSession()

	var got []Result
	s.OnChange(func(_ Configuration, r Result) { got = append(got, r) })

	s.SetVATRate(types.VATRate12)
	s.SetMode(types.TaxModeAfterTax)
	s.SetWithholding(types.WithholdingPPh22)
	s.SetSubtotal(1_120_000)

	require.Len(t, got, 4)
	assert.Equal(t, Compute(s.Configuration()), got[3])
	assert.Equal(t, Result{DPP: 1_000_000, PPN: 120_000, PPh: 10_000, GrandTotal: 1_110_000, VATPercentageApplied: 12, WithholdingPercentageApplied: 1}, s.Result())
}

func TestSessionListenersRunInOrder(t *testing.T) {
	s := newTestSession()

	var order []string
	s.OnChange(func(Configuration, Result) { order = append(order, "first") })
	s.OnChange(nil)
	s.OnChange(func(Configuration, Result) { order = append(order, "second") })

	s.SetSubtotal(2_000_000)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSessionCustomRateIsSanitized(t *testing.T) {
	s := newTestSession()
	s.SetWithholding(types.WithholdingCustom)

	r := s.SetCustomRate("-1,5%")
	assert.Equal(t, "1,5", s.Configuration().CustomRate)
	assert.Equal(t, 1.5, r.WithholdingPercentageApplied)
	assert.Equal(t, 15_000.0, r.PPh)

	r = s.SetCustomRate("abc")
	assert.Equal(t, 0.0, r.PPh)
	assert.Equal(t, 0.0, r.WithholdingPercentageApplied)
}

func TestSessionAdditionalCostBase(t *testing.T) {
	s := newTestSession()
	r := s.SetAdditionalCostBase(500_000)
	assert.Equal(t, 38_437.0, r.PPh)
	assert.Equal(t, 1_000_000.0, r.DPP)
}

func TestSessionApplyPassesLatestConfiguration(t *testing.T) {
	s := newTestSession()

	var seen Configuration
	s.OnChange(func(cfg Configuration, _ Result) { seen = cfg })

	s.Apply(func(cfg *Configuration) {
		cfg.Subtotal = 1_200_000
		cfg.VATRate = types.VATRate12
	})

	assert.Equal(t, 1_200_000.0, seen.Subtotal)
	assert.Equal(t, types.VATRate12, seen.VATRate)
	assert.Equal(t, 1_100_000.0, s.Result().DPP)
}

func TestSessionApplyCanReadSession(t *testing.T) {
	s := newTestSession()

	r := s.Apply(func(cfg *Configuration) {
		cfg.Subtotal = s.Configuration().Subtotal + s.Result().PPN
	})

	assert.Equal(t, 1_110_000.0, s.Configuration().Subtotal)
	assert.Equal(t, 1_110_000.0, r.DPP)
}
