package types

import (
	"testing"

	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestTaxEnumsValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{ Validate() error }
		wantErr bool
	}{
		{name: "before tax", value: TaxModeBeforeTax},
		{name: "after tax", value: TaxModeAfterTax},
		{name: "empty mode", value: TaxMode(""), wantErr: true},
		{name: "vat 11", value: VATRate11},
		{name: "vat 12", value: VATRate12},
		{name: "vat 10", value: VATRate("10"), wantErr: true},
		{name: "pph22", value: WithholdingPPh22},
		{name: "pph23", value: WithholdingPPh23},
		{name: "custom", value: WithholdingCustom},
		{name: "pph21", value: WithholdingScheme("pph21"), wantErr: true},
		{name: "sales", value: TaxFlowSales},
		{name: "purchase", value: TaxFlowPurchase},
		{name: "expense", value: TaxFlow("expense"), wantErr: true},
		{name: "memory pubsub", value: MemoryPubSub},
		{name: "kafka pubsub", value: KafkaPubSub},
		{name: "redis pubsub", value: PubSubType("redis"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.True(t, ierr.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVATRatePercentageAndFraction(t *testing.T) {
	assert.Equal(t, 11.0, VATRate11.Percentage())
	assert.Equal(t, 0.11, VATRate11.Fraction())
	assert.Equal(t, 12.0, VATRate12.Percentage())
	assert.Equal(t, 0.12, VATRate12.Fraction())
}
