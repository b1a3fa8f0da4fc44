package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pos-api/internal/services"
	"pos-api/internal/types"
)

func TestTaxService_ResolveRegion(t *testing.T) {
	tax := services.NewTaxService()

	tests := []struct {
		name      string
		country   string
		province  string
		wantRate  string
		wantTitle string
	}{
		{name: "US California", country: "US", province: "CA", wantRate: "0.0875", wantTitle: "California Sales Tax"},
		{name: "unmapped province falls back to country default", country: "US", province: "ZZ", wantRate: "0.06", wantTitle: "US Sales Tax"},
		{name: "lower-cased input", country: "us", province: "ca", wantRate: "0.0875", wantTitle: "California Sales Tax"},
		{name: "UK VAT", country: "GB", province: "", wantRate: "0.20", wantTitle: "VAT"},
		{name: "Canada Ontario HST", country: "CA", province: "ON", wantRate: "0.13", wantTitle: "HST"},
		{name: "unmapped country yields zero rate", country: "XX", province: "", wantRate: "0", wantTitle: "No Tax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := tax.ResolveRegion(tt.country, tt.province)
			assert.True(t, region.Rate.Equal(dec(t, tt.wantRate)), "rate %s", region.Rate)
			assert.Equal(t, tt.wantTitle, region.Title)
		})
	}
}

func TestTaxService_Calculate_TaxExcluded(t *testing.T) {
	tax := services.NewTaxService()

	// Scenario: US/CA, tax-excluded, subtotal $100.00, delivery $25.00 taxable.
	result := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "US", Province: "CA"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: true},
		TaxableBase:   dec(t, "100.00"),
		ShippingOrFee: dec(t, "25.00"),
	})

	assert.False(t, result.IsIncluded)
	assert.Equal(t, "California Sales Tax", result.Title)
	assert.True(t, result.TaxAmount.Equal(dec(t, "8.75")), "tax %s", result.TaxAmount)
	assert.True(t, result.ShippingTaxAmount.Equal(dec(t, "2.1875")), "shipping tax %s", result.ShippingTaxAmount)
	// Display rounding is presentation-only.
	assert.Equal(t, "2.19", result.ShippingTaxAmount.Round(2).StringFixed(2))
}

func TestTaxService_Calculate_ShippingNotTaxed(t *testing.T) {
	tax := services.NewTaxService()

	result := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "US", Province: "CA"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: false},
		TaxableBase:   dec(t, "100.00"),
		ShippingOrFee: dec(t, "25.00"),
	})

	assert.True(t, result.ShippingTaxAmount.IsZero())
}

func TestTaxService_Calculate_TaxIncluded(t *testing.T) {
	tax := services.NewTaxService()

	// Scenario: UK, rate 20%, displayed subtotal $100.00 already includes tax.
	result := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "GB"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: true, TaxShipping: false},
		TaxableBase:   dec(t, "100.00"),
		ShippingOrFee: decimal.Zero,
	})

	assert.True(t, result.IsIncluded)
	assert.Equal(t, "16.67", result.TaxAmount.Round(2).StringFixed(2))

	// Round trip: excludedBase * (1+r) == P within tolerance.
	excluded := dec(t, "100.00").Sub(result.TaxAmount)
	roundTrip := excluded.Mul(dec(t, "1.20"))
	diff := roundTrip.Sub(dec(t, "100.00")).Abs()
	assert.True(t, diff.LessThan(dec(t, "0.0000001")), "round trip diff %s", diff)
}

func TestTaxService_Calculate_TaxIncludedShipping(t *testing.T) {
	tax := services.NewTaxService()

	result := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "GB"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: true, TaxShipping: true},
		TaxableBase:   dec(t, "120.00"),
		ShippingOrFee: dec(t, "12.00"),
	})

	assert.True(t, result.TaxAmount.Equal(dec(t, "20")), "tax %s", result.TaxAmount)
	assert.True(t, result.ShippingTaxAmount.Equal(dec(t, "2")), "shipping tax %s", result.ShippingTaxAmount)
}

func TestTaxService_Calculate_ExemptCustomer(t *testing.T) {
	tax := services.NewTaxService()

	// Exemption wins over any region, mode or fee input.
	regions := []types.Address{
		{Country: "US", Province: "CA"},
		{Country: "GB"},
		{Country: "XX"},
	}
	for _, region := range regions {
		for _, included := range []bool{true, false} {
			result := tax.Calculate(services.TaxParams{
				Region:        region,
				Settings:      types.StoreTaxSettings{TaxesIncluded: included, TaxShipping: true},
				Exempt:        true,
				TaxableBase:   dec(t, "12345.67"),
				ShippingOrFee: dec(t, "99.99"),
			})

			assert.True(t, result.Exempt)
			assert.Equal(t, "Tax Exempt", result.Title)
			assert.True(t, result.Rate.IsZero())
			assert.True(t, result.TaxAmount.IsZero())
			assert.True(t, result.ShippingTaxAmount.IsZero())
		}
	}
}

func TestTaxService_TaxableBase(t *testing.T) {
	tax := services.NewTaxService()
	classifier := services.NewClassifierService()

	nonTaxable := productLine(t, "Exempt Part", "50.00", 1)
	nonTaxable.Taxable = false

	products := []types.CartLineItem{
		productLine(t, "Bracket", "10.00", 5), // 50.00
		nonTaxable,
	}
	surcharges := []types.CartLineItem{
		{Name: "Rush Order", UnitPrice: dec(t, "15.00"), Quantity: 1, Attributes: map[string]string{"Type": "Surcharge"}},
		{Name: "Handling", UnitPrice: dec(t, "5.00"), Quantity: 1, Attributes: map[string]string{"Type": "Surcharge", "Taxable": "No"}},
	}

	base := tax.TaxableBase(products, surcharges, classifier)
	assert.True(t, base.Equal(dec(t, "65.00")), "base %s", base)
}
