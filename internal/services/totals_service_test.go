package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pos-api/internal/services"
	"pos-api/internal/types"
)

func TestTotalsService_Calculate_TaxExcluded(t *testing.T) {
	totals := services.NewTotalsService()
	tax := services.NewTaxService()

	products := []types.CartLineItem{
		productLine(t, "Bracket", "20.00", 5), // 100.00
	}

	taxResult := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "US", Province: "CA"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: true},
		TaxableBase:   dec(t, "100.00"),
		ShippingOrFee: dec(t, "25.00"),
	})

	got := totals.Calculate(products, dec(t, "25.00"), decimal.Zero, taxResult)

	assert.True(t, got.Subtotal.Equal(dec(t, "100.00")), "subtotal %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(dec(t, "8.75")))
	assert.True(t, got.ShippingTaxAmount.Equal(dec(t, "2.1875")))
	// $135.94 at presentation.
	assert.Equal(t, "135.94", got.FinalTotal.Round(2).StringFixed(2))
}

func TestTotalsService_Calculate_ExemptCustomer(t *testing.T) {
	totals := services.NewTotalsService()
	tax := services.NewTaxService()

	products := []types.CartLineItem{
		productLine(t, "Bracket", "20.00", 5),
	}

	taxResult := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "US", Province: "CA"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: true},
		Exempt:        true,
		TaxableBase:   dec(t, "100.00"),
		ShippingOrFee: dec(t, "25.00"),
	})

	got := totals.Calculate(products, dec(t, "25.00"), decimal.Zero, taxResult)

	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.ShippingTaxAmount.IsZero())
	assert.Equal(t, "125.00", got.FinalTotal.StringFixed(2))
}

func TestTotalsService_Calculate_TaxIncluded(t *testing.T) {
	totals := services.NewTotalsService()
	tax := services.NewTaxService()

	products := []types.CartLineItem{
		productLine(t, "Widget", "100.00", 1),
	}

	taxResult := tax.Calculate(services.TaxParams{
		Region:        types.Address{Country: "GB"},
		Settings:      types.StoreTaxSettings{TaxesIncluded: true, TaxShipping: false},
		TaxableBase:   dec(t, "100.00"),
		ShippingOrFee: decimal.Zero,
	})

	got := totals.Calculate(products, decimal.Zero, decimal.Zero, taxResult)

	// The tax portion is already embedded in the item price.
	assert.Equal(t, "16.67", got.TaxAmount.Round(2).StringFixed(2))
	assert.Equal(t, "100.00", got.FinalTotal.StringFixed(2))
}

func TestTotalsService_Calculate_Invariant(t *testing.T) {
	totals := services.NewTotalsService()

	products := []types.CartLineItem{
		productLine(t, "Bracket", "12.34", 3),
		productLine(t, "Pipe", "7.89", 7),
	}
	taxResult := types.TaxResult{
		Rate:              dec(t, "0.08"),
		TaxAmount:         dec(t, "7.38"),
		ShippingTaxAmount: dec(t, "0.80"),
	}

	got := totals.Calculate(products, dec(t, "10.00"), dec(t, "5.50"), taxResult)

	expected := got.Subtotal.Add(got.DeliveryFee).Add(got.Surcharge).Add(got.TaxAmount).Add(got.ShippingTaxAmount)
	assert.True(t, got.FinalTotal.Equal(expected), "final %s expected %s", got.FinalTotal, expected)
	assert.False(t, got.Subtotal.IsNegative())
	assert.False(t, got.FinalTotal.IsNegative())
}

func TestTotalsService_Calculate_Idempotent(t *testing.T) {
	totals := services.NewTotalsService()

	products := []types.CartLineItem{
		productLine(t, "Bracket", "19.99", 13),
	}
	taxResult := types.TaxResult{TaxAmount: dec(t, "22.74"), ShippingTaxAmount: decimal.Zero}

	first := totals.Calculate(products, dec(t, "12.00"), dec(t, "3.00"), taxResult)
	second := totals.Calculate(products, dec(t, "12.00"), dec(t, "3.00"), taxResult)

	assert.Equal(t, first, second)
}

func TestTotalsService_Calculate_ContextualPricePreferred(t *testing.T) {
	totals := services.NewTotalsService()

	item := productLine(t, "Bracket", "20.00", 5)
	contract := dec(t, "17.50")
	item.ContextualPrice = &contract

	got := totals.Calculate([]types.CartLineItem{item}, decimal.Zero, decimal.Zero, types.TaxResult{})

	assert.True(t, got.Subtotal.Equal(dec(t, "87.50")), "subtotal %s", got.Subtotal)
}

func TestTotalsService_SurchargeTotal(t *testing.T) {
	totals := services.NewTotalsService()

	surcharges := []types.CartLineItem{
		{Name: "Rush Order", UnitPrice: dec(t, "15.00"), Quantity: 1},
		{Name: "Handling", UnitPrice: dec(t, "5.25"), Quantity: 2},
	}

	got := totals.SurchargeTotal(surcharges)
	assert.True(t, got.Equal(dec(t, "25.50")), "surcharge total %s", got)
}
