package services

import (
	"github.com/shopspring/decimal"

	"pos-api/internal/types"
)

// TotalsService aggregates order totals. Pure and idempotent: identical
// inputs always produce identical outputs.
type TotalsService struct{}

// NewTotalsService creates a new totals calculator.
func NewTotalsService() *TotalsService {
	return &TotalsService{}
}

// Calculate builds the order totals from classified product items, the
// delivery fee, the total surcharge amount and a computed tax result.
// In tax-included mode the tax amounts are already embedded in the item
// prices and are not added again.
func (s *TotalsService) Calculate(products []types.CartLineItem, deliveryFee decimal.Decimal, surcharge decimal.Decimal, tax types.TaxResult) types.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range products {
		subtotal = subtotal.Add(item.LineTotal())
	}

	totals := types.OrderTotals{
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		Surcharge:         surcharge,
		TaxAmount:         tax.TaxAmount,
		ShippingTaxAmount: tax.ShippingTaxAmount,
	}

	final := subtotal.Add(deliveryFee).Add(surcharge)
	if !tax.IsIncluded {
		final = final.Add(tax.TaxAmount).Add(tax.ShippingTaxAmount)
	}
	totals.FinalTotal = final

	return totals
}

// SurchargeTotal sums the line totals of surcharge items.
func (s *TotalsService) SurchargeTotal(surcharges []types.CartLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range surcharges {
		total = total.Add(item.LineTotal())
	}
	return total
}
