package services_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"pos-api/internal/types"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// productLine builds a taxable product cart line priced at the base price.
func productLine(t *testing.T, name, price string, quantity int) types.CartLineItem {
	t.Helper()
	return types.CartLineItem{
		ProductID: "prod-" + name,
		VariantID: "var-" + name,
		Name:      name,
		SKU:       "SKU-" + name,
		Quantity:  quantity,
		UnitPrice: dec(t, price),
		Taxable:   true,
	}
}
