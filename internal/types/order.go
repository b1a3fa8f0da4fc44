package types

import (
	"github.com/shopspring/decimal"
)

// CartLineItem is a single line in the active cart. Cart lines are replaced
// wholesale whenever pricing is refreshed for a new company location.
type CartLineItem struct {
	ProductID       string            `json:"product_id"`
	VariantID       string            `json:"variant_id"`
	Name            string            `json:"name"`
	SKU             string            `json:"sku"`
	Quantity        int               `json:"quantity"`
	UnitPrice       decimal.Decimal   `json:"unit_price"`
	ContextualPrice *decimal.Decimal  `json:"contextual_price,omitempty"`
	Taxable         bool              `json:"taxable"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// EffectivePrice returns the contextual (contract) price when one was
// resolved for the selected location, falling back to the base unit price.
func (i CartLineItem) EffectivePrice() decimal.Decimal {
	if i.ContextualPrice != nil {
		return *i.ContextualPrice
	}
	return i.UnitPrice
}

// LineTotal is EffectivePrice multiplied by quantity.
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TaxResult is derived from the cart, location, exemption flag and store
// settings. It is recomputed whenever any of those inputs change and is
// never stored independently of them.
type TaxResult struct {
	Rate              decimal.Decimal `json:"rate"`
	Title             string          `json:"title"`
	IsIncluded        bool            `json:"is_included"`
	ShippingTaxable   bool            `json:"shipping_taxable"`
	Exempt            bool            `json:"exempt"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	ShippingTaxAmount decimal.Decimal `json:"shipping_tax_amount"`
}

// OrderTotals aggregates the money fields of an order.
//
// Invariant: FinalTotal == Subtotal + DeliveryFee + Surcharge
// + (IsIncluded ? 0 : TaxAmount + ShippingTaxAmount), all fields >= 0.
type OrderTotals struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	Surcharge         decimal.Decimal `json:"surcharge"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	ShippingTaxAmount decimal.Decimal `json:"shipping_tax_amount"`
	FinalTotal        decimal.Decimal `json:"final_total"`
}

// Attribute is a single key/value pair on a draft order line item. The key
// vocabulary is closed per line kind and validated at assembly time.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DraftOrderLineItem is the wire shape submitted to the order gateway.
type DraftOrderLineItem struct {
	Title      string          `json:"title"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	Attributes []Attribute     `json:"attributes"`
}

// LineKind identifies which attribute vocabulary a draft line must carry.
type LineKind string

const (
	LineKindProduct     LineKind = "product"
	LineKindSurcharge   LineKind = "surcharge"
	LineKindDelivery    LineKind = "delivery"
	LineKindTax         LineKind = "tax"
	LineKindShippingTax LineKind = "shipping_tax"
)

// FulfillmentOutcome reports how far the post-creation steps of a
// submission got.
type FulfillmentOutcome string

const (
	FulfillmentSucceeded FulfillmentOutcome = "success"
	FulfillmentPartial   FulfillmentOutcome = "partial"
	FulfillmentFailed    FulfillmentOutcome = "failed"
)

// SubmissionResult is returned by the submission pipeline. CompletedOrderID
// is empty when the draft order could not be completed and was left in
// draft state.
type SubmissionResult struct {
	DraftOrderID     string             `json:"draft_order_id"`
	OrderName        string             `json:"order_name"`
	CompletedOrderID string             `json:"completed_order_id,omitempty"`
	Fulfillment      FulfillmentOutcome `json:"fulfillment"`
	Notes            []string           `json:"notes,omitempty"`
}
