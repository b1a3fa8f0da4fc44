package types

import (
	"time"

	"github.com/google/uuid"
)

// Screen is one step of the checkout flow.
type Screen string

const (
	ScreenCustomer      Screen = "customer"
	ScreenLocation      Screen = "location"
	ScreenCart          Screen = "cart"
	ScreenQuantity      Screen = "quantity"
	ScreenProductDetail Screen = "product-detail"
	ScreenDelivery      Screen = "delivery"
	ScreenConfirmation  Screen = "confirmation"
)

// CheckoutSession is the full state of one in-progress wholesale order.
// Sessions are treated as values: every transition produces an updated
// copy through the checkout reducer, never an in-place mutation from
// handler code.
type CheckoutSession struct {
	ID             uuid.UUID               `json:"id"`
	Screen         Screen                  `json:"screen"`
	DetailSource   Screen                  `json:"detail_source,omitempty"`
	Customer       *Customer               `json:"customer,omitempty"`
	Location       *CompanyLocation        `json:"location,omitempty"`
	PONumber       string                  `json:"po_number,omitempty"`
	DeliveryMethod *DeliveryMethod         `json:"delivery_method,omitempty"`
	Items          []CartLineItem          `json:"items"`
	ProductItems   []CartLineItem          `json:"product_items"`
	SurchargeItems []CartLineItem          `json:"surcharge_items"`
	Rules          map[string]QuantityRule `json:"rules,omitempty"`
	StoreSettings  StoreTaxSettings        `json:"store_settings"`
	TaxExempt      bool                    `json:"tax_exempt"`
	PaymentTerms   *PaymentTerms           `json:"payment_terms,omitempty"`
	Errors         []string                `json:"errors,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
