package types

import (
	"github.com/shopspring/decimal"
)

// PriceBreak is a quantity threshold at which the contract unit price
// changes. Breaks are ordered by ascending MinimumQuantity.
type PriceBreak struct {
	MinimumQuantity int             `json:"minimum_quantity"`
	Price           decimal.Decimal `json:"price"`
}

// QuantityRule constrains how many units of a product may be ordered.
// Supplied per product by the pricing resolver and immutable for the
// lifetime of a checkout session.
type QuantityRule struct {
	ProductID   string       `json:"product_id"`
	MinQuantity int          `json:"min_quantity"`
	MaxQuantity *int         `json:"max_quantity,omitempty"`
	Increment   *int         `json:"increment,omitempty"`
	PriceBreaks []PriceBreak `json:"price_breaks,omitempty"`
}

// ContextualPricing is the contract pricing for one variant at one company
// location.
type ContextualPricing struct {
	VariantID    string          `json:"variant_id"`
	Price        decimal.Decimal `json:"price"`
	QuantityRule *QuantityRule   `json:"quantity_rule,omitempty"`
	PriceBreaks  []PriceBreak    `json:"price_breaks,omitempty"`
}

// StoreTaxSettings mirrors the store-level tax configuration.
type StoreTaxSettings struct {
	TaxesIncluded bool   `json:"taxes_included"`
	TaxShipping   bool   `json:"tax_shipping"`
	CountryCode   string `json:"country_code"`
}

// TaxRegionRate is one row of the static region tax table.
type TaxRegionRate struct {
	Country  string          `json:"country"`
	Province string          `json:"province"`
	Rate     decimal.Decimal `json:"rate"`
	Title    string          `json:"title"`
}

// Address carries the fields tax resolution needs.
type Address struct {
	Country  string `json:"country"`
	Province string `json:"province"`
}

// CompanyLocation is a company billing/shipping location selected for the
// order.
type CompanyLocation struct {
	LocationID string  `json:"location_id"`
	CompanyID  string  `json:"company_id"`
	Name       string  `json:"name,omitempty"`
	Address    Address `json:"address"`
}

// Customer is the company customer placing the order.
type Customer struct {
	CustomerID  string `json:"customer_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
}

// DeliveryMethod is the operator-selected delivery option and its fee.
type DeliveryMethod struct {
	Name    string          `json:"name"`
	Fee     decimal.Decimal `json:"fee"`
	Taxable bool            `json:"taxable"`
}

// PaymentTerms describes net payment terms requested on a draft order.
type PaymentTerms struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name,omitempty"`
	DueInDays  int    `json:"due_in_days,omitempty"`
}
