package services

import (
	"context"

	"pos-api/internal/types"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PricingResolver supplies contract pricing and quantity rules per variant
// and company location.
type PricingResolver interface {
	FetchContextualPricing(ctx context.Context, variantID, locationID string) (*types.ContextualPricing, error)
}

// StoreGateway exposes store- and customer-level settings the checkout
// needs before pricing a cart.
type StoreGateway interface {
	FetchStoreTaxSettings(ctx context.Context) (*types.StoreTaxSettings, error)
	FetchCustomerTaxExemption(ctx context.Context, customerID string) (bool, error)
	FetchCompanyLocation(ctx context.Context, customerID string) (*types.CompanyLocation, error)
}

// DraftOrderInput is the payload sent to the order gateway when creating a
// draft order.
type DraftOrderInput struct {
	CustomerID   string                     `json:"customer_id"`
	LocationID   string                     `json:"location_id"`
	PONumber     string                     `json:"po_number"`
	LineItems    []types.DraftOrderLineItem `json:"line_items"`
	PaymentTerms *types.PaymentTerms        `json:"payment_terms,omitempty"`
	TaxExempt    bool                       `json:"tax_exempt"`
}

// DraftOrder is the gateway's record of a created draft order.
type DraftOrder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompletedOrder is the gateway's record of a completed draft order.
type CompletedOrder struct {
	OrderID string `json:"order_id"`
}

// OrderGateway is the external draft-order service the pipeline submits to.
type OrderGateway interface {
	CreateDraftOrder(ctx context.Context, input DraftOrderInput) (*DraftOrder, error)
	GetPaymentTerms(ctx context.Context, draftOrderID string) (*types.PaymentTerms, error)
	CompleteDraftOrder(ctx context.Context, draftOrderID string) (*CompletedOrder, error)
	CreateFulfillment(ctx context.Context, orderID string) (bool, error)
}
