package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	httpClient "pos-api/internal/client/http"
	"pos-api/internal/services"
	"pos-api/internal/types"
)

// Client talks to the store platform for contract pricing, store tax
// settings and customer/company data. It implements both
// services.PricingResolver and services.StoreGateway.
type Client struct {
	httpClient *httpClient.HTTPClient
	apiKey     string
}

// NewClient creates a pricing client against the given base URL.
// Collaborator calls are never retried at the transport level.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithRetryConfig(httpClient.NoRetryConfig()),
		),
		apiKey: apiKey,
	}
}

// contextualPricingDTO is the wire shape of a contextual pricing response.
type contextualPricingDTO struct {
	VariantID    string  `json:"variant_id"`
	Price        *string `json:"price"`
	QuantityRule *struct {
		Minimum   int  `json:"minimum"`
		Maximum   *int `json:"maximum,omitempty"`
		Increment *int `json:"increment,omitempty"`
	} `json:"quantity_rule,omitempty"`
	PriceBreaks []struct {
		MinimumQuantity int    `json:"minimum_quantity"`
		Price           string `json:"price"`
	} `json:"price_breaks,omitempty"`
}

// FetchContextualPricing resolves the contract price and quantity rule for
// one variant at one company location.
func (c *Client) FetchContextualPricing(ctx context.Context, variantID, locationID string) (*types.ContextualPricing, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/variants/%s/contextual-pricing", variantID),
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("location_id", locationID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contextual pricing: %w", err)
	}

	var dto contextualPricingDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return nil, fmt.Errorf("failed to process contextual pricing response: %w", err)
	}

	return dto.toDomain(variantID)
}

// toDomain validates the DTO shape and converts it. Any mismatch is a
// ParseError rather than a silently-defaulted value.
func (d *contextualPricingDTO) toDomain(variantID string) (*types.ContextualPricing, error) {
	if d.Price == nil {
		return nil, &services.ParseError{Source: "contextual pricing", Reason: "missing price"}
	}
	price, err := decimal.NewFromString(*d.Price)
	if err != nil {
		return nil, &services.ParseError{Source: "contextual pricing", Reason: fmt.Sprintf("invalid price %q", *d.Price)}
	}
	if price.IsNegative() {
		return nil, &services.ParseError{Source: "contextual pricing", Reason: "negative price"}
	}

	pricing := &types.ContextualPricing{
		VariantID: variantID,
		Price:     price,
	}

	if d.QuantityRule != nil {
		if d.QuantityRule.Minimum < 1 {
			return nil, &services.ParseError{Source: "contextual pricing", Reason: "quantity rule minimum below 1"}
		}
		pricing.QuantityRule = &types.QuantityRule{
			MinQuantity: d.QuantityRule.Minimum,
			MaxQuantity: d.QuantityRule.Maximum,
			Increment:   d.QuantityRule.Increment,
		}
	}

	for _, pb := range d.PriceBreaks {
		breakPrice, err := decimal.NewFromString(pb.Price)
		if err != nil {
			return nil, &services.ParseError{Source: "contextual pricing", Reason: fmt.Sprintf("invalid price break %q", pb.Price)}
		}
		pricing.PriceBreaks = append(pricing.PriceBreaks, types.PriceBreak{
			MinimumQuantity: pb.MinimumQuantity,
			Price:           breakPrice,
		})
	}

	return pricing, nil
}

type storeTaxSettingsDTO struct {
	TaxesIncluded *bool  `json:"taxes_included"`
	TaxShipping   *bool  `json:"tax_shipping"`
	CountryCode   string `json:"country_code"`
}

// FetchStoreTaxSettings returns the store-level tax configuration.
func (c *Client) FetchStoreTaxSettings(ctx context.Context) (*types.StoreTaxSettings, error) {
	resp, err := c.httpClient.Get(ctx, "/store/tax-settings", httpClient.WithBearerToken(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store tax settings: %w", err)
	}

	var dto storeTaxSettingsDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return nil, fmt.Errorf("failed to process store tax settings response: %w", err)
	}

	if dto.TaxesIncluded == nil || dto.TaxShipping == nil {
		return nil, &services.ParseError{Source: "store tax settings", Reason: "missing taxes_included or tax_shipping"}
	}

	return &types.StoreTaxSettings{
		TaxesIncluded: *dto.TaxesIncluded,
		TaxShipping:   *dto.TaxShipping,
		CountryCode:   dto.CountryCode,
	}, nil
}

type taxExemptionDTO struct {
	TaxExempt *bool `json:"tax_exempt"`
}

// FetchCustomerTaxExemption reports whether the customer is tax exempt.
func (c *Client) FetchCustomerTaxExemption(ctx context.Context, customerID string) (bool, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/customers/%s/tax-exemption", customerID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return false, fmt.Errorf("failed to fetch customer tax exemption: %w", err)
	}

	var dto taxExemptionDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return false, fmt.Errorf("failed to process tax exemption response: %w", err)
	}
	if dto.TaxExempt == nil {
		return false, &services.ParseError{Source: "customer tax exemption", Reason: "missing tax_exempt"}
	}

	return *dto.TaxExempt, nil
}

type companyLocationDTO struct {
	LocationID string `json:"location_id"`
	CompanyID  string `json:"company_id"`
	Name       string `json:"name"`
	Address    struct {
		Country  string `json:"country"`
		Province string `json:"province"`
	} `json:"address"`
}

// FetchCompanyLocation returns the company billing/shipping location on
// record for the customer.
func (c *Client) FetchCompanyLocation(ctx context.Context, customerID string) (*types.CompanyLocation, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/customers/%s/company-location", customerID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company location: %w", err)
	}

	var dto companyLocationDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return nil, fmt.Errorf("failed to process company location response: %w", err)
	}

	if dto.LocationID == "" || dto.CompanyID == "" {
		return nil, &services.ParseError{Source: "company location", Reason: "missing location_id or company_id"}
	}
	if dto.Address.Country == "" {
		return nil, &services.ParseError{Source: "company location", Reason: "missing address country"}
	}

	return &types.CompanyLocation{
		LocationID: dto.LocationID,
		CompanyID:  dto.CompanyID,
		Name:       dto.Name,
		Address: types.Address{
			Country:  dto.Address.Country,
			Province: dto.Address.Province,
		},
	}, nil
}
