package orders

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	httpClient "pos-api/internal/client/http"
	"pos-api/internal/services"
	"pos-api/internal/types"
)

// Client is the draft-order gateway. It implements services.OrderGateway.
type Client struct {
	httpClient *httpClient.HTTPClient
	apiKey     string
}

// NewClient creates an order gateway client. No transport-level retries:
// the only retry in the system is the payment-terms case, which the
// submission pipeline drives explicitly.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithRetryConfig(httpClient.NoRetryConfig()),
		),
		apiKey: apiKey,
	}
}

type draftOrderDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateDraftOrder submits a draft-order-create call. A gateway rejection
// caused by missing payment-terms permissions is surfaced as a
// PermissionError so the pipeline can run its documented retry.
func (c *Client) CreateDraftOrder(ctx context.Context, input services.DraftOrderInput) (*services.DraftOrder, error) {
	resp, err := c.httpClient.Post(ctx, "/draft-orders", input, httpClient.WithBearerToken(c.apiKey))
	if err != nil {
		if isPaymentTermsDenied(err) {
			return nil, &services.PermissionError{Op: "create draft order with payment terms", Err: err}
		}
		return nil, errors.Wrap(err, "draft order creation failed")
	}

	var dto draftOrderDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to process draft order response")
	}
	if dto.ID == "" || dto.Name == "" {
		return nil, &services.ParseError{Source: "draft order", Reason: "missing id or name"}
	}

	return &services.DraftOrder{ID: dto.ID, Name: dto.Name}, nil
}

type paymentTermsDTO struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	DueInDays  int    `json:"due_in_days"`
}

// GetPaymentTerms fetches the payment terms attached to a draft order.
func (c *Client) GetPaymentTerms(ctx context.Context, draftOrderID string) (*types.PaymentTerms, error) {
	resp, err := c.httpClient.Get(ctx,
		fmt.Sprintf("/draft-orders/%s/payment-terms", draftOrderID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch payment terms")
	}

	var dto paymentTermsDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to process payment terms response")
	}
	if dto.TemplateID == "" {
		return nil, nil
	}

	return &types.PaymentTerms{
		TemplateID: dto.TemplateID,
		Name:       dto.Name,
		DueInDays:  dto.DueInDays,
	}, nil
}

type completedOrderDTO struct {
	OrderID string `json:"order_id"`
}

// CompleteDraftOrder completes a draft order, turning it into an order.
func (c *Client) CompleteDraftOrder(ctx context.Context, draftOrderID string) (*services.CompletedOrder, error) {
	resp, err := c.httpClient.Put(ctx,
		fmt.Sprintf("/draft-orders/%s/complete", draftOrderID), nil,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, errors.Wrap(err, "draft order completion failed")
	}

	var dto completedOrderDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return nil, errors.Wrap(err, "failed to process completion response")
	}
	if dto.OrderID == "" {
		return nil, &services.ParseError{Source: "draft order completion", Reason: "missing order_id"}
	}

	return &services.CompletedOrder{OrderID: dto.OrderID}, nil
}

type fulfillmentDTO struct {
	Success bool `json:"success"`
}

// CreateFulfillment requests fulfillment creation for a completed order.
func (c *Client) CreateFulfillment(ctx context.Context, orderID string) (bool, error) {
	resp, err := c.httpClient.Post(ctx,
		fmt.Sprintf("/orders/%s/fulfillments", orderID), nil,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return false, errors.Wrap(err, "fulfillment creation failed")
	}

	var dto fulfillmentDTO
	if err := c.httpClient.ProcessJSONResponse(resp, &dto); err != nil {
		return false, errors.Wrap(err, "failed to process fulfillment response")
	}

	return dto.Success, nil
}

// isPaymentTermsDenied inspects a transport error for the gateway's
// payment-terms permission rejection: a 403 whose body names payment
// terms.
func isPaymentTermsDenied(err error) bool {
	var httpErr *httpClient.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	if httpErr.StatusCode != http.StatusForbidden {
		return false
	}
	return strings.Contains(strings.ToLower(httpErr.Body), "payment terms")
}
