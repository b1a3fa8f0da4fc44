package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos-api/internal/services"
	"pos-api/internal/types"
)

// CheckoutHandler handles checkout session operations
type CheckoutHandler struct {
	common *CommonServices
}

// NewCheckoutHandler creates a new CheckoutHandler instance
func NewCheckoutHandler(common *CommonServices) *CheckoutHandler {
	return &CheckoutHandler{common: common}
}

// SelectCustomerRequest is the body for selecting the order's customer
type SelectCustomerRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email"`
}

// SelectLocationRequest is the body for selecting a company location
type SelectLocationRequest struct {
	LocationID string `json:"location_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Name       string `json:"name"`
	Country    string `json:"country" binding:"required"`
	Province   string `json:"province"`
}

// CartItemRequest is one cart line in a cart replacement
type CartItemRequest struct {
	ProductID  string            `json:"product_id" binding:"required"`
	VariantID  string            `json:"variant_id" binding:"required"`
	Name       string            `json:"name" binding:"required"`
	SKU        string            `json:"sku"`
	Quantity   int               `json:"quantity"`
	UnitPrice  decimal.Decimal   `json:"unit_price"`
	Taxable    *bool             `json:"taxable"`
	Attributes map[string]string `json:"attributes"`
}

// ReplaceCartRequest replaces the cart wholesale
type ReplaceCartRequest struct {
	Items []CartItemRequest `json:"items" binding:"required"`
}

// SetPONumberRequest sets the purchase-order reference
type SetPONumberRequest struct {
	PONumber string `json:"po_number" binding:"required"`
}

// SetDeliveryRequest sets the delivery method and fee
type SetDeliveryRequest struct {
	Name    string          `json:"name" binding:"required"`
	Fee     decimal.Decimal `json:"fee"`
	Taxable bool            `json:"taxable"`
}

// ProductDetailRequest opens or closes the product detail view
type ProductDetailRequest struct {
	Action string `json:"action" binding:"required,oneof=open close"`
}

// CreateSession starts a new checkout session on the customer screen.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	session, err := h.common.checkout.CreateSession(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, h.common.checkout.Derive(session))
}

// GetSession returns the derived snapshot of a session.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, found := h.common.checkout.GetSession(id)
	if !found {
		sendError(c, http.StatusNotFound, "Session not found", nil)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// SelectCustomer sets the customer and resolves their tax exemption.
func (h *CheckoutHandler) SelectCustomer(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := h.common.checkout.SelectCustomer(c.Request.Context(), id, types.Customer{
		CustomerID:  req.CustomerID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// GetCompanyLocation returns the company location on record for the
// session's customer.
func (h *CheckoutHandler) GetCompanyLocation(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	location, err := h.common.checkout.CompanyLocation(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, location)
}

// SelectLocation sets the company billing/shipping location.
func (h *CheckoutHandler) SelectLocation(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := h.common.checkout.SelectLocation(id, types.CompanyLocation{
		LocationID: req.LocationID,
		CompanyID:  req.CompanyID,
		Name:       req.Name,
		Address:    types.Address{Country: req.Country, Province: req.Province},
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// ReplaceCart replaces the cart and re-prices it for the selected location.
func (h *CheckoutHandler) ReplaceCart(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req ReplaceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	items := make([]types.CartLineItem, len(req.Items))
	for i, item := range req.Items {
		taxable := true
		if item.Taxable != nil {
			taxable = *item.Taxable
		}
		items[i] = types.CartLineItem{
			ProductID:  item.ProductID,
			VariantID:  item.VariantID,
			Name:       item.Name,
			SKU:        item.SKU,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Taxable:    taxable,
			Attributes: item.Attributes,
		}
	}

	session, err := h.common.checkout.ReplaceCart(c.Request.Context(), id, items)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// SetPONumber stores the purchase-order reference.
func (h *CheckoutHandler) SetPONumber(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SetPONumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := h.common.checkout.SetPONumber(id, req.PONumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// SetDelivery stores the delivery method and fee.
func (h *CheckoutHandler) SetDelivery(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SetDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := h.common.checkout.SetDelivery(id, types.DeliveryMethod{
		Name:    req.Name,
		Fee:     req.Fee,
		Taxable: req.Taxable,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// Next advances the checkout one screen forward.
func (h *CheckoutHandler) Next(c *gin.Context) {
	h.navigate(c, services.ActionNext)
}

// Back moves the checkout one screen backward.
func (h *CheckoutHandler) Back(c *gin.Context) {
	h.navigate(c, services.ActionBack)
}

// Reset discards the session state and returns to the customer screen.
func (h *CheckoutHandler) Reset(c *gin.Context) {
	h.navigate(c, services.ActionReset)
}

// ProductDetail opens or closes the product detail view, remembering the
// originating screen.
func (h *CheckoutHandler) ProductDetail(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req ProductDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	action := services.ActionOpenDetail
	if req.Action == "close" {
		action = services.ActionCloseDetail
	}

	session, err := h.common.checkout.Apply(id, services.Action{Type: action})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

// RemoveSession discards an in-progress session without submitting it.
func (h *CheckoutHandler) RemoveSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if _, found := h.common.checkout.GetSession(id); !found {
		sendError(c, http.StatusNotFound, "Session not found", nil)
		return
	}

	h.common.checkout.RemoveSession(id)
	sendSuccessMessage(c, http.StatusOK, "Session removed")
}

// Submit runs the submission pipeline for the session.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, found := h.common.checkout.GetSession(id)
	if !found {
		sendError(c, http.StatusNotFound, "Session not found", nil)
		return
	}

	snapshot := h.common.checkout.Derive(session)
	result, err := h.common.submission.Submit(c.Request.Context(), snapshot)
	if err != nil {
		// The session stays intact so the operator can correct and retry.
		handleServiceError(c, err)
		return
	}

	h.common.checkout.RemoveSession(id)
	sendSuccess(c, http.StatusOK, result)
}

func (h *CheckoutHandler) navigate(c *gin.Context, action services.ActionType) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.common.checkout.Apply(id, services.Action{Type: action})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, h.common.checkout.Derive(session))
}

func (h *CheckoutHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return uuid.Nil, false
	}
	return id, true
}
