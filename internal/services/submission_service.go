package services

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"pos-api/internal/logger"
	"pos-api/internal/types"
)

var poNumberPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)

// SubmissionService drives draft-order creation, the payment-terms retry,
// completion and fulfillment against the order gateway.
type SubmissionService struct {
	assembler *AssemblerService
	quantity  *QuantityService
	gateway   OrderGateway
	logger    *zap.Logger
}

// NewSubmissionService creates a new submission pipeline.
func NewSubmissionService(assembler *AssemblerService, quantity *QuantityService, gateway OrderGateway) *SubmissionService {
	return &SubmissionService{
		assembler: assembler,
		quantity:  quantity,
		gateway:   gateway,
		logger:    logger.Log,
	}
}

// Submit runs the full pipeline for a session snapshot. Creation failures
// are fatal for the attempt; completion and fulfillment are best-effort
// and never roll back an already-created order. The session itself is left
// untouched so a failed attempt can simply be retried.
func (s *SubmissionService) Submit(ctx context.Context, snapshot Snapshot) (*types.SubmissionResult, error) {
	session := snapshot.Session

	if err := s.checkPreconditions(session); err != nil {
		return nil, err
	}

	lines, err := s.assembler.Assemble(session, snapshot.Totals, snapshot.Tax)
	if err != nil {
		return nil, err
	}

	input := DraftOrderInput{
		CustomerID:   session.Customer.CustomerID,
		LocationID:   session.Location.LocationID,
		PONumber:     session.PONumber,
		LineItems:    lines,
		PaymentTerms: session.PaymentTerms,
		TaxExempt:    session.TaxExempt,
	}

	draft, err := s.createWithPaymentTermsRetry(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &types.SubmissionResult{
		DraftOrderID: draft.ID,
		OrderName:    draft.Name,
		Fulfillment:  types.FulfillmentFailed,
	}

	// Best-effort: surface the terms actually attached by the gateway.
	if terms, err := s.gateway.GetPaymentTerms(ctx, draft.ID); err != nil {
		s.log().Warn("could not fetch payment terms for created order",
			zap.String("draft_order_id", draft.ID), zap.Error(err))
	} else if terms != nil {
		result.Notes = append(result.Notes, fmt.Sprintf("payment terms: %s", terms.Name))
	}

	completed, err := s.gateway.CompleteDraftOrder(ctx, draft.ID)
	if err != nil {
		// The order stays in draft state; reported, not fatal.
		s.log().Warn("draft order left uncompleted",
			zap.String("draft_order_id", draft.ID), zap.Error(err))
		result.Fulfillment = types.FulfillmentPartial
		result.Notes = append(result.Notes, "order was created but could not be completed and remains in draft state")
		return result, nil
	}
	result.CompletedOrderID = completed.OrderID

	ok, err := s.gateway.CreateFulfillment(ctx, completed.OrderID)
	if err != nil || !ok {
		pf := &PartialFailureError{Step: "fulfillment", Err: err}
		s.log().Warn("fulfillment creation failed",
			zap.String("order_id", completed.OrderID), zap.Error(pf))
		result.Fulfillment = types.FulfillmentPartial
		result.Notes = append(result.Notes, pf.Error())
		return result, nil
	}

	result.Fulfillment = types.FulfillmentSucceeded
	return result, nil
}

// createWithPaymentTermsRetry creates the draft order. The one documented
// retry: a payment-terms permission rejection is retried once without
// payment terms; if that retry also fails the error is demoted to a
// NetworkError. Any other creation failure is fatal.
func (s *SubmissionService) createWithPaymentTermsRetry(ctx context.Context, input DraftOrderInput) (*DraftOrder, error) {
	draft, err := s.gateway.CreateDraftOrder(ctx, input)
	if err == nil {
		return draft, nil
	}

	if input.PaymentTerms != nil && IsPermission(err) {
		s.log().Warn("payment terms denied, retrying draft order without them", zap.Error(err))
		retry := input
		retry.PaymentTerms = nil
		draft, retryErr := s.gateway.CreateDraftOrder(ctx, retry)
		if retryErr != nil {
			return nil, &NetworkError{Op: "create draft order", Err: retryErr}
		}
		return draft, nil
	}

	if _, ok := err.(*NetworkError); ok {
		return nil, err
	}
	return nil, &NetworkError{Op: "create draft order", Err: err}
}

// checkPreconditions enforces the submission gates: customer and location
// selected, a well-formed PO number and satisfied quantity rules.
func (s *SubmissionService) checkPreconditions(session types.CheckoutSession) error {
	if session.Customer == nil {
		return &ValidationError{Field: "customer", Message: "no customer selected"}
	}
	if session.Location == nil {
		return &ValidationError{Field: "location", Message: "no company location selected"}
	}
	if !poNumberPattern.MatchString(session.PONumber) {
		return &ValidationError{Field: "po_number", Message: "PO number must be 3-20 alphanumeric characters"}
	}
	if v := s.quantity.Validate(session.ProductItems, session.Rules); !v.IsValid {
		return &ValidationError{Field: "quantity", Message: fmt.Sprintf("quantity rules are not satisfied: %v", v.Errors)}
	}
	return nil
}

func (s *SubmissionService) log() *zap.Logger {
	if s.logger != nil {
		return s.logger
	}
	return zap.NewNop()
}
