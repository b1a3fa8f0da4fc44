package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-api/internal/logger"
	"pos-api/internal/types"
)

// ActionType enumerates the checkout reducer actions.
type ActionType string

const (
	ActionSelectCustomer ActionType = "select_customer"
	ActionSelectLocation ActionType = "select_location"
	ActionReplaceCart    ActionType = "replace_cart"
	ActionSetPONumber    ActionType = "set_po_number"
	ActionSetDelivery    ActionType = "set_delivery"
	ActionNext           ActionType = "next"
	ActionBack           ActionType = "back"
	ActionOpenDetail     ActionType = "open_detail"
	ActionCloseDetail    ActionType = "close_detail"
	ActionReset          ActionType = "reset"
)

// Action is one input to the checkout reducer. Only the fields relevant to
// its Type are read.
type Action struct {
	Type         ActionType
	Customer     *types.Customer
	TaxExempt    bool
	Settings     *types.StoreTaxSettings
	Location     *types.CompanyLocation
	Items        []types.CartLineItem
	Rules        map[string]types.QuantityRule
	PONumber     string
	Delivery     *types.DeliveryMethod
	PaymentTerms *types.PaymentTerms
}

// Snapshot is the fully derived view of a session: classified items plus
// recomputed tax and totals. It is built on demand and never cached apart
// from its inputs.
type Snapshot struct {
	Session    types.CheckoutSession `json:"session"`
	Tax        types.TaxResult       `json:"tax"`
	Totals     types.OrderTotals     `json:"totals"`
	Validation ValidationResult      `json:"validation"`
}

// CheckoutService owns the live checkout sessions and sequences the
// checkout screens. All transitions run through the reducer; handlers
// never mutate a session directly.
type CheckoutService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]types.CheckoutSession

	classifier *ClassifierService
	quantity   *QuantityService
	tax        *TaxService
	totals     *TotalsService
	pricing    PricingResolver
	store      StoreGateway
	logger     *zap.Logger
}

// NewCheckoutService creates the checkout service with its collaborators.
func NewCheckoutService(
	classifier *ClassifierService,
	quantity *QuantityService,
	tax *TaxService,
	totals *TotalsService,
	pricing PricingResolver,
	store StoreGateway,
) *CheckoutService {
	return &CheckoutService{
		sessions:   make(map[uuid.UUID]types.CheckoutSession),
		classifier: classifier,
		quantity:   quantity,
		tax:        tax,
		totals:     totals,
		pricing:    pricing,
		store:      store,
		logger:     logger.Log,
	}
}

// CreateSession starts a new checkout session on the customer screen.
func (s *CheckoutService) CreateSession(ctx context.Context) (types.CheckoutSession, error) {
	settings, err := s.store.FetchStoreTaxSettings(ctx)
	if err != nil {
		return types.CheckoutSession{}, &NetworkError{Op: "fetch store tax settings", Err: err}
	}

	now := time.Now().UTC()
	session := types.CheckoutSession{
		ID:            uuid.New(),
		Screen:        types.ScreenCustomer,
		StoreSettings: *settings,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("checkout session created", zap.String("session_id", session.ID.String()))
	}
	return session, nil
}

// GetSession returns the stored session by ID.
func (s *CheckoutService) GetSession(id uuid.UUID) (types.CheckoutSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// SelectCustomer resolves the customer's tax exemption, stores the
// customer on the session and leaves the screen untouched; advancing is a
// separate Next action.
func (s *CheckoutService) SelectCustomer(ctx context.Context, id uuid.UUID, customer types.Customer) (types.CheckoutSession, error) {
	exempt, err := s.store.FetchCustomerTaxExemption(ctx, customer.CustomerID)
	if err != nil {
		return types.CheckoutSession{}, &NetworkError{Op: "fetch customer tax exemption", Err: err}
	}

	return s.dispatch(id, Action{Type: ActionSelectCustomer, Customer: &customer, TaxExempt: exempt})
}

// CompanyLocation fetches the company location on record for the
// session's customer.
func (s *CheckoutService) CompanyLocation(ctx context.Context, id uuid.UUID) (*types.CompanyLocation, error) {
	session, ok := s.GetSession(id)
	if !ok {
		return nil, &ValidationError{Field: "session", Message: "session not found"}
	}
	if session.Customer == nil {
		return nil, &ValidationError{Field: "customer", Message: "no customer selected"}
	}

	location, err := s.store.FetchCompanyLocation(ctx, session.Customer.CustomerID)
	if err != nil {
		return nil, &NetworkError{Op: "fetch company location", Err: err}
	}
	return location, nil
}

// SelectLocation stores the chosen company location on the session.
func (s *CheckoutService) SelectLocation(id uuid.UUID, location types.CompanyLocation) (types.CheckoutSession, error) {
	return s.dispatch(id, Action{Type: ActionSelectLocation, Location: &location})
}

// ReplaceCart swaps the cart wholesale, re-prices every line against the
// selected location's contract pricing and reclassifies the items.
// Pricing failures for individual lines fall back to the base price; the
// quantity rules that were resolved are kept for validation.
func (s *CheckoutService) ReplaceCart(ctx context.Context, id uuid.UUID, items []types.CartLineItem) (types.CheckoutSession, error) {
	session, ok := s.GetSession(id)
	if !ok {
		return types.CheckoutSession{}, &ValidationError{Field: "session", Message: "session not found"}
	}
	if session.Location == nil {
		return types.CheckoutSession{}, &ValidationError{Field: "location", Message: "no company location selected"}
	}

	rules := make(map[string]types.QuantityRule)
	priced := make([]types.CartLineItem, len(items))
	for i, item := range items {
		if item.Quantity < 0 {
			return types.CheckoutSession{}, &ValidationError{
				Field:   "quantity",
				Message: fmt.Sprintf("%s: quantity must not be negative", item.Name),
			}
		}
		if item.UnitPrice.IsNegative() {
			return types.CheckoutSession{}, &ValidationError{
				Field:   "unit_price",
				Message: fmt.Sprintf("%s: unit price must not be negative", item.Name),
			}
		}

		priced[i] = item
		pricing, err := s.pricing.FetchContextualPricing(ctx, item.VariantID, session.Location.LocationID)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("contextual pricing unavailable, using base price",
					zap.String("variant_id", item.VariantID),
					zap.Error(err))
			}
			continue
		}

		price := pricing.Price
		if rule := pricing.QuantityRule; rule != nil {
			rule.ProductID = item.ProductID
			if len(pricing.PriceBreaks) > 0 {
				rule.PriceBreaks = pricing.PriceBreaks
			}
			rules[item.ProductID] = *rule
			if pb, ok := s.quantity.BreakPrice(*rule, item.Quantity); ok {
				price = pb.Price
			}
		}
		priced[i].ContextualPrice = &price
	}

	return s.dispatch(id, Action{Type: ActionReplaceCart, Items: priced, Rules: rules})
}

// SetPONumber stores the purchase-order reference on the session.
func (s *CheckoutService) SetPONumber(id uuid.UUID, po string) (types.CheckoutSession, error) {
	return s.dispatch(id, Action{Type: ActionSetPONumber, PONumber: po})
}

// SetDelivery stores the delivery method and fee on the session.
func (s *CheckoutService) SetDelivery(id uuid.UUID, method types.DeliveryMethod) (types.CheckoutSession, error) {
	return s.dispatch(id, Action{Type: ActionSetDelivery, Delivery: &method})
}

// Apply dispatches a pure navigation action (next/back/detail/reset).
func (s *CheckoutService) Apply(id uuid.UUID, action Action) (types.CheckoutSession, error) {
	return s.dispatch(id, action)
}

// dispatch loads the session, runs the reducer and stores the result.
// Store access is serialized; a session is only ever advanced by one
// transition at a time.
func (s *CheckoutService) dispatch(id uuid.UUID, action Action) (types.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return types.CheckoutSession{}, &ValidationError{Field: "session", Message: "session not found"}
	}

	next, err := s.Reduce(session, action)
	if err != nil {
		return types.CheckoutSession{}, err
	}

	next.UpdatedAt = time.Now().UTC()
	s.sessions[id] = next
	return next, nil
}

// Reduce is the checkout state transition function. It is pure: it reads
// the session value and the action and returns the next session value.
func (s *CheckoutService) Reduce(session types.CheckoutSession, action Action) (types.CheckoutSession, error) {
	switch action.Type {
	case ActionSelectCustomer:
		if action.Customer == nil {
			return session, &ValidationError{Field: "customer", Message: "customer is required"}
		}
		session.Customer = action.Customer
		session.TaxExempt = action.TaxExempt
		// A new customer invalidates everything downstream.
		session.Location = nil
		session.Items = nil
		session.ProductItems = nil
		session.SurchargeItems = nil
		session.Rules = nil
		session.PONumber = ""
		session.DeliveryMethod = nil
		if action.Settings != nil {
			session.StoreSettings = *action.Settings
		}
		return session, nil

	case ActionSelectLocation:
		if action.Location == nil {
			return session, &ValidationError{Field: "location", Message: "location is required"}
		}
		session.Location = action.Location
		// Contract pricing is location-specific; the cart must be re-priced.
		session.Items = nil
		session.ProductItems = nil
		session.SurchargeItems = nil
		session.Rules = nil
		return session, nil

	case ActionReplaceCart:
		session.Items = action.Items
		session.ProductItems, session.SurchargeItems = s.classifier.Split(action.Items)
		session.Rules = action.Rules
		return session, nil

	case ActionSetPONumber:
		session.PONumber = action.PONumber
		return session, nil

	case ActionSetDelivery:
		if action.Delivery == nil {
			return session, &ValidationError{Field: "delivery", Message: "delivery method is required"}
		}
		if action.Delivery.Fee.IsNegative() {
			return session, &ValidationError{Field: "delivery", Message: "delivery fee must not be negative"}
		}
		session.DeliveryMethod = action.Delivery
		return session, nil

	case ActionNext:
		return s.advance(session)

	case ActionBack:
		return s.retreat(session)

	case ActionOpenDetail:
		if session.Screen != types.ScreenCart && session.Screen != types.ScreenQuantity {
			return session, &ValidationError{Field: "screen", Message: "product detail is only reachable from the cart or quantity screens"}
		}
		session.DetailSource = session.Screen
		session.Screen = types.ScreenProductDetail
		return session, nil

	case ActionCloseDetail:
		if session.Screen != types.ScreenProductDetail {
			return session, &ValidationError{Field: "screen", Message: "no product detail open"}
		}
		session.Screen = session.DetailSource
		session.DetailSource = ""
		return session, nil

	case ActionReset:
		return types.CheckoutSession{
			ID:            session.ID,
			Screen:        types.ScreenCustomer,
			StoreSettings: session.StoreSettings,
			CreatedAt:     session.CreatedAt,
		}, nil

	default:
		return session, &ValidationError{Field: "action", Message: fmt.Sprintf("unknown action %q", action.Type)}
	}
}

// advance implements the forward transition table. No transition may skip
// an unmet validation gate.
func (s *CheckoutService) advance(session types.CheckoutSession) (types.CheckoutSession, error) {
	switch session.Screen {
	case types.ScreenCustomer:
		if session.Customer == nil {
			return session, &ValidationError{Field: "customer", Message: "select a customer before continuing"}
		}
		session.Screen = types.ScreenLocation

	case types.ScreenLocation:
		if session.Location == nil {
			return session, &ValidationError{Field: "location", Message: "select a company location before continuing"}
		}
		session.Screen = types.ScreenCart

	case types.ScreenCart:
		if len(session.Items) == 0 {
			return session, &ValidationError{Field: "cart", Message: "the cart is empty"}
		}
		if v := s.quantity.Validate(session.ProductItems, session.Rules); !v.IsValid {
			session.Errors = v.Errors
			session.Screen = types.ScreenQuantity
		} else {
			session.Errors = nil
			session.Screen = types.ScreenDelivery
		}

	case types.ScreenQuantity:
		v := s.quantity.Validate(session.ProductItems, session.Rules)
		if !v.IsValid {
			session.Errors = v.Errors
			return session, &ValidationError{Field: "quantity", Message: "quantity rules are not satisfied"}
		}
		session.Errors = nil
		session.Screen = types.ScreenDelivery

	case types.ScreenDelivery:
		if session.DeliveryMethod == nil {
			return session, &ValidationError{Field: "delivery", Message: "choose a delivery method before continuing"}
		}
		session.Screen = types.ScreenConfirmation

	case types.ScreenProductDetail:
		return session, &ValidationError{Field: "screen", Message: "close the product detail before continuing"}

	case types.ScreenConfirmation:
		return session, &ValidationError{Field: "screen", Message: "the order is confirmed; reset to start a new one"}
	}

	return session, nil
}

// retreat mirrors the forward table.
func (s *CheckoutService) retreat(session types.CheckoutSession) (types.CheckoutSession, error) {
	switch session.Screen {
	case types.ScreenCustomer:
		return session, &ValidationError{Field: "screen", Message: "already at the first screen"}
	case types.ScreenLocation:
		session.Screen = types.ScreenCustomer
	case types.ScreenCart:
		session.Screen = types.ScreenLocation
	case types.ScreenQuantity:
		session.Screen = types.ScreenCart
	case types.ScreenDelivery:
		if v := s.quantity.Validate(session.ProductItems, session.Rules); !v.IsValid {
			session.Errors = v.Errors
			session.Screen = types.ScreenQuantity
		} else {
			session.Screen = types.ScreenCart
		}
	case types.ScreenProductDetail:
		session.Screen = session.DetailSource
		session.DetailSource = ""
	case types.ScreenConfirmation:
		session.Screen = types.ScreenDelivery
	}
	return session, nil
}

// Derive recomputes the full snapshot for a session: validation, tax and
// totals. Derived values are a pure function of the session.
func (s *CheckoutService) Derive(session types.CheckoutSession) Snapshot {
	validation := s.quantity.Validate(session.ProductItems, session.Rules)

	deliveryFee := decimal.Zero
	feeTaxable := false
	if session.DeliveryMethod != nil {
		deliveryFee = session.DeliveryMethod.Fee
		feeTaxable = session.DeliveryMethod.Taxable
	}

	region := types.Address{}
	if session.Location != nil {
		region = session.Location.Address
	}

	settings := session.StoreSettings
	// The shipping-tax gate combines the store setting with the selected
	// method's own taxable flag.
	settings.TaxShipping = settings.TaxShipping && (session.DeliveryMethod == nil || feeTaxable)

	tax := s.tax.Calculate(TaxParams{
		Region:        region,
		Settings:      settings,
		Exempt:        session.TaxExempt,
		TaxableBase:   s.tax.TaxableBase(session.ProductItems, session.SurchargeItems, s.classifier),
		ShippingOrFee: deliveryFee,
	})

	totals := s.totals.Calculate(
		session.ProductItems,
		deliveryFee,
		s.totals.SurchargeTotal(session.SurchargeItems),
		tax,
	)

	return Snapshot{Session: session, Tax: tax, Totals: totals, Validation: validation}
}

// RemoveSession discards a session after a confirmed submission.
func (s *CheckoutService) RemoveSession(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
