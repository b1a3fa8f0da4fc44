package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pos-api/internal/mocks"
	"pos-api/internal/services"
	"pos-api/internal/types"
)

func newCheckoutService(pricing services.PricingResolver, store services.StoreGateway) *services.CheckoutService {
	return services.NewCheckoutService(
		services.NewClassifierService(),
		services.NewQuantityService(),
		services.NewTaxService(),
		services.NewTotalsService(),
		pricing,
		store,
	)
}

func sessionOn(t *testing.T, screen types.Screen) types.CheckoutSession {
	t.Helper()
	return types.CheckoutSession{
		Screen:   screen,
		Customer: &types.Customer{CustomerID: "cust-1", DisplayName: "Acme"},
		Location: &types.CompanyLocation{LocationID: "loc-1", CompanyID: "co-1", Address: types.Address{Country: "US", Province: "CA"}},
		Items:    []types.CartLineItem{productLine(t, "Bracket", "10.00", 5)},
		ProductItems: []types.CartLineItem{
			productLine(t, "Bracket", "10.00", 5),
		},
		StoreSettings: types.StoreTaxSettings{CountryCode: "US"},
	}
}

func TestCheckoutService_Reduce_ForwardTransitions(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	tests := []struct {
		name       string
		session    types.CheckoutSession
		wantScreen types.Screen
		wantErr    bool
	}{
		{
			name:       "customer to location",
			session:    sessionOn(t, types.ScreenCustomer),
			wantScreen: types.ScreenLocation,
		},
		{
			name:       "location to cart",
			session:    sessionOn(t, types.ScreenLocation),
			wantScreen: types.ScreenCart,
		},
		{
			name:       "cart to delivery when quantities valid",
			session:    sessionOn(t, types.ScreenCart),
			wantScreen: types.ScreenDelivery,
		},
		{
			name: "customer screen requires a customer",
			session: func() types.CheckoutSession {
				s := sessionOn(t, types.ScreenCustomer)
				s.Customer = nil
				return s
			}(),
			wantErr: true,
		},
		{
			name: "cart requires items",
			session: func() types.CheckoutSession {
				s := sessionOn(t, types.ScreenCart)
				s.Items = nil
				return s
			}(),
			wantErr: true,
		},
		{
			name: "confirmation is terminal",
			session: func() types.CheckoutSession {
				s := sessionOn(t, types.ScreenConfirmation)
				return s
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := checkout.Reduce(tt.session, services.Action{Type: services.ActionNext})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScreen, next.Screen)
		})
	}
}

func TestCheckoutService_Reduce_QuantityGate(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	session := sessionOn(t, types.ScreenCart)
	session.Rules = map[string]types.QuantityRule{
		session.ProductItems[0].ProductID: {ProductID: session.ProductItems[0].ProductID, MinQuantity: 10},
	}

	// cart -> quantity while the rule is violated; delivery is never skipped to.
	next, err := checkout.Reduce(session, services.Action{Type: services.ActionNext})
	require.NoError(t, err)
	assert.Equal(t, types.ScreenQuantity, next.Screen)
	assert.NotEmpty(t, next.Errors)

	// Still violated: quantity screen refuses to advance.
	_, err = checkout.Reduce(next, services.Action{Type: services.ActionNext})
	assert.Error(t, err)

	// Fix the quantity; quantity -> delivery.
	next.ProductItems[0].Quantity = 10
	advanced, err := checkout.Reduce(next, services.Action{Type: services.ActionNext})
	require.NoError(t, err)
	assert.Equal(t, types.ScreenDelivery, advanced.Screen)
	assert.Empty(t, advanced.Errors)
}

func TestCheckoutService_Reduce_BackwardTransitions(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	tests := []struct {
		name       string
		from       types.Screen
		wantScreen types.Screen
	}{
		{name: "location back to customer", from: types.ScreenLocation, wantScreen: types.ScreenCustomer},
		{name: "cart back to location", from: types.ScreenCart, wantScreen: types.ScreenLocation},
		{name: "quantity back to cart", from: types.ScreenQuantity, wantScreen: types.ScreenCart},
		{name: "delivery back to cart when valid", from: types.ScreenDelivery, wantScreen: types.ScreenCart},
		{name: "confirmation back to delivery", from: types.ScreenConfirmation, wantScreen: types.ScreenDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := checkout.Reduce(sessionOn(t, tt.from), services.Action{Type: services.ActionBack})
			require.NoError(t, err)
			assert.Equal(t, tt.wantScreen, next.Screen)
		})
	}
}

func TestCheckoutService_Reduce_DeliveryBackToQuantityWhenInvalid(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	session := sessionOn(t, types.ScreenDelivery)
	session.Rules = map[string]types.QuantityRule{
		session.ProductItems[0].ProductID: {ProductID: session.ProductItems[0].ProductID, MinQuantity: 10},
	}

	next, err := checkout.Reduce(session, services.Action{Type: services.ActionBack})
	require.NoError(t, err)
	assert.Equal(t, types.ScreenQuantity, next.Screen)
}

func TestCheckoutService_Reduce_ProductDetail(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	for _, origin := range []types.Screen{types.ScreenCart, types.ScreenQuantity} {
		session := sessionOn(t, origin)

		opened, err := checkout.Reduce(session, services.Action{Type: services.ActionOpenDetail})
		require.NoError(t, err)
		assert.Equal(t, types.ScreenProductDetail, opened.Screen)
		assert.Equal(t, origin, opened.DetailSource)

		closed, err := checkout.Reduce(opened, services.Action{Type: services.ActionCloseDetail})
		require.NoError(t, err)
		assert.Equal(t, origin, closed.Screen)
		assert.Empty(t, closed.DetailSource)
	}

	// Not reachable from delivery.
	_, err := checkout.Reduce(sessionOn(t, types.ScreenDelivery), services.Action{Type: services.ActionOpenDetail})
	assert.Error(t, err)
}

func TestCheckoutService_Reduce_Reset(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	session := sessionOn(t, types.ScreenConfirmation)
	session.PONumber = "PO12345"

	next, err := checkout.Reduce(session, services.Action{Type: services.ActionReset})
	require.NoError(t, err)

	assert.Equal(t, types.ScreenCustomer, next.Screen)
	assert.Nil(t, next.Customer)
	assert.Nil(t, next.Location)
	assert.Empty(t, next.Items)
	assert.Empty(t, next.PONumber)
	assert.Equal(t, session.ID, next.ID)
}

func TestCheckoutService_Reduce_SelectCustomerClearsDownstream(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	session := sessionOn(t, types.ScreenCustomer)
	session.PONumber = "PO12345"

	next, err := checkout.Reduce(session, services.Action{
		Type:      services.ActionSelectCustomer,
		Customer:  &types.Customer{CustomerID: "cust-2", DisplayName: "Globex"},
		TaxExempt: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "cust-2", next.Customer.CustomerID)
	assert.True(t, next.TaxExempt)
	assert.Nil(t, next.Location)
	assert.Empty(t, next.Items)
	assert.Empty(t, next.PONumber)
}

func TestCheckoutService_SessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStoreGateway(ctrl)
	store.EXPECT().FetchStoreTaxSettings(gomock.Any()).Return(
		&types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: true, CountryCode: "US"}, nil)
	store.EXPECT().FetchCustomerTaxExemption(gomock.Any(), "cust-1").Return(false, nil)

	checkout := newCheckoutService(nil, store)
	ctx := context.Background()

	session, err := checkout.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.ScreenCustomer, session.Screen)
	assert.True(t, session.StoreSettings.TaxShipping)

	session, err = checkout.SelectCustomer(ctx, session.ID, types.Customer{CustomerID: "cust-1", DisplayName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", session.Customer.CustomerID)

	stored, ok := checkout.GetSession(session.ID)
	require.True(t, ok)
	assert.Equal(t, session.Customer, stored.Customer)

	checkout.RemoveSession(session.ID)
	_, ok = checkout.GetSession(session.ID)
	assert.False(t, ok)
}

func TestCheckoutService_ReplaceCart_AppliesContextualPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStoreGateway(ctrl)
	store.EXPECT().FetchStoreTaxSettings(gomock.Any()).Return(&types.StoreTaxSettings{}, nil)

	pricing := mocks.NewMockPricingResolver(ctrl)
	pricing.EXPECT().FetchContextualPricing(gomock.Any(), "var-Bracket", "loc-1").Return(&types.ContextualPricing{
		VariantID: "var-Bracket",
		Price:     dec(t, "8.50"),
		QuantityRule: &types.QuantityRule{
			MinQuantity: 5,
			PriceBreaks: []types.PriceBreak{{MinimumQuantity: 10, Price: dec(t, "8.00")}},
		},
	}, nil)

	checkout := newCheckoutService(pricing, store)
	ctx := context.Background()

	session, err := checkout.CreateSession(ctx)
	require.NoError(t, err)

	_, err = checkout.SelectLocation(session.ID, types.CompanyLocation{
		LocationID: "loc-1", CompanyID: "co-1", Address: types.Address{Country: "US", Province: "CA"},
	})
	require.NoError(t, err)

	updated, err := checkout.ReplaceCart(ctx, session.ID, []types.CartLineItem{
		productLine(t, "Bracket", "10.00", 10),
	})
	require.NoError(t, err)

	require.Len(t, updated.ProductItems, 1)
	require.NotNil(t, updated.ProductItems[0].ContextualPrice)
	// The 10-unit price break beats the base contextual price.
	assert.True(t, updated.ProductItems[0].ContextualPrice.Equal(dec(t, "8.00")))

	rule, ok := updated.Rules["prod-Bracket"]
	require.True(t, ok)
	assert.Equal(t, 5, rule.MinQuantity)
}

func TestCheckoutService_ReplaceCart_RejectsNegativeInputs(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*types.CartLineItem)
		wantField string
	}{
		{
			name:      "negative quantity",
			mutate:    func(item *types.CartLineItem) { item.Quantity = -1 },
			wantField: "quantity",
		},
		{
			name:      "negative unit price",
			mutate:    func(item *types.CartLineItem) { item.UnitPrice = dec(t, "-10.00") },
			wantField: "unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStoreGateway(ctrl)
			store.EXPECT().FetchStoreTaxSettings(gomock.Any()).Return(&types.StoreTaxSettings{}, nil)

			checkout := newCheckoutService(nil, store)
			ctx := context.Background()

			session, err := checkout.CreateSession(ctx)
			require.NoError(t, err)

			_, err = checkout.SelectLocation(session.ID, types.CompanyLocation{
				LocationID: "loc-1", CompanyID: "co-1", Address: types.Address{Country: "US"},
			})
			require.NoError(t, err)

			item := productLine(t, "Bracket", "10.00", 5)
			tt.mutate(&item)

			_, err = checkout.ReplaceCart(ctx, session.ID, []types.CartLineItem{item})
			var vErr *services.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)

			// The rejected cart never reaches the session.
			stored, ok := checkout.GetSession(session.ID)
			require.True(t, ok)
			assert.Empty(t, stored.Items)
		})
	}
}

func TestCheckoutService_Derive_ScenarioA(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	session := sessionOn(t, types.ScreenDelivery)
	session.Items = []types.CartLineItem{productLine(t, "Bracket", "20.00", 5)}
	session.ProductItems = session.Items
	session.SurchargeItems = nil
	session.StoreSettings = types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: true}
	session.DeliveryMethod = &types.DeliveryMethod{Name: "Truck", Fee: dec(t, "25.00"), Taxable: true}

	snapshot := checkout.Derive(session)

	assert.Equal(t, "8.75", snapshot.Tax.TaxAmount.Round(2).StringFixed(2))
	assert.Equal(t, "2.19", snapshot.Tax.ShippingTaxAmount.Round(2).StringFixed(2))
	assert.Equal(t, "135.94", snapshot.Totals.FinalTotal.Round(2).StringFixed(2))
}

func TestCheckoutService_Derive_ExemptZeroesTax(t *testing.T) {
	checkout := newCheckoutService(nil, nil)

	session := sessionOn(t, types.ScreenDelivery)
	session.TaxExempt = true
	session.StoreSettings = types.StoreTaxSettings{TaxesIncluded: false, TaxShipping: true}
	session.DeliveryMethod = &types.DeliveryMethod{Name: "Truck", Fee: dec(t, "25.00"), Taxable: true}

	snapshot := checkout.Derive(session)

	assert.True(t, snapshot.Tax.TaxAmount.IsZero())
	assert.True(t, snapshot.Tax.ShippingTaxAmount.IsZero())
}
