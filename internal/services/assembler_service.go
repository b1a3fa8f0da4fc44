package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-api/internal/logger"
	"pos-api/internal/types"
)

// allowedAttributes is the closed attribute vocabulary per line kind. Any
// constructed line carrying a key outside its kind's set is rejected at
// the assembly boundary.
var allowedAttributes = map[types.LineKind]map[string]bool{
	types.LineKindProduct:     {"SKU": true, "Product ID": true, "Variant ID": true, "B2B Price": true},
	types.LineKindSurcharge:   {"Type": true, "SurchargeType": true, "Taxable": true, "Description": true},
	types.LineKindDelivery:    {"Type": true, "Method": true, "Taxable": true},
	types.LineKindTax:         {"Type": true, "Rate": true, "Location": true},
	types.LineKindShippingTax: {"Type": true, "Rate": true, "Location": true},
}

// AssemblerService turns a checkout session and its computed totals into
// the draft-order line items the order gateway expects. Assembly is
// deterministic for a given session/totals snapshot so a retried
// submission produces an identical payload.
type AssemblerService struct {
	classifier *ClassifierService
	logger     *zap.Logger
}

// NewAssemblerService creates a new order assembler.
func NewAssemblerService(classifier *ClassifierService) *AssemblerService {
	return &AssemblerService{classifier: classifier, logger: logger.Log}
}

// Assemble builds the ordered draft-order line list: product lines,
// surcharge lines, the delivery-fee line when a fee applies, then tax and
// shipping-tax lines unless the customer is exempt.
func (s *AssemblerService) Assemble(session types.CheckoutSession, totals types.OrderTotals, tax types.TaxResult) ([]types.DraftOrderLineItem, error) {
	lines := make([]types.DraftOrderLineItem, 0, len(session.Items)+3)

	for _, item := range session.ProductItems {
		line := types.DraftOrderLineItem{
			Title:     item.Name,
			UnitPrice: roundMoney(item.EffectivePrice()),
			Quantity:  item.Quantity,
			Attributes: []types.Attribute{
				{Key: "SKU", Value: item.SKU},
				{Key: "Product ID", Value: item.ProductID},
				{Key: "Variant ID", Value: item.VariantID},
				{Key: "B2B Price", Value: yesNo(item.ContextualPrice != nil)},
			},
		}
		if err := s.validate(types.LineKindProduct, line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	for _, item := range session.SurchargeItems {
		line := types.DraftOrderLineItem{
			Title:     item.Name,
			UnitPrice: roundMoney(item.LineTotal()),
			Quantity:  1,
			Attributes: []types.Attribute{
				{Key: "Type", Value: "Surcharge"},
				{Key: "SurchargeType", Value: s.classifier.SurchargeType(item)},
				{Key: "Taxable", Value: yesNo(s.classifier.IsTaxableSurcharge(item))},
				{Key: "Description", Value: surchargeDescription(item)},
			},
		}
		if err := s.validate(types.LineKindSurcharge, line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if session.DeliveryMethod != nil && session.DeliveryMethod.Fee.IsPositive() {
		line := types.DraftOrderLineItem{
			Title:     "Delivery",
			UnitPrice: roundMoney(session.DeliveryMethod.Fee),
			Quantity:  1,
			Attributes: []types.Attribute{
				{Key: "Type", Value: "Delivery Fee"},
				{Key: "Method", Value: session.DeliveryMethod.Name},
				{Key: "Taxable", Value: yesNo(session.DeliveryMethod.Taxable)},
			},
		}
		if err := s.validate(types.LineKindDelivery, line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if !tax.Exempt {
		location := s.locationLabel(session)

		taxLine := types.DraftOrderLineItem{
			Title:     tax.Title,
			UnitPrice: roundMoney(tax.TaxAmount),
			Quantity:  1,
			Attributes: []types.Attribute{
				{Key: "Type", Value: "Tax"},
				{Key: "Rate", Value: formatRate(tax.Rate)},
				{Key: "Location", Value: location},
			},
		}
		if err := s.validate(types.LineKindTax, taxLine); err != nil {
			return nil, err
		}
		lines = append(lines, taxLine)

		if tax.ShippingTaxAmount.IsPositive() {
			shipLine := types.DraftOrderLineItem{
				Title:     "Shipping Tax",
				UnitPrice: roundMoney(tax.ShippingTaxAmount),
				Quantity:  1,
				Attributes: []types.Attribute{
					{Key: "Type", Value: "Shipping Tax"},
					{Key: "Rate", Value: formatRate(tax.Rate)},
					{Key: "Location", Value: location},
				},
			}
			if err := s.validate(types.LineKindShippingTax, shipLine); err != nil {
				return nil, err
			}
			lines = append(lines, shipLine)
		}
	}

	if s.logger != nil {
		s.logger.Info("draft order lines assembled",
			zap.String("session_id", session.ID.String()),
			zap.Int("lines", len(lines)),
			zap.Bool("exempt", tax.Exempt))
	}

	return lines, nil
}

// validate enforces the closed attribute vocabulary for the line kind.
func (s *AssemblerService) validate(kind types.LineKind, line types.DraftOrderLineItem) error {
	allowed := allowedAttributes[kind]
	seen := make(map[string]bool, len(line.Attributes))
	for _, attr := range line.Attributes {
		if !allowed[attr.Key] {
			return &ValidationError{
				Field:   string(kind),
				Message: fmt.Sprintf("attribute %q is not allowed on a %s line", attr.Key, kind),
			}
		}
		if seen[attr.Key] {
			return &ValidationError{
				Field:   string(kind),
				Message: fmt.Sprintf("duplicate attribute %q on a %s line", attr.Key, kind),
			}
		}
		seen[attr.Key] = true
	}
	return nil
}

func (s *AssemblerService) locationLabel(session types.CheckoutSession) string {
	if session.Location == nil {
		return ""
	}
	addr := session.Location.Address
	if addr.Province == "" {
		return addr.Country
	}
	return addr.Province + ", " + addr.Country
}

func surchargeDescription(item types.CartLineItem) string {
	if d, ok := item.Attributes["Description"]; ok && d != "" {
		return d
	}
	return item.Name
}

// roundMoney applies the presentation rounding policy: half-up to cents.
// Totals aggregation upstream always runs at full precision.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// formatRate renders a fractional rate as a percentage string, e.g.
// 0.0875 -> "8.75%".
func formatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
