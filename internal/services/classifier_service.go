package services

import (
	"strings"

	"go.uber.org/zap"

	"pos-api/internal/logger"
	"pos-api/internal/types"
)

// surchargeKeywords is the legacy name-based fallback. The explicit Type
// attribute is the primary mechanism; the keyword match only exists for
// carts assembled by older tooling that never tagged surcharge lines.
var surchargeKeywords = []string{"surcharge", "fee", "charge", "delivery", "handling", "rush"}

// ClassifierService splits raw cart lines into product and surcharge lines.
type ClassifierService struct {
	logger *zap.Logger
}

// NewClassifierService creates a new classifier service.
func NewClassifierService() *ClassifierService {
	return &ClassifierService{logger: logger.Log}
}

// IsSurcharge reports whether the line is a surcharge rather than a
// product. An explicit Type="Surcharge" attribute always wins; otherwise
// the lower-cased display name is checked against the legacy keyword set.
func (s *ClassifierService) IsSurcharge(item types.CartLineItem) bool {
	if item.Attributes["Type"] == "Surcharge" {
		return true
	}

	name := strings.ToLower(item.Name)
	for _, kw := range surchargeKeywords {
		if strings.Contains(name, kw) {
			if s.logger != nil {
				s.logger.Warn("surcharge inferred from item name, explicit Type attribute missing",
					zap.String("item", item.Name),
					zap.String("keyword", kw))
			}
			return true
		}
	}
	return false
}

// IsTaxableSurcharge resolves the Taxable attribute of a surcharge line.
// Absent attribute defaults to taxable.
func (s *ClassifierService) IsTaxableSurcharge(item types.CartLineItem) bool {
	v, ok := item.Attributes["Taxable"]
	if !ok {
		return true
	}
	return strings.EqualFold(v, "Yes") || strings.EqualFold(v, "true")
}

// SurchargeType resolves the surcharge type label for a surcharge line.
// Explicit Type/SurchargeType attributes win; otherwise the type is
// inferred from the item name.
func (s *ClassifierService) SurchargeType(item types.CartLineItem) string {
	if t, ok := item.Attributes["SurchargeType"]; ok && t != "" {
		return t
	}
	if t, ok := item.Attributes["Type"]; ok && t != "" && t != "Surcharge" {
		return t
	}

	name := strings.ToLower(item.Name)
	switch {
	case strings.Contains(name, "delivery"):
		return "Delivery Fee"
	case strings.Contains(name, "rush"):
		return "Rush Order Fee"
	case strings.Contains(name, "handling"):
		return "Handling Fee"
	default:
		return "Custom Surcharge"
	}
}

// Split partitions cart lines into product and surcharge subsets,
// preserving cart order within each subset.
func (s *ClassifierService) Split(items []types.CartLineItem) (products, surcharges []types.CartLineItem) {
	for _, item := range items {
		if s.IsSurcharge(item) {
			surcharges = append(surcharges, item)
		} else {
			products = append(products, item)
		}
	}
	return products, surcharges
}
