package services

import (
	"fmt"

	"pos-api/internal/types"
)

// ValidationResult reports the outcome of quantity-rule validation across
// a cart. Errors preserve cart item order, one message per violation.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// QuantityService validates product cart lines against their quantity
// rules. Pure, no I/O.
type QuantityService struct{}

// NewQuantityService creates a new quantity rule validator.
func NewQuantityService() *QuantityService {
	return &QuantityService{}
}

// Validate checks every product line that has a rule. Items without a rule
// are always valid.
func (s *QuantityService) Validate(items []types.CartLineItem, rules map[string]types.QuantityRule) ValidationResult {
	result := ValidationResult{IsValid: true}

	for _, item := range items {
		rule, ok := rules[item.ProductID]
		if !ok {
			continue
		}

		if item.Quantity < rule.MinQuantity {
			result.IsValid = false
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s: quantity %d is below the minimum of %d", item.Name, item.Quantity, rule.MinQuantity))
		}

		if rule.MaxQuantity != nil && item.Quantity > *rule.MaxQuantity {
			result.IsValid = false
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s: quantity %d exceeds the maximum of %d", item.Name, item.Quantity, *rule.MaxQuantity))
		}

		if rule.Increment != nil && *rule.Increment > 0 {
			if (item.Quantity-rule.MinQuantity)%*rule.Increment != 0 {
				result.IsValid = false
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s: quantity %d must be ordered in increments of %d starting at %d",
					item.Name, item.Quantity, *rule.Increment, rule.MinQuantity))
			}
		}
	}

	return result
}

// BreakPrice returns the unit price applicable at the given quantity, using
// the rule's ordered price breaks. Returns false when no break applies.
func (s *QuantityService) BreakPrice(rule types.QuantityRule, quantity int) (price types.PriceBreak, ok bool) {
	for _, pb := range rule.PriceBreaks {
		if quantity >= pb.MinimumQuantity {
			price = pb
			ok = true
		}
	}
	return price, ok
}
