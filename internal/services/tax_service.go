package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-api/internal/logger"
	"pos-api/internal/types"
)

// regionTaxTable is the static country -> province -> rate table. An empty
// province key holds the country default. Rates are business data and are
// maintained here, not fetched at runtime.
var regionTaxTable = map[string]map[string]types.TaxRegionRate{
	"US": {
		"":   {Country: "US", Rate: dec("0.06"), Title: "US Sales Tax"},
		"CA": {Country: "US", Province: "CA", Rate: dec("0.0875"), Title: "California Sales Tax"},
		"NY": {Country: "US", Province: "NY", Rate: dec("0.08875"), Title: "New York Sales Tax"},
		"TX": {Country: "US", Province: "TX", Rate: dec("0.0825"), Title: "Texas Sales Tax"},
		"WA": {Country: "US", Province: "WA", Rate: dec("0.065"), Title: "Washington Sales Tax"},
		"FL": {Country: "US", Province: "FL", Rate: dec("0.06"), Title: "Florida Sales Tax"},
	},
	"CA": {
		"":   {Country: "CA", Rate: dec("0.05"), Title: "GST"},
		"ON": {Country: "CA", Province: "ON", Rate: dec("0.13"), Title: "HST"},
		"BC": {Country: "CA", Province: "BC", Rate: dec("0.12"), Title: "GST/PST"},
		"QC": {Country: "CA", Province: "QC", Rate: dec("0.14975"), Title: "GST/QST"},
	},
	"GB": {
		"": {Country: "GB", Rate: dec("0.20"), Title: "VAT"},
	},
	"DE": {
		"": {Country: "DE", Rate: dec("0.19"), Title: "VAT"},
	},
	"FR": {
		"": {Country: "FR", Rate: dec("0.20"), Title: "VAT"},
	},
	"AU": {
		"": {Country: "AU", Rate: dec("0.10"), Title: "GST"},
	},
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TaxParams are the inputs of one tax computation.
type TaxParams struct {
	Region        types.Address
	Settings      types.StoreTaxSettings
	Exempt        bool
	TaxableBase   decimal.Decimal
	ShippingOrFee decimal.Decimal
}

// TaxService resolves region tax rates and computes the tax portion of an
// order in both tax-included and tax-excluded modes. All arithmetic is
// kept at full decimal precision; display rounding happens only at
// presentation.
type TaxService struct {
	logger *zap.Logger
}

// NewTaxService creates a new tax service.
func NewTaxService() *TaxService {
	return &TaxService{logger: logger.Log}
}

// ResolveRegion looks up the rate and title for a region. An unmapped
// province falls back to the country default; an unmapped country yields a
// zero rate.
func (s *TaxService) ResolveRegion(country, province string) types.TaxRegionRate {
	provinces, ok := regionTaxTable[strings.ToUpper(country)]
	if !ok {
		return types.TaxRegionRate{Country: country, Rate: decimal.Zero, Title: "No Tax"}
	}

	if rate, ok := provinces[strings.ToUpper(province)]; ok {
		return rate
	}
	return provinces[""]
}

// Calculate computes the tax result for the given inputs. An exempt
// customer short-circuits to zero amounts regardless of region, mode or
// fee values.
func (s *TaxService) Calculate(params TaxParams) types.TaxResult {
	if params.Exempt {
		return types.TaxResult{
			Rate:              decimal.Zero,
			Title:             "Tax Exempt",
			IsIncluded:        params.Settings.TaxesIncluded,
			ShippingTaxable:   params.Settings.TaxShipping,
			Exempt:            true,
			TaxAmount:         decimal.Zero,
			ShippingTaxAmount: decimal.Zero,
		}
	}

	region := s.ResolveRegion(params.Region.Country, params.Region.Province)
	result := types.TaxResult{
		Rate:            region.Rate,
		Title:           region.Title,
		IsIncluded:      params.Settings.TaxesIncluded,
		ShippingTaxable: params.Settings.TaxShipping,
	}

	if region.Rate.IsZero() {
		result.TaxAmount = decimal.Zero
		result.ShippingTaxAmount = decimal.Zero
		return result
	}

	if params.Settings.TaxesIncluded {
		// Prices already contain tax; back the tax portion out.
		divisor := decimal.NewFromInt(1).Add(region.Rate)
		excludedBase := params.TaxableBase.Div(divisor)
		result.TaxAmount = params.TaxableBase.Sub(excludedBase)
		if params.Settings.TaxShipping {
			result.ShippingTaxAmount = params.ShippingOrFee.Sub(params.ShippingOrFee.Div(divisor))
		} else {
			result.ShippingTaxAmount = decimal.Zero
		}
	} else {
		result.TaxAmount = params.TaxableBase.Mul(region.Rate)
		if params.Settings.TaxShipping {
			result.ShippingTaxAmount = params.ShippingOrFee.Mul(region.Rate)
		} else {
			result.ShippingTaxAmount = decimal.Zero
		}
	}

	if s.logger != nil {
		s.logger.Debug("tax calculated",
			zap.String("country", params.Region.Country),
			zap.String("province", params.Region.Province),
			zap.String("rate", region.Rate.String()),
			zap.Bool("included", params.Settings.TaxesIncluded),
			zap.String("tax", result.TaxAmount.String()),
			zap.String("shipping_tax", result.ShippingTaxAmount.String()))
	}

	return result
}

// TaxableBase sums the line totals of taxable product items plus taxable
// surcharge amounts. Non-taxable lines never contribute to the base.
func (s *TaxService) TaxableBase(products, surcharges []types.CartLineItem, classifier *ClassifierService) decimal.Decimal {
	base := decimal.Zero
	for _, item := range products {
		if item.Taxable {
			base = base.Add(item.LineTotal())
		}
	}
	for _, item := range surcharges {
		if classifier.IsTaxableSurcharge(item) {
			base = base.Add(item.LineTotal())
		}
	}
	return base
}
