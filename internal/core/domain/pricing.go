package domain

import (
	"github.com/shopspring/decimal"
)

// PricingInfo is either fully available (all price fields set together) or
// unavailable with a reason code. Never partially populated.
type PricingInfo struct {
	Available       bool             `json:"available"`
	BasePrice       *decimal.Decimal `json:"basePrice,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discountPercent,omitempty"`
	FinalPrice      *decimal.Decimal `json:"finalPrice,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Reason          string           `json:"reason,omitempty"`
}

// PricingAvailable builds the available shape.
func PricingAvailable(basePrice, discountPercent, finalPrice decimal.Decimal, currency string) PricingInfo {
	return PricingInfo{
		Available:       true,
		BasePrice:       &basePrice,
		DiscountPercent: &discountPercent,
		FinalPrice:      &finalPrice,
		Currency:        currency,
	}
}

// PricingUnavailable builds the unavailable shape carrying only a reason code.
func PricingUnavailable(reason string) PricingInfo {
	return PricingInfo{Reason: reason}
}
