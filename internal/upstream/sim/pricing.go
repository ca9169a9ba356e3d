package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/infra/dataset"
)

// DefaultPricingOptions mirrors the observed characteristics of the real
// pricing engine.
var DefaultPricingOptions = Options{
	Latency:     80 * time.Millisecond,
	Reliability: 0.995,
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Pricing serves personalized prices from the market pricing dataset.
type Pricing struct {
	src  dataset.Source
	opts Options
}

// NewPricing creates the simulated pricing client.
func NewPricing(src dataset.Source, opts Options) *Pricing {
	return &Pricing{src: src, opts: opts.withDefaults()}
}

func (p *Pricing) Pricing(ctx context.Context, productID, market string, customer domain.CustomerContext) (domain.PricingInfo, error) {
	if err := simulate(ctx, domain.ServicePricing, p.opts); err != nil {
		return domain.PricingInfo{}, err
	}

	ds, err := p.src.Pricing(ctx, market)
	if err != nil {
		return domain.PricingInfo{}, classifyDatasetErr(domain.ServicePricing, market, err)
	}

	if ov, ok := ds.Overrides[productID]; ok && ov.ForceUnavailable {
		return domain.PricingInfo{}, domain.NewUpstreamFailure(
			domain.ServicePricing, ov.Reason, "forced unavailable via dataset override")
	}

	item, ok := ds.Items[productID]
	if !ok || item.BasePrice == nil {
		return domain.PricingInfo{}, domain.NewUpstreamFailure(
			domain.ServicePricing, domain.ReasonNotFound,
			fmt.Sprintf("no pricing entry for productId=%s, market=%s", productID, market))
	}

	base := *item.BasePrice
	discount := discountFor(customer.Segment)
	multiplier := one.Sub(discount.Div(hundred))
	final := base.Mul(multiplier).Round(2)

	return domain.PricingAvailable(base, discount, final, ds.Currency), nil
}

// discountFor returns the discount percentage for a customer segment.
func discountFor(segment string) decimal.Decimal {
	switch segment {
	case domain.SegmentPremium:
		return decimal.RequireFromString("12.5")
	case domain.SegmentStandard:
		return decimal.RequireFromString("5.0")
	case domain.SegmentBasic:
		return decimal.RequireFromString("0.0")
	default:
		return decimal.Zero
	}
}
