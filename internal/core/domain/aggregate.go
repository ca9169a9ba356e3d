package domain

// AggregatedProduct is the assembled response. Product is always present;
// the other three always hold a value, real or fallback, never absent.
type AggregatedProduct struct {
	Product      ProductDetails   `json:"product"`
	Pricing      PricingInfo      `json:"pricing"`
	Availability AvailabilityInfo `json:"availability"`
	Customer     CustomerContext  `json:"customer"`
}

// NewAggregatedProduct assembles an aggregate. Pricing and availability are
// taken as the policy resolved them; a zero-valued customer facet normalizes
// to the standard context.
func NewAggregatedProduct(product ProductDetails, pricing PricingInfo, availability AvailabilityInfo, customer CustomerContext) AggregatedProduct {
	if customer.Segment == "" {
		customer = StandardCustomer()
	}
	if customer.Preferences == nil {
		customer.Preferences = map[string]string{}
	}
	return AggregatedProduct{
		Product:      product,
		Pricing:      pricing,
		Availability: availability,
		Customer:     customer,
	}
}
