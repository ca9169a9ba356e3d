package domain

// CustomerContext carries the segment and preferences used to personalize
// pricing. The standard context is the canonical fallback for anonymous
// requests and failed lookups.
type CustomerContext struct {
	CustomerID  string            `json:"customerId,omitempty"`
	Segment     string            `json:"segment"`
	Preferences map[string]string `json:"preferences"`
}

const (
	SegmentStandard = "STANDARD"
	SegmentPremium  = "PREMIUM"
	SegmentBasic    = "BASIC"
)

// StandardCustomer returns the anonymous fallback context.
func StandardCustomer() CustomerContext {
	return CustomerContext{Segment: SegmentStandard, Preferences: map[string]string{}}
}
