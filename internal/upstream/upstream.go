// Package upstream defines the capability interfaces for the four upstream
// services the aggregator consumes. Each port has the single operation the
// core needs; implementations are swapped by substitution (simulated,
// resilient-wrapped, or test stubs).
package upstream

import (
	"context"

	"github.com/vietddude/productinfo/internal/core/domain"
)

// CatalogClient resolves product display details. Mandatory: its failure
// aborts the whole aggregation.
type CatalogClient interface {
	ProductDetails(ctx context.Context, productID, market string) (domain.ProductDetails, error)
}

// PricingClient resolves pricing for a product, personalized by the resolved
// customer context.
type PricingClient interface {
	Pricing(ctx context.Context, productID, market string, customer domain.CustomerContext) (domain.PricingInfo, error)
}

// AvailabilityClient resolves stock information.
type AvailabilityClient interface {
	Availability(ctx context.Context, productID, market string) (domain.AvailabilityInfo, error)
}

// CustomerClient resolves the customer context for a known customer ID.
type CustomerClient interface {
	CustomerContext(ctx context.Context, customerID, market string) (domain.CustomerContext, error)
}
