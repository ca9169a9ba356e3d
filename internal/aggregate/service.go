// Package aggregate orchestrates the four upstream calls behind one
// aggregation operation. Catalog is mandatory and synchronous; customer and
// availability fan out concurrently once catalog succeeds; pricing starts
// only after the customer context resolves, since the discount depends on the
// resolved segment. Optional facets degrade to documented fallbacks and
// never fail the request.
package aggregate

import (
	"context"
	"log/slog"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/metrics"
	"github.com/vietddude/productinfo/internal/upstream"
)

// Service drives the aggregation dependency graph.
type Service struct {
	catalog      upstream.CatalogClient
	pricing      upstream.PricingClient
	availability upstream.AvailabilityClient
	customer     upstream.CustomerClient
	log          *slog.Logger
}

// New creates the aggregation service. All clients are expected to be
// resilience-wrapped already.
func New(
	catalog upstream.CatalogClient,
	pricing upstream.PricingClient,
	availability upstream.AvailabilityClient,
	customer upstream.CustomerClient,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog:      catalog,
		pricing:      pricing,
		availability: availability,
		customer:     customer,
		log:          log,
	}
}

// Aggregate resolves all four facets for one product in one market. It fails
// only when the catalog call is exhausted; the classified failure is
// returned unchanged. customerID may be empty for anonymous requests.
func (s *Service) Aggregate(ctx context.Context, productID, market, customerID string) (domain.AggregatedProduct, error) {
	// A disconnected caller must not cancel in-flight upstream work or leak
	// its cancellation into the shared breaker windows; tasks run to
	// completion or failure regardless.
	ctx = context.WithoutCancel(ctx)

	product, err := s.catalog.ProductDetails(ctx, productID, market)
	if err != nil {
		metrics.AggregationsTotal.WithLabelValues("abort").Inc()
		return domain.AggregatedProduct{}, err
	}

	customerCh := make(chan domain.CustomerContext, 1)
	availabilityCh := make(chan domain.AvailabilityInfo, 1)
	pricingCh := make(chan domain.PricingInfo, 1)

	go func() {
		customerCh <- s.resolveCustomer(ctx, customerID, market)
	}()
	go func() {
		availabilityCh <- s.resolveAvailability(ctx, productID, market)
	}()

	// Pricing needs the resolved segment, so it waits for the customer task
	// while availability stays in flight.
	customer := <-customerCh
	go func() {
		pricingCh <- s.resolvePricing(ctx, productID, market, customer)
	}()

	availability := <-availabilityCh
	pricing := <-pricingCh

	metrics.AggregationsTotal.WithLabelValues("ok").Inc()
	return domain.NewAggregatedProduct(product, pricing, availability, customer), nil
}

func (s *Service) resolveCustomer(ctx context.Context, customerID, market string) domain.CustomerContext {
	if customerID == "" {
		return domain.StandardCustomer()
	}
	result, err := s.customer.CustomerContext(ctx, customerID, market)
	if err != nil {
		s.logDegraded(domain.ServiceCustomer, err)
	}
	return resolveCustomerOutcome(result, err)
}

func (s *Service) resolveAvailability(ctx context.Context, productID, market string) domain.AvailabilityInfo {
	result, err := s.availability.Availability(ctx, productID, market)
	if err != nil {
		s.logDegraded(domain.ServiceAvailability, err)
	}
	return resolveAvailabilityOutcome(result, err)
}

func (s *Service) resolvePricing(ctx context.Context, productID, market string, customer domain.CustomerContext) domain.PricingInfo {
	result, err := s.pricing.Pricing(ctx, productID, market, customer)
	if err != nil {
		s.logDegraded(domain.ServicePricing, err)
	}
	return resolvePricingOutcome(result, err)
}

func (s *Service) logDegraded(service string, err error) {
	metrics.DegradedFacetsTotal.WithLabelValues(service).Inc()
	failure := domain.Classify(service, err)
	s.log.Debug("facet degraded to fallback",
		"service", failure.Service,
		"reason", failure.Reason,
		"details", failure.Details,
	)
}
