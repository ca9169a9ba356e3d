// Package resilient wraps each upstream port with its service's resilience
// decorator. Wrapped clients implement the same port interfaces and fail
// only with classified *domain.UpstreamFailure values.
package resilient

import (
	"context"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/resilience"
	"github.com/vietddude/productinfo/internal/upstream"
)

// Catalog is the resilient catalog client.
type Catalog struct {
	delegate upstream.CatalogClient
	exec     *resilience.Decorator
}

// NewCatalog wraps delegate with the catalog decorator.
func NewCatalog(delegate upstream.CatalogClient, exec *resilience.Decorator) *Catalog {
	return &Catalog{delegate: delegate, exec: exec}
}

func (c *Catalog) ProductDetails(ctx context.Context, productID, market string) (domain.ProductDetails, error) {
	result, err := c.exec.Execute(ctx, func(ctx context.Context) (any, error) {
		return c.delegate.ProductDetails(ctx, productID, market)
	})
	if err != nil {
		return domain.ProductDetails{}, err
	}
	return result.(domain.ProductDetails), nil
}

// Pricing is the resilient pricing client.
type Pricing struct {
	delegate upstream.PricingClient
	exec     *resilience.Decorator
}

// NewPricing wraps delegate with the pricing decorator.
func NewPricing(delegate upstream.PricingClient, exec *resilience.Decorator) *Pricing {
	return &Pricing{delegate: delegate, exec: exec}
}

func (p *Pricing) Pricing(ctx context.Context, productID, market string, customer domain.CustomerContext) (domain.PricingInfo, error) {
	result, err := p.exec.Execute(ctx, func(ctx context.Context) (any, error) {
		return p.delegate.Pricing(ctx, productID, market, customer)
	})
	if err != nil {
		return domain.PricingInfo{}, err
	}
	return result.(domain.PricingInfo), nil
}

// Availability is the resilient availability client.
type Availability struct {
	delegate upstream.AvailabilityClient
	exec     *resilience.Decorator
}

// NewAvailability wraps delegate with the availability decorator.
func NewAvailability(delegate upstream.AvailabilityClient, exec *resilience.Decorator) *Availability {
	return &Availability{delegate: delegate, exec: exec}
}

func (a *Availability) Availability(ctx context.Context, productID, market string) (domain.AvailabilityInfo, error) {
	result, err := a.exec.Execute(ctx, func(ctx context.Context) (any, error) {
		return a.delegate.Availability(ctx, productID, market)
	})
	if err != nil {
		return domain.AvailabilityInfo{}, err
	}
	return result.(domain.AvailabilityInfo), nil
}

// Customer is the resilient customer client.
type Customer struct {
	delegate upstream.CustomerClient
	exec     *resilience.Decorator
}

// NewCustomer wraps delegate with the customer decorator.
func NewCustomer(delegate upstream.CustomerClient, exec *resilience.Decorator) *Customer {
	return &Customer{delegate: delegate, exec: exec}
}

func (c *Customer) CustomerContext(ctx context.Context, customerID, market string) (domain.CustomerContext, error) {
	result, err := c.exec.Execute(ctx, func(ctx context.Context) (any, error) {
		return c.delegate.CustomerContext(ctx, customerID, market)
	})
	if err != nil {
		return domain.CustomerContext{}, err
	}
	return result.(domain.CustomerContext), nil
}
