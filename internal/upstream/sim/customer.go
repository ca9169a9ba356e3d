package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/infra/dataset"
)

// DefaultCustomerOptions mirrors the observed characteristics of the real
// customer service.
var DefaultCustomerOptions = Options{
	Latency:     60 * time.Millisecond,
	Reliability: 0.99,
}

// Customer serves customer contexts from the market customer dataset.
type Customer struct {
	src  dataset.Source
	opts Options
}

// NewCustomer creates the simulated customer client.
func NewCustomer(src dataset.Source, opts Options) *Customer {
	return &Customer{src: src, opts: opts.withDefaults()}
}

func (c *Customer) CustomerContext(ctx context.Context, customerID, market string) (domain.CustomerContext, error) {
	if err := simulate(ctx, domain.ServiceCustomer, c.opts); err != nil {
		return domain.CustomerContext{}, err
	}

	ds, err := c.src.Customer(ctx, market)
	if err != nil {
		return domain.CustomerContext{}, classifyDatasetErr(domain.ServiceCustomer, market, err)
	}

	segment, ok := ds.SegmentsByCustomerID[customerID]
	if !ok {
		return domain.CustomerContext{}, domain.NewUpstreamFailure(
			domain.ServiceCustomer, domain.ReasonCustomerNotFound,
			fmt.Sprintf("customerId=%s, market=%s", customerID, market))
	}

	prefs := ds.PreferencesBySegment[segment]
	if prefs == nil {
		prefs = map[string]string{}
	}

	return domain.CustomerContext{
		CustomerID:  customerID,
		Segment:     segment,
		Preferences: prefs,
	}, nil
}
