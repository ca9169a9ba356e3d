package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/infra/dataset"
)

// DefaultAvailabilityOptions mirrors the observed characteristics of the real
// availability service, the least reliable of the four.
var DefaultAvailabilityOptions = Options{
	Latency:     100 * time.Millisecond,
	Reliability: 0.98,
}

// Availability serves stock information from the market availability dataset.
type Availability struct {
	src  dataset.Source
	opts Options
}

// NewAvailability creates the simulated availability client.
func NewAvailability(src dataset.Source, opts Options) *Availability {
	return &Availability{src: src, opts: opts.withDefaults()}
}

func (a *Availability) Availability(ctx context.Context, productID, market string) (domain.AvailabilityInfo, error) {
	if err := simulate(ctx, domain.ServiceAvailability, a.opts); err != nil {
		return domain.AvailabilityInfo{}, err
	}

	ds, err := a.src.Availability(ctx, market)
	if err != nil {
		return domain.AvailabilityInfo{}, classifyDatasetErr(domain.ServiceAvailability, market, err)
	}

	item, ok := ds.Items[productID]
	if !ok || item.Stock == nil {
		return domain.AvailabilityInfo{}, domain.NewUpstreamFailure(
			domain.ServiceAvailability, domain.ReasonNotFound,
			fmt.Sprintf("no availability entry for productId=%s, market=%s", productID, market))
	}

	return domain.AvailabilityKnown(*item.Stock, ds.Warehouse, item.Delivery), nil
}
