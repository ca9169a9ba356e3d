package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/infra/dataset"
)

// DefaultCatalogOptions mirrors the observed characteristics of the real
// catalog service.
var DefaultCatalogOptions = Options{
	Latency:     50 * time.Millisecond,
	Reliability: 0.999,
}

// Catalog serves product details from the market catalog dataset.
type Catalog struct {
	src  dataset.Source
	opts Options
}

// NewCatalog creates the simulated catalog client.
func NewCatalog(src dataset.Source, opts Options) *Catalog {
	return &Catalog{src: src, opts: opts.withDefaults()}
}

func (c *Catalog) ProductDetails(ctx context.Context, productID, market string) (domain.ProductDetails, error) {
	if err := simulate(ctx, domain.ServiceCatalog, c.opts); err != nil {
		return domain.ProductDetails{}, err
	}

	ds, err := c.src.Catalog(ctx, market)
	if err != nil {
		return domain.ProductDetails{}, classifyDatasetErr(domain.ServiceCatalog, market, err)
	}

	p, ok := ds.Products[productID]
	if !ok {
		return domain.ProductDetails{}, domain.NewUpstreamFailure(
			domain.ServiceCatalog, domain.ReasonProductNotFound,
			fmt.Sprintf("productId=%s, market=%s", productID, market))
	}

	specs := p.Specs
	if specs == nil {
		specs = map[string]string{}
	}
	return domain.ProductDetails{
		ProductID:   productID,
		Market:      market,
		Name:        p.Name,
		Description: p.Description,
		Specs:       specs,
		ImageURLs:   p.Images,
	}, nil
}

// classifyDatasetErr maps a dataset lookup error onto the service's failure
// taxonomy.
func classifyDatasetErr(service, market string, err error) error {
	if errors.Is(err, dataset.ErrMarketNotFound) {
		return &domain.UpstreamFailure{
			Service: service,
			Reason:  domain.ReasonMarketNotFound,
			Details: fmt.Sprintf("market=%s", market),
			Err:     err,
		}
	}
	return domain.Classify(service, err)
}
