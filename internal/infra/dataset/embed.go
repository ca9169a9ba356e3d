package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed data
var dataFS embed.FS

// EmbeddedSource serves datasets from the JSON files compiled into the
// binary. It is the default backend and the seed origin for the others.
type EmbeddedSource struct{}

// NewEmbeddedSource creates the embedded source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (s *EmbeddedSource) Catalog(_ context.Context, market string) (*CatalogDataset, error) {
	var ds CatalogDataset
	if err := readEmbedded(KindCatalog, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *EmbeddedSource) Pricing(_ context.Context, market string) (*PricingDataset, error) {
	var ds PricingDataset
	if err := readEmbedded(KindPricing, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *EmbeddedSource) Availability(_ context.Context, market string) (*AvailabilityDataset, error) {
	var ds AvailabilityDataset
	if err := readEmbedded(KindAvailability, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *EmbeddedSource) Customer(_ context.Context, market string) (*CustomerDataset, error) {
	var ds CustomerDataset
	if err := readEmbedded(KindCustomer, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func readEmbedded(kind, market string, v any) error {
	raw, err := dataFS.ReadFile(embeddedPath(kind, market))
	if err != nil {
		if _, ok := err.(*fs.PathError); ok {
			return marketNotFound(market)
		}
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s dataset for market %s: %w", kind, market, err)
	}
	return nil
}

func embeddedPath(kind, market string) string {
	return fmt.Sprintf("data/%s/%s.json", kind, market)
}

// rawEmbedded returns the raw document for seeding external backends.
func rawEmbedded(kind, market string) ([]byte, error) {
	return dataFS.ReadFile(embeddedPath(kind, market))
}
