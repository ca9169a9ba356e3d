// Package dataset serves the per-market documents backing the simulated
// upstream services. Three interchangeable sources exist: embedded JSON
// files (the default), Redis, and Postgres. The latter two are seeded from
// the embedded files by the seed command.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMarketNotFound is returned when no dataset exists for a market.
var ErrMarketNotFound = errors.New("market not found")

// Dataset kinds, also used as storage key segments.
const (
	KindCatalog      = "catalog"
	KindPricing      = "pricing"
	KindAvailability = "availability"
	KindCustomer     = "customer"
)

// Markets enumerates the markets shipped with the embedded datasets.
var Markets = []string{"de-DE", "nl-NL", "pl-PL"}

// Source provides the per-market dataset documents.
type Source interface {
	Catalog(ctx context.Context, market string) (*CatalogDataset, error)
	Pricing(ctx context.Context, market string) (*PricingDataset, error)
	Availability(ctx context.Context, market string) (*AvailabilityDataset, error)
	Customer(ctx context.Context, market string) (*CustomerDataset, error)
}

// CatalogDataset holds the products of one market.
type CatalogDataset struct {
	Products map[string]CatalogProduct `json:"products"`
}

// CatalogProduct is one localized catalog entry.
type CatalogProduct struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
	Images      []string          `json:"images"`
}

// PricingDataset holds base prices and per-product overrides for one market.
type PricingDataset struct {
	Currency  string                     `json:"currency"`
	Items     map[string]PricingItem     `json:"items"`
	Overrides map[string]PricingOverride `json:"overrides"`
}

// PricingItem is the base price of one product.
type PricingItem struct {
	BasePrice *decimal.Decimal `json:"basePrice"`
}

// PricingOverride forces a product's pricing unavailable with a reason code.
type PricingOverride struct {
	ForceUnavailable bool   `json:"forceUnavailable"`
	Reason           string `json:"reason"`
}

// AvailabilityDataset holds stock entries for one market warehouse.
type AvailabilityDataset struct {
	Warehouse string                      `json:"warehouse"`
	Items     map[string]AvailabilityItem `json:"items"`
}

// AvailabilityItem is one product's stock entry.
type AvailabilityItem struct {
	Stock    *int   `json:"stock"`
	Delivery string `json:"delivery"`
}

// CustomerDataset maps customers to segments and segments to preferences.
type CustomerDataset struct {
	SegmentsByCustomerID map[string]string            `json:"segmentsByCustomerId"`
	PreferencesBySegment map[string]map[string]string `json:"preferencesBySegment"`
}

func marketNotFound(market string) error {
	return fmt.Errorf("%w: %s", ErrMarketNotFound, market)
}
