package resilient

import (
	"context"
	"testing"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/resilience"
)

func fastConfig() resilience.Config {
	return resilience.Config{
		MaxAttempts:     3,
		InitialDelay:    time.Millisecond,
		MaxDelay:        2 * time.Millisecond,
		BackoffMultiple: 2.0,
		Timeout:         time.Second,
		Breaker: resilience.BreakerConfig{
			WindowSize:       100,
			FailureRatio:     0.5,
			Cooldown:         time.Minute,
			HalfOpenMaxCalls: 1,
		},
	}
}

type flakyCatalog struct {
	calls    int
	failures int
}

func (f *flakyCatalog) ProductDetails(ctx context.Context, productID, market string) (domain.ProductDetails, error) {
	f.calls++
	if f.calls <= f.failures {
		return domain.ProductDetails{}, domain.NewUpstreamFailure(
			domain.ServiceCatalog, domain.ReasonSimulatedFailure, "")
	}
	return domain.ProductDetails{ProductID: productID, Market: market}, nil
}

func TestCatalog_RetriesThroughDecorator(t *testing.T) {
	delegate := &flakyCatalog{failures: 2}
	client := NewCatalog(delegate, resilience.New(domain.ServiceCatalog, fastConfig()))

	got, err := client.ProductDetails(context.Background(), "ABC123", "de-DE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProductID != "ABC123" || got.Market != "de-DE" {
		t.Errorf("result = %+v", got)
	}
	if delegate.calls != 3 {
		t.Errorf("calls = %d, want 3", delegate.calls)
	}
}

func TestCatalog_ExhaustionSurfacesFailure(t *testing.T) {
	delegate := &flakyCatalog{failures: 10}
	client := NewCatalog(delegate, resilience.New(domain.ServiceCatalog, fastConfig()))

	_, err := client.ProductDetails(context.Background(), "ABC123", "de-DE")
	if err == nil {
		t.Fatal("expected failure after exhausting retries")
	}
	if delegate.calls != 3 {
		t.Errorf("calls = %d, want 3", delegate.calls)
	}
}

type fixedPricing struct {
	seen domain.CustomerContext
}

func (f *fixedPricing) Pricing(ctx context.Context, productID, market string, customer domain.CustomerContext) (domain.PricingInfo, error) {
	f.seen = customer
	return domain.PricingUnavailable("NO_PRICE_FOR_MARKET"), nil
}

func TestPricing_PassesCustomerThrough(t *testing.T) {
	delegate := &fixedPricing{}
	client := NewPricing(delegate, resilience.New(domain.ServicePricing, fastConfig()))

	premium := domain.CustomerContext{CustomerID: "456", Segment: domain.SegmentPremium}
	got, err := client.Pricing(context.Background(), "ABC123", "pl-PL", premium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delegate.seen.Segment != domain.SegmentPremium {
		t.Errorf("delegate saw segment %q", delegate.seen.Segment)
	}
	if got.Reason != "NO_PRICE_FOR_MARKET" {
		t.Errorf("reason = %q", got.Reason)
	}
}

type staticAvailability struct{}

func (staticAvailability) Availability(ctx context.Context, productID, market string) (domain.AvailabilityInfo, error) {
	return domain.AvailabilityKnown(17, "DE-02", "5-7 days"), nil
}

func TestAvailability_ValuePassesThrough(t *testing.T) {
	client := NewAvailability(staticAvailability{}, resilience.New(domain.ServiceAvailability, fastConfig()))

	got, err := client.Availability(context.Background(), "XYZ999", "de-DE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.StockKnown || got.StockLevel == nil || *got.StockLevel != 17 {
		t.Errorf("availability = %+v", got)
	}
}

type staticCustomer struct{}

func (staticCustomer) CustomerContext(ctx context.Context, customerID, market string) (domain.CustomerContext, error) {
	return domain.CustomerContext{CustomerID: customerID, Segment: domain.SegmentBasic}, nil
}

func TestCustomer_OpenCircuitRejectsWithoutCalling(t *testing.T) {
	exec := resilience.New(domain.ServiceCustomer, fastConfig())
	exec.Breaker().ForceOpen()
	client := NewCustomer(staticCustomer{}, exec)

	_, err := client.CustomerContext(context.Background(), "111", "de-DE")
	failure := domain.Classify(domain.ServiceCustomer, err)
	if failure.Reason != domain.ReasonCircuitOpen {
		t.Errorf("reason = %q, want %q", failure.Reason, domain.ReasonCircuitOpen)
	}
}
