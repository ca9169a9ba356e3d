package domain

import (
	"errors"
	"fmt"
)

// Service names used in failure classification.
const (
	ServiceCatalog      = "catalog"
	ServicePricing      = "pricing"
	ServiceAvailability = "availability"
	ServiceCustomer     = "customer"
)

// Reason codes consumed by the degradation policy. Codes a collaborator
// forwards that are not listed here pass through as opaque strings.
const (
	ReasonProductNotFound  = "PRODUCT_NOT_FOUND"
	ReasonNotFound         = "NOT_FOUND"
	ReasonCustomerNotFound = "CUSTOMER_NOT_FOUND"
	ReasonMarketNotFound   = "MARKET_NOT_FOUND"
	ReasonTimeout          = "TIMEOUT"
	ReasonCircuitOpen      = "CIRCUIT_OPEN"
	ReasonUpstreamError    = "UPSTREAM_ERROR"
	ReasonSimulatedFailure = "SIMULATED_FAILURE"
)

// UpstreamFailure is the classified failure of one upstream call. It carries
// enough for both retry/circuit-breaker accounting and for policy fallback
// construction.
type UpstreamFailure struct {
	Service string
	Reason  string
	Details string
	Err     error
}

// NewUpstreamFailure builds a failure without a causal error.
func NewUpstreamFailure(service, reason, details string) *UpstreamFailure {
	return &UpstreamFailure{Service: service, Reason: reason, Details: details}
}

func (f *UpstreamFailure) Error() string {
	if f.Details == "" {
		return fmt.Sprintf("%s failed: %s", f.Service, f.Reason)
	}
	return fmt.Sprintf("%s failed: %s (%s)", f.Service, f.Reason, f.Details)
}

func (f *UpstreamFailure) Unwrap() error {
	return f.Err
}

// Classify returns err as an UpstreamFailure, wrapping anything not already
// classified with reason UPSTREAM_ERROR so downstream policy never sees an
// unknown failure shape.
func Classify(service string, err error) *UpstreamFailure {
	var failure *UpstreamFailure
	if errors.As(err, &failure) {
		return failure
	}
	return &UpstreamFailure{
		Service: service,
		Reason:  ReasonUpstreamError,
		Details: err.Error(),
		Err:     err,
	}
}
