package aggregate

import (
	"errors"

	"github.com/vietddude/productinfo/internal/core/domain"
)

// Degradation policy: pure mappings from a decorated call's outcome to the
// final facet value. Catalog is the only service without one; its failures
// propagate unchanged and abort the request.

// resolvePricingOutcome absorbs any pricing failure into the unavailable
// shape carrying the failure's reason code.
func resolvePricingOutcome(result domain.PricingInfo, err error) domain.PricingInfo {
	if err == nil {
		return result
	}
	var failure *domain.UpstreamFailure
	if errors.As(err, &failure) {
		return domain.PricingUnavailable(failure.Reason)
	}
	return domain.PricingUnavailable(domain.ReasonUpstreamError)
}

// resolveAvailabilityOutcome absorbs any availability failure into the
// unknown shape.
func resolveAvailabilityOutcome(result domain.AvailabilityInfo, err error) domain.AvailabilityInfo {
	if err == nil {
		return result
	}
	return domain.AvailabilityUnknown()
}

// resolveCustomerOutcome absorbs any customer failure into the standard
// context.
func resolveCustomerOutcome(result domain.CustomerContext, err error) domain.CustomerContext {
	if err == nil {
		return result
	}
	return domain.StandardCustomer()
}
