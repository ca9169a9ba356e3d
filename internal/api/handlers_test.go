package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/productinfo/internal/core/domain"
)

type stubAggregator struct {
	result domain.AggregatedProduct
	err    error
	seen   []string
}

func (s *stubAggregator) Aggregate(ctx context.Context, productID, market, customerID string) (domain.AggregatedProduct, error) {
	s.seen = []string{productID, market, customerID}
	return s.result, s.err
}

func doRequest(t *testing.T, agg Aggregator, target string) *httptest.ResponseRecorder {
	t.Helper()
	srv := NewServer(agg, 0, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func successAggregate() domain.AggregatedProduct {
	base := decimal.RequireFromString("24.90")
	discount := decimal.RequireFromString("5.0")
	final := decimal.RequireFromString("23.66")
	return domain.NewAggregatedProduct(
		domain.ProductDetails{ProductID: "ABC123", Market: "de-DE", Name: "Hydraulikschlauch DN10 2SN"},
		domain.PricingAvailable(base, discount, final, "EUR"),
		domain.AvailabilityKnown(142, "DE-02", "2-3 days"),
		domain.CustomerContext{CustomerID: "789", Segment: domain.SegmentStandard, Preferences: map[string]string{}},
	)
}

func TestHandleProductInfo_Success(t *testing.T) {
	agg := &stubAggregator{result: successAggregate()}

	rec := doRequest(t, agg, "/product-info?productId=ABC123&market=de-DE&customerId=789")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ABC123", "de-DE", "789"}, agg.seen)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "product")
	require.Contains(t, body, "pricing")
	require.Contains(t, body, "availability")
	require.Contains(t, body, "customer")

	var pricing map[string]any
	require.NoError(t, json.Unmarshal(body["pricing"], &pricing))
	// Prices serialize as numbers, not strings.
	assert.Equal(t, 23.66, pricing["finalPrice"])
	assert.Equal(t, "EUR", pricing["currency"])
}

func TestHandleProductInfo_OptionalCustomerID(t *testing.T) {
	agg := &stubAggregator{result: successAggregate()}

	rec := doRequest(t, agg, "/product-info?productId=ABC123&market=de-DE")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ABC123", "de-DE", ""}, agg.seen)
}

func TestHandleProductInfo_Validation(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		message string
	}{
		{"missing productId", "/product-info?market=de-DE", "productId is required"},
		{"missing market", "/product-info?productId=ABC123", "market is required"},
		{"blank productId", "/product-info?productId=%20&market=de-DE", "productId is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := &stubAggregator{}
			rec := doRequest(t, agg, tc.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_ERROR", body.Code)
			assert.Equal(t, tc.message, body.Message)
			// Validation failures never reach the aggregator.
			assert.Nil(t, agg.seen)
		})
	}
}

func TestHandleProductInfo_ProductNotFound(t *testing.T) {
	agg := &stubAggregator{err: domain.NewUpstreamFailure(
		domain.ServiceCatalog, domain.ReasonProductNotFound, "productId=NOTEXIST, market=de-DE")}

	rec := doRequest(t, agg, "/product-info?productId=NOTEXIST&market=de-DE")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Code)
}

func TestHandleProductInfo_CatalogUnavailable(t *testing.T) {
	cases := []string{
		domain.ReasonTimeout,
		domain.ReasonCircuitOpen,
		domain.ReasonUpstreamError,
	}
	for _, reason := range cases {
		t.Run(reason, func(t *testing.T) {
			agg := &stubAggregator{err: domain.NewUpstreamFailure(domain.ServiceCatalog, reason, "")}
			rec := doRequest(t, agg, "/product-info?productId=ABC123&market=de-DE")
			require.Equal(t, http.StatusBadGateway, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "CATALOG_UNAVAILABLE", body.Code)
		})
	}
}

func TestHandleProductInfo_UnclassifiedError(t *testing.T) {
	agg := &stubAggregator{err: context.DeadlineExceeded}

	rec := doRequest(t, agg, "/product-info?productId=ABC123&market=de-DE")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, &stubAggregator{}, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	agg := &stubAggregator{result: successAggregate()}
	rec := doRequest(t, agg, "/product-info?productId=ABC123&market=de-DE")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
