package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietddude/productinfo/internal/core/domain"
)

// ErrorResponse is the error body for non-200 responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleProductInfo serves GET /product-info?productId=..&market=..&customerId=..
func (s *Server) handleProductInfo(c *gin.Context) {
	productID := strings.TrimSpace(c.Query("productId"))
	market := strings.TrimSpace(c.Query("market"))
	customerID := strings.TrimSpace(c.Query("customerId"))

	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "VALIDATION_ERROR", Message: "productId is required"})
		return
	}
	if market == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "VALIDATION_ERROR", Message: "market is required"})
		return
	}

	aggregated, err := s.aggregator.Aggregate(c.Request.Context(), productID, market, customerID)
	if err != nil {
		s.writeAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, aggregated)
}

// writeAggregateError maps an abort failure onto a status code. Only catalog
// failures can reach here; anything else is a programming error surfaced as
// 500.
func (s *Server) writeAggregateError(c *gin.Context, err error) {
	var failure *domain.UpstreamFailure
	if !errors.As(err, &failure) {
		s.log.Error("aggregation failed with unclassified error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR", Message: err.Error()})
		return
	}

	if failure.Service == domain.ServiceCatalog {
		if failure.Reason == domain.ReasonProductNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: domain.ReasonProductNotFound, Message: failure.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Code: "CATALOG_UNAVAILABLE", Message: failure.Error()})
		return
	}

	s.log.Error("non-catalog failure escaped the orchestrator",
		"service", failure.Service, "reason", failure.Reason)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR", Message: failure.Error()})
}
