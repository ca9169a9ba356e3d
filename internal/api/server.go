// Package api exposes the aggregation operation over HTTP. Transport
// concerns only: parameter validation, status mapping and JSON encoding live
// here, never in the aggregation core.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/vietddude/productinfo/internal/core/domain"
)

func init() {
	// Prices serialize as JSON numbers, matching the upstream contracts.
	decimal.MarshalJSONWithoutQuotes = true
}

// Aggregator is the single operation the API consumes.
type Aggregator interface {
	Aggregate(ctx context.Context, productID, market, customerID string) (domain.AggregatedProduct, error)
}

// Server is the HTTP server for the aggregator.
type Server struct {
	aggregator Aggregator
	log        *slog.Logger
	server     *http.Server
}

// NewServer builds the router and wires all routes.
func NewServer(aggregator Aggregator, port int, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		aggregator: aggregator,
		log:        log,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}

	router.Use(RequestID(), RequestLogger(log))

	router.GET("/product-info", s.handleProductInfo)
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
