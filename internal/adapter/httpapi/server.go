// Package httpapi serves the dashboard query API over HTTP. Handlers are
// thin: they parse filters, consult the query cache, and delegate the actual
// aggregation to the dashboard package.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/pfas-dashboard/internal/config"
	"github.com/couchcryptid/pfas-dashboard/internal/dashboard"
	"github.com/couchcryptid/pfas-dashboard/internal/observability"
)

// Server bundles the router and its dependencies. The table is swappable at
// runtime so a reload never interrupts in-flight requests.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	cache   dashboard.Cache
	table   atomic.Pointer[dashboard.Table]
	engine  *gin.Engine
}

// New constructs a server with routes and middleware. The table starts
// unset; readiness reports failure until SetTable is called.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, cache dashboard.Cache) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		cache:   cache,
		engine:  engine,
	}
	s.registerRoutes()
	return s
}

// SetTable publishes a freshly loaded table. Its version feeds into every
// cache fingerprint, so stale cached responses die with the old version.
func (s *Server) SetTable(t *dashboard.Table) {
	s.table.Store(t)
	s.metrics.TableRows.Set(float64(t.Len()))
	s.logger.Info("table published", "version", t.Version(), "rows", t.Len())
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("http server listening", "addr", s.cfg.HTTPAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/readyz", s.handleReady)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/filters", s.handleFilters)
		v1.GET("/headline", s.handleHeadline)
		v1.GET("/breakdown/pfa-type", s.handlePFATypeBreakdown)
		v1.GET("/breakdown/location-type", s.handleLocationTypeBreakdown)
		v1.GET("/substances/top", s.handleTopSubstances)
		v1.GET("/series", s.handleSeries)
		v1.GET("/cities/top", s.handleTopCities)
		v1.GET("/studies/scatter", s.handleStudyScatter)
		v1.GET("/map/points", s.handleMapPoints)
	}
}

func (s *Server) handleReady(c *gin.Context) {
	tbl := s.table.Load()
	if tbl == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": tbl.Version(),
		"rows":    tbl.Len(),
	})
}

// response is the common envelope. An empty selection is not an error: the
// data is present but empty and meta.no_data is set.
type response struct {
	Data any  `json:"data"`
	Meta meta `json:"meta"`
}

type meta struct {
	Count   int    `json:"count"`
	NoData  bool   `json:"no_data"`
	Version string `json:"version"`
}

// serve wraps the common handler flow: check readiness, consult the cache
// under the query fingerprint, compute on miss, store the encoded body.
// compute returns the payload and its row count.
func (s *Server) serve(c *gin.Context, endpoint string, params map[string]string, compute func(tbl *dashboard.Table) (any, int)) {
	tbl := s.table.Load()
	if tbl == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "table not loaded"})
		return
	}

	start := time.Now()
	defer func() {
		s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	ctx := c.Request.Context()
	key := dashboard.Fingerprint(tbl.Version(), endpoint, params)
	if body, ok := s.cache.Get(ctx, key); ok {
		s.metrics.QueryCache.WithLabelValues("hit").Inc()
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}
	s.metrics.QueryCache.WithLabelValues("miss").Inc()

	data, count := compute(tbl)
	body, err := json.Marshal(response{
		Data: data,
		Meta: meta{Count: count, NoData: count == 0, Version: tbl.Version()},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.cache.Set(ctx, key, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
