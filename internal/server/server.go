// Package server exposes path search over HTTP.
//
// Endpoints:
//
//	POST /v1/search   JSON search request, see SearchRequest
//	GET  /healthz     liveness, plain "ok"
//	GET  /metrics     Prometheus exposition (path configurable)
//
// A search that ends without a path (blocked endpoint, no route, ...) is a
// result, not a transport failure: it is answered with 200 and found=false.
// Malformed requests get 400 and grids above server.max_cells get 413.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridfile"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/metrics"
)

const (
	tracerName   = "github.com/katalvlaran/gridpath/internal/server"
	shutdownWait = 5 * time.Second

	// Request bodies are capped at bytesPerCell per allowed cell plus bodySlack.
	bytesPerCell = 24
	bodySlack    = 4 << 10
)

// SearchRequest is the body of POST /v1/search. Exactly one of Rows and
// Cells must be set; they follow the gridfile conventions.
type SearchRequest struct {
	Rows        []string `json:"rows,omitempty"`
	Cells       [][]int  `json:"cells,omitempty"`
	Source      []int    `json:"source"`      // [col, row], required
	Destination []int    `json:"destination"` // [col, row], required
	Heuristic   string   `json:"heuristic,omitempty"`
}

// SearchResponse is the 200 answer to a search.
type SearchResponse struct {
	Found    bool     `json:"found"`
	Outcome  string   `json:"outcome"`
	Path     [][2]int `json:"path,omitempty"`
	Length   int      `json:"length"`
	Expanded int      `json:"expanded"`
	Error    string   `json:"error,omitempty"`
}

// Server wires configuration, logging, metrics and tracing around astar.Search.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector
	tracer   trace.Tracer
	handler  http.Handler
}

// Option customises a Server.
type Option func(*Server)

// WithTracerProvider creates the search spans from tp instead of the global
// otel provider. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("server: WithTracerProvider(nil)")
	}
	return func(s *Server) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// New builds a Server. A nil logger falls back to slog.Default().
func New(cfg *config.Config, log *slog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = metrics.NewCollector(s.registry)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/search", s.handleSearch)
	mux.HandleFunc("GET /healthz", handleHealth)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	s.handler = mux

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on cfg.Server.Addr and serves until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Server.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	limit := int64(s.cfg.Server.MaxCells)*bytesPerCell + bodySlack
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", limit))
			return
		}
		s.fail(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	// Count before converting so oversized grids are never materialised.
	if n := req.cellCount(); n > s.cfg.Server.MaxCells {
		s.fail(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("grid has %d cells, limit is %d", n, s.cfg.Server.MaxCells))
		return
	}
	src, err := endpoint("source", req.Source)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	dst, err := endpoint("destination", req.Destination)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	doc := gridfile.Document{Rows: req.Rows, Cells: req.Cells}
	values, err := doc.Values()
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	opts, err := s.searchOptions(req.Heuristic)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	resp := s.search(r.Context(), gg, src, dst, opts)
	writeJSON(w, http.StatusOK, resp)
}

// searchOptions layers the per-request heuristic over the configured options.
func (s *Server) searchOptions(heuristic string) ([]astar.Option, error) {
	opts, err := s.cfg.SearchOptions()
	if err != nil {
		return nil, err
	}
	if heuristic != "" {
		h, err := astar.HeuristicByName(heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithHeuristic(h))
	}

	return append(opts, astar.WithLogger(s.log), astar.WithObserver(s.metrics)), nil
}

// search runs one astar.Search inside a span and converts the result.
func (s *Server) search(ctx context.Context, gg *gridgraph.GridGraph, src, dst gridgraph.Point, opts []astar.Option) SearchResponse {
	_, span := s.tracer.Start(ctx, "astar.Search",
		trace.WithAttributes(
			attribute.Int("grid.width", gg.Width),
			attribute.Int("grid.height", gg.Height),
			attribute.String("src", src.String()),
			attribute.String("dst", dst.String()),
		),
	)
	defer span.End()

	var stats astar.Stats
	opts = append(opts, astar.WithObserver(astar.ObserverFunc(func(st astar.Stats) { stats = st })))
	path, err := astar.Search(gg, src, dst, opts...)

	span.SetAttributes(
		attribute.String("outcome", stats.Outcome.String()),
		attribute.Int("expanded", stats.Expanded),
		attribute.Int("path.length", len(path)),
	)
	resp := SearchResponse{
		Found:    err == nil,
		Outcome:  stats.Outcome.String(),
		Length:   len(path),
		Expanded: stats.Expanded,
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, stats.Outcome.String())
		resp.Error = err.Error()
		return resp
	}
	span.SetStatus(codes.Ok, "path found")
	resp.Path = path.Pairs()

	return resp
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.log.Warn("rejected search request", slog.Int("status", status), slog.String("error", err.Error()))
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// cellCount is the number of cells in whichever grid form the request carries.
func (req *SearchRequest) cellCount() int {
	n := 0
	for _, row := range req.Rows {
		n += len(row)
	}
	for _, row := range req.Cells {
		n += len(row)
	}
	return n
}

// endpoint converts a [col, row] pair; anything but exactly two numbers is rejected.
func endpoint(name string, v []int) (gridgraph.Point, error) {
	switch {
	case v == nil:
		return gridgraph.Point{}, fmt.Errorf("%s is required", name)
	case len(v) != 2:
		return gridgraph.Point{}, fmt.Errorf("%s must be [col, row], got %d values", name, len(v))
	}

	return gridgraph.Pt(v[0], v[1]), nil
}
