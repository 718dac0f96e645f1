package server

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"log/slog"
	"net/http"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/postindex/belindex/addrmodel"
	"github.com/postindex/belindex/search"
)

const MaxBodySize = 1 * 1000 * 1000 // 1MB

var meter = otel.Meter("github.com/postindex/belindex/server")

// Parser exposes the parse endpoint's pipeline.
type Parser interface {
	Parse(ctx context.Context, fullAddress string) addrmodel.Address
}

// HealthChecker reports whether the external token service answers.
type HealthChecker interface {
	Health(ctx context.Context) bool
}

func Run(ctx context.Context, address string, svc *search.Service, parser Parser, health HealthChecker) error {
	if err := setupTelemetry(ctx); err != nil {
		return fmt.Errorf("failed to initialize otel metrics: %w", err)
	}

	log := slog.Default()

	metricSearchCallCount, err := meter.Int64Counter("http_search_call_total")
	if err != nil {
		return err
	}
	metricParseCallCount, err := meter.Int64Counter("http_parse_call_total")
	if err != nil {
		return err
	}
	metricSearchResultCount, err := meter.Int64Counter("search_results_total")
	if err != nil {
		return err
	}
	s := &server{
		svc:    svc,
		parser: parser,
		health: health,

		metricSearchCallCount:   metricSearchCallCount,
		metricParseCallCount:    metricParseCallCount,
		metricSearchResultCount: metricSearchResultCount,
	}

	r := router.New()
	r.GET("/search", s.SearchHandler)
	r.GET("/parse", s.ParseHandler)
	r.GET("/health", s.HealthHandler)
	r.Handle(http.MethodGet, "/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	server := &fasthttp.Server{
		ReadTimeout:        time.Second,
		MaxRequestBodySize: MaxBodySize,
		Handler:            r.Handler,
	}

	go func() {
		log.Info("Server listening", "address", address)
		if err := server.ListenAndServe(address); err != http.ErrServerClosed {
			stdlog.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	slog.Info("Server started")

	// wait cancel
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return server.ShutdownWithContext(shutdownCtx)
}

type server struct {
	svc    *search.Service
	parser Parser
	health HealthChecker

	metricSearchCallCount   metric.Int64Counter
	metricParseCallCount    metric.Int64Counter
	metricSearchResultCount metric.Int64Counter
}

func (s *server) SearchHandler(ctx *fasthttp.RequestCtx) {
	s.metricSearchCallCount.Add(ctx, 1)

	query := string(ctx.QueryArgs().Peek("q"))
	if query == "" {
		ctx.Response.SetStatusCode(http.StatusBadRequest)
		ctx.Response.SetBodyString("missing q parameter")
		return
	}

	results, err := s.svc.FindByText(ctx, query)
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusBadGateway)
		ctx.Response.SetBodyString("lookup failed: " + err.Error())
		return
	}
	s.metricSearchResultCount.Add(ctx, int64(len(results)))

	if len(results) == 0 {
		ctx.Response.SetStatusCode(http.StatusNoContent)
		return
	}

	out, err := json.Marshal(results)
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}

func (s *server) ParseHandler(ctx *fasthttp.RequestCtx) {
	s.metricParseCallCount.Add(ctx, 1)

	query := string(ctx.QueryArgs().Peek("q"))
	if query == "" {
		ctx.Response.SetStatusCode(http.StatusBadRequest)
		ctx.Response.SetBodyString("missing q parameter")
		return
	}

	parsed := s.parser.Parse(ctx, query)

	out, err := json.Marshal(parsed)
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}

func (s *server) HealthHandler(ctx *fasthttp.RequestCtx) {
	if s.health != nil && !s.health.Health(ctx) {
		ctx.Response.SetStatusCode(http.StatusServiceUnavailable)
		ctx.Response.SetBodyString("token service unavailable")
		return
	}
	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBodyString("ok")
}
