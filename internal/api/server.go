// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the UUID62 registry service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"
	"uuid62/internal/api/handler/v1handler"
	"uuid62/internal/config"
	"uuid62/pkg/controller"
	"uuid62/pkg/metrics"
	"uuid62/pkg/uuid62"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written by http.TimeoutHandler and matches v1handler.ErrorResponse.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	// Zero disables it.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSAllowedOrigins is passed to controller.WithCORS. Empty allows any origin.
	CORSAllowedOrigins []string

	// Format is the identifier form used by the v1 API.
	Format uuid62.Format
	// AcceptCanonical allows canonical identifiers in v1 requests.
	AcceptCanonical bool

	// Registerer receives the OpenTelemetry exporter. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Gatherer is served at MetricsPath. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) (Options, error) {
	format, err := cfg.IDFormat()
	if err != nil {
		return Options{}, err //nolint: wrapcheck
	}

	return Options{
		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		Format:             format,
		AcceptCanonical:    cfg.AcceptCanonical(),
	}, nil
}

type Deps struct {
	v1handler.Deps

	// Pingers are checked by the /healthz endpoint, keyed by check name.
	Pingers map[string]controller.Pinger
}

// NewHandler builds the root handler of the service:
// - health endpoint (/healthz)
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// It wraps the mux with CORS and logging middlewares and applies the request timeout.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(opts.Registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	instruments, err := metrics.New(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create instruments: %w", err)
	}

	// health
	mux.Handle("GET /healthz", controller.HealthHandler(deps.Pingers))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"UUID62 Registry",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1handler.New(deps.Deps, v1handler.Options{
		Format:          opts.Format,
		AcceptCanonical: opts.AcceptCanonical,
		Instruments:     instruments,
	}).Register(mux)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux("/debug/pprof"))

	// cors
	handler := controller.WithCORS(mux, opts.CORSAllowedOrigins...)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
