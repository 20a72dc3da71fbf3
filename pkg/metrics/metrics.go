// Package metrics holds the OpenTelemetry instruments recorded by the HTTP
// layer. Instruments are created from a metric.MeterProvider so tests can use
// a manual reader or a no-op provider.
package metrics

import (
	"context"
	"strconv"
	"time"
	"uuid62/pkg/uuid62"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope of every instrument in this package.
const MeterName = "uuid62"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Decode failure reasons reported on the decode failure counter.
const (
	ReasonInvalidLength    = "invalid_length"
	ReasonInvalidCharacter = "invalid_character"
	ReasonOverflow         = "overflow"
	ReasonOther            = "other"
)

// Instruments groups the instruments shared by all handlers.
type Instruments struct {
	requestDuration metric.Float64Histogram
	decodeFailures  metric.Int64Counter
}

// New creates the instruments on a meter obtained from mp.
func New(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter(MeterName)

	requestDuration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of handled API requests."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create request duration histogram")
	}

	decodeFailures, err := meter.Int64Counter("uuid62.decode.failures",
		metric.WithDescription("Identifiers rejected while decoding client input."),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create decode failure counter")
	}

	return &Instruments{
		requestDuration: requestDuration,
		decodeFailures:  decodeFailures,
	}, nil
}

// RecordRequest records the duration of a request served by route.
func (i *Instruments) RecordRequest(ctx context.Context, route string, status int, d time.Duration) {
	i.requestDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("http.route", route),
		attribute.String("http.response.status_code", strconv.Itoa(status)),
	))
}

// RecordDecodeFailure counts an identifier that could not be decoded in format.
func (i *Instruments) RecordDecodeFailure(ctx context.Context, format uuid62.Format, err error) {
	i.decodeFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("format", string(format)),
		attribute.String("reason", Reason(err)),
	))
}

// Reason classifies a decode error into one of the Reason constants.
func Reason(err error) string {
	switch {
	case errors.Is(err, uuid62.ErrInvalidLength):
		return ReasonInvalidLength
	case errors.Is(err, uuid62.ErrInvalidCharacter):
		return ReasonInvalidCharacter
	case errors.Is(err, uuid62.ErrOverflow):
		return ReasonOverflow
	default:
		return ReasonOther
	}
}
