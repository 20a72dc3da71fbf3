// Package v1handler implements the version 1 HTTP API of the registry. Request
// and response bodies are encoded with jx; identifiers in paths, queries and
// bodies use the configured uuid62 form.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"time"
	"uuid62/internal/registry"
	"uuid62/pkg/controller"
	"uuid62/pkg/logger"
	"uuid62/pkg/metrics"
	"uuid62/pkg/serrors"
	"uuid62/pkg/uuid62"
	"uuid62/pkg/uuid62/uuid62json"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// PathPrefix is the prefix of every v1 route.
const PathPrefix = "/v1"

// Deps are the services the handlers call into.
type Deps struct {
	Registry registry.Registry
}

// Options configure identifier handling and instrumentation.
type Options struct {
	// Format is the identifier form used in responses and expected in requests.
	Format uuid62.Format
	// AcceptCanonical allows canonical identifiers in requests.
	AcceptCanonical bool
	// Instruments records request durations and rejected identifiers. A
	// no-op set is used when nil.
	Instruments *metrics.Instruments
}

// DefaultOptions use base62 identifiers and accept canonical input.
func DefaultOptions() Options {
	return Options{Format: uuid62.FormatBase62, AcceptCanonical: true}
}

type Handler struct {
	deps        Deps
	ids         *controller.UUIDConverter
	codec       *uuid62json.Codec
	instruments *metrics.Instruments
}

// New creates a Handler.
func New(deps Deps, o Options) *Handler {
	if o.Instruments == nil {
		// instruments from a no-op provider never fail to be created
		o.Instruments, _ = metrics.New(noop.NewMeterProvider())
	}

	return &Handler{
		deps: deps,
		ids: controller.NewUUIDConverter(controller.UUIDConverterOptions{
			Format:          o.Format,
			AcceptCanonical: o.AcceptCanonical,
			Instruments:     o.Instruments,
		}),
		codec: uuid62json.New(uuid62json.Options{
			Format:          o.Format,
			AcceptCanonical: o.AcceptCanonical,
		}),
		instruments: o.Instruments,
	}
}

// response is what an endpoint returns on success.
type response struct {
	status   int
	location string
	// encode writes the body; nil means no body.
	encode func(e *jx.Encoder)
}

type endpoint func(r *http.Request) (*response, error)

// Register mounts all v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	h.handle(mux, http.MethodPost, "/uuids", h.createEntry)
	h.handle(mux, http.MethodPost, "/uuids/random", h.createRandomEntry)
	h.handle(mux, http.MethodGet, "/uuids", h.listEntries)
	h.handle(mux, http.MethodGet, "/uuids/{id}", h.getEntry)
	h.handle(mux, http.MethodDelete, "/uuids/{id}", h.deleteEntry)
	h.handle(mux, http.MethodGet, "/convert/{value}", h.convert)
}

func (h *Handler) handle(mux *http.ServeMux, method, path string, fn endpoint) {
	route := method + " " + PathPrefix + path
	mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := h.serve(w, r, fn)
		h.instruments.RecordRequest(r.Context(), route, status, time.Since(start))
	})
}

// serve runs fn and writes its result, returning the status code sent.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, fn endpoint) int {
	res, err := fn(r)
	if err != nil {
		e := h.NewError(r.Context(), err)
		writeJSON(w, e.StatusCode, e.Response.Encode)

		return e.StatusCode
	}

	if res.location != "" {
		w.Header().Set("Location", res.location)
	}
	writeJSON(w, res.status, res.encode)

	return res.status
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	if encode == nil {
		w.WriteHeader(status)

		return
	}

	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the response as a JSON object.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status         int
	defaultMessage string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrNotFound:    {status: http.StatusNotFound, defaultMessage: "resource not found"},
	serrors.ErrBadRequest:  {status: http.StatusBadRequest, defaultMessage: "bad request"},
	serrors.ErrConflict:    {status: http.StatusConflict, defaultMessage: "resource already exists"},
	serrors.ErrTimeout:     {status: http.StatusGatewayTimeout, defaultMessage: "request timed out"},
	serrors.ErrUnavailable: {status: http.StatusServiceUnavailable, defaultMessage: "service unavailable"},
	serrors.ErrInternal:    {status: http.StatusInternalServerError, defaultMessage: "internal error"},
}

// NewError maps err to a response by its semantic kind. Internal errors are
// logged and never expose their message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}

	mapping, ok := errorMappings[kind]
	if !ok {
		kind, mapping = serrors.ErrInternal, errorMappings[serrors.ErrInternal]
	}

	message := mapping.defaultMessage
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		if m := serrors.MessageOf(err); m != "" {
			message = m
		}
		logger.Debug(ctx, "request rejected", zap.String("code", kind.Error()), zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}
