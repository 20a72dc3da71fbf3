package controller

import (
	"context"
	"net/http"
	"strings"
	"uuid62/pkg/metrics"
	"uuid62/pkg/serrors"
	"uuid62/pkg/uuid62"

	"github.com/google/uuid"
)

// UUIDConverterOptions configure a UUIDConverter.
type UUIDConverterOptions struct {
	// Format is the form expected in request parameters. Empty means base62.
	Format uuid62.Format
	// AcceptCanonical allows the canonical hyphenated form as a fallback.
	AcceptCanonical bool
	// Instruments, when set, counts rejected identifiers.
	Instruments *metrics.Instruments
}

// UUIDConverter turns request parameters into UUIDs. Failures are reported as
// serrors.ErrBadRequest so handlers can map them to 400 responses.
type UUIDConverter struct {
	opts UUIDConverterOptions
}

// NewUUIDConverter creates a converter.
func NewUUIDConverter(opts UUIDConverterOptions) *UUIDConverter {
	if opts.Format == "" {
		opts.Format = uuid62.FormatBase62
	}

	return &UUIDConverter{opts: opts}
}

// IDFormat returns the form the converter expects and produces.
func (c *UUIDConverter) IDFormat() uuid62.Format { return c.opts.Format }

// Convert parses s.
func (c *UUIDConverter) Convert(ctx context.Context, s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "missing id")
	}

	var (
		id  uuid.UUID
		err error
	)
	if c.opts.AcceptCanonical {
		id, err = c.opts.Format.ParseLenient(s)
	} else {
		id, err = c.opts.Format.Parse(s)
	}
	if err != nil {
		if c.opts.Instruments != nil {
			c.opts.Instruments.RecordDecodeFailure(ctx, c.opts.Format, err)
		}

		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id %q", s)
	}

	return id, nil
}

// PathValue converts the named path wildcard of r.
func (c *UUIDConverter) PathValue(r *http.Request, name string) (uuid.UUID, error) {
	return c.Convert(r.Context(), r.PathValue(name))
}

// QueryValue converts the named query parameter of r.
func (c *UUIDConverter) QueryValue(r *http.Request, name string) (uuid.UUID, error) {
	return c.Convert(r.Context(), r.URL.Query().Get(name))
}
