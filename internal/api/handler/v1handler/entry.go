package v1handler

import (
	"net/http"
	"strconv"
	"time"
	"uuid62/pkg/domain"
	"uuid62/pkg/serrors"

	"github.com/go-faster/jx"
)

func (h *Handler) encodeEntry(e *jx.Encoder, entry *domain.Entry) {
	e.ObjStart()
	e.FieldStart("id")
	h.codec.Encode(e, entry.ID)
	e.FieldStart("longId")
	e.Str(entry.ID.String())
	e.FieldStart("createdAt")
	e.Str(entry.CreatedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

func (h *Handler) entryLocation(entry *domain.Entry) string {
	return PathPrefix + "/uuids/" + h.codec.Text(entry.ID)
}

func (h *Handler) created(entry *domain.Entry) *response {
	return &response{
		status:   http.StatusCreated,
		location: h.entryLocation(entry),
		encode:   func(e *jx.Encoder) { h.encodeEntry(e, entry) },
	}
}

// createEntry registers the identifier given in the id query parameter.
func (h *Handler) createEntry(r *http.Request) (*response, error) {
	id, err := h.ids.QueryValue(r, "id")
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	entry, err := h.deps.Registry.Add(r.Context(), id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return h.created(entry), nil
}

// createRandomEntry registers a freshly generated identifier.
func (h *Handler) createRandomEntry(r *http.Request) (*response, error) {
	entry, err := h.deps.Registry.AddRandom(r.Context())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return h.created(entry), nil
}

// getEntry returns a registered identifier.
func (h *Handler) getEntry(r *http.Request) (*response, error) {
	id, err := h.ids.PathValue(r, "id")
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	entry, err := h.deps.Registry.Get(r.Context(), id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &response{
		status: http.StatusOK,
		encode: func(e *jx.Encoder) { h.encodeEntry(e, entry) },
	}, nil
}

// deleteEntry removes a registered identifier.
func (h *Handler) deleteEntry(r *http.Request) (*response, error) {
	id, err := h.ids.PathValue(r, "id")
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if err := h.deps.Registry.Delete(r.Context(), id); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &response{status: http.StatusNoContent}, nil
}

// listEntries returns a page of registered identifiers.
func (h *Handler) listEntries(r *http.Request) (*response, error) {
	query := r.URL.Query()

	var limit uint
	if s := query.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil || v == 0 {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit %q", s)
		}
		limit = uint(v)
	}

	entries, nextCursor, err := h.deps.Registry.List(r.Context(), query.Get("cursor"), limit)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &response{
		status: http.StatusOK,
		encode: func(e *jx.Encoder) {
			e.ObjStart()
			e.FieldStart("items")
			e.ArrStart()
			for i := range entries {
				h.encodeEntry(e, &entries[i])
			}
			e.ArrEnd()
			e.FieldStart("nextCursor")
			if nextCursor == "" {
				e.Null()
			} else {
				e.Str(nextCursor)
			}
			e.ObjEnd()
		},
	}, nil
}
