package v1handler

import (
	"encoding/hex"
	"net/http"
	"uuid62/pkg/controller"
	"uuid62/pkg/serrors"
	"uuid62/pkg/uuid62"

	"github.com/go-faster/jx"
)

// convert decodes an identifier and returns it in every supported form. The
// optional from query parameter names the input form; a 22-character value can
// be valid base62 and valid packed text at the same time.
func (h *Handler) convert(r *http.Request) (*response, error) {
	ids := h.ids
	if from := r.URL.Query().Get("from"); from != "" {
		f, err := uuid62.ParseFormat(from)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid format %q", from)
		}
		ids = controller.NewUUIDConverter(controller.UUIDConverterOptions{
			Format:          f,
			AcceptCanonical: true,
			Instruments:     h.instruments,
		})
	}

	id, err := ids.PathValue(r, "value")
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &response{
		status: http.StatusOK,
		encode: func(e *jx.Encoder) {
			e.ObjStart()
			e.FieldStart("canonical")
			e.Str(id.String())
			e.FieldStart("base62")
			e.Str(uuid62.ToBase62(id))
			e.FieldStart("packed")
			e.Str(uuid62.ToPackedBase62(id))
			e.FieldStart("bytes")
			e.Str(hex.EncodeToString(uuid62.EncodeBytes(id)))
			e.ObjEnd()
		},
	}, nil
}
