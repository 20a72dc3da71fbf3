package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"uuid62/internal/api/handler/v1handler"
	mockregistry "uuid62/internal/registry/mock"
	"uuid62/pkg/domain"
	"uuid62/pkg/serrors"
	"uuid62/pkg/uuid62"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	knownCanonical = "86559453-e224-4921-baee-6fb5c0252e85"
	knownBase62    = "45u546Dsoz0Tm4GxDxj9qZ"
	knownPacked    = "GWFlTJOJJFiuuftaBuEXKE"
)

var (
	knownID   = uuid.MustParse(knownCanonical)                  //nolint: gochecknoglobals
	createdAt = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) //nolint: gochecknoglobals
)

func newTestServer(t *testing.T, opts v1handler.Options) (*mockregistry.MockRegistry, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := mockregistry.NewMockRegistry(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Registry: reg}, opts).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return reg, srv
}

func do(t *testing.T, method, url string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var body map[string]any
	if res.ContentLength != 0 && res.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	}

	return res, body
}

func TestCreateEntry(t *testing.T) {
	reg, srv := newTestServer(t, v1handler.DefaultOptions())

	reg.EXPECT().Add(gomock.Any(), knownID).Return(&domain.Entry{ID: knownID, CreatedAt: createdAt}, nil)

	res, body := do(t, http.MethodPost, srv.URL+"/v1/uuids?id="+knownBase62)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "/v1/uuids/"+knownBase62, res.Header.Get("Location"))
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.Equal(t, map[string]any{
		"id":        knownBase62,
		"longId":    knownCanonical,
		"createdAt": "2024-05-01T12:30:00Z",
	}, body)
}

func TestCreateEntry_AcceptsCanonical(t *testing.T) {
	reg, srv := newTestServer(t, v1handler.DefaultOptions())

	reg.EXPECT().Add(gomock.Any(), knownID).Return(&domain.Entry{ID: knownID, CreatedAt: createdAt}, nil)

	res, _ := do(t, http.MethodPost, srv.URL+"/v1/uuids?id="+knownCanonical)
	require.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestCreateEntry_Errors(t *testing.T) {
	reg, srv := newTestServer(t, v1handler.DefaultOptions())

	tests := []struct {
		name       string
		query      string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{name: "missing id", query: "", wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "short id", query: "?id=abc", wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{
			name:       "overflow",
			query:      "?id=ZZZZZZZZZZZZZZZZZZZZZZ",
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:  "duplicate",
			query: "?id=" + knownBase62,
			setup: func() {
				reg.EXPECT().Add(gomock.Any(), knownID).
					Return(nil, serrors.With(serrors.ErrConflict, "entry %s already exists", knownBase62))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			res, body := do(t, http.MethodPost, srv.URL+"/v1/uuids"+tt.query)
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.Equal(t, tt.wantCode, body["code"])
			require.NotEmpty(t, body["message"])
		})
	}
}

func TestCreateRandomEntry_PackedFormat(t *testing.T) {
	opts := v1handler.DefaultOptions()
	opts.Format = uuid62.FormatPacked
	reg, srv := newTestServer(t, opts)

	reg.EXPECT().AddRandom(gomock.Any()).Return(&domain.Entry{ID: knownID, CreatedAt: createdAt}, nil)

	res, body := do(t, http.MethodPost, srv.URL+"/v1/uuids/random")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "/v1/uuids/"+knownPacked, res.Header.Get("Location"))
	require.Equal(t, knownPacked, body["id"])
	require.Equal(t, knownCanonical, body["longId"])
}

func TestGetEntry(t *testing.T) {
	reg, srv := newTestServer(t, v1handler.DefaultOptions())

	reg.EXPECT().Get(gomock.Any(), knownID).Return(&domain.Entry{ID: knownID, CreatedAt: createdAt}, nil)
	res, body := do(t, http.MethodGet, srv.URL+"/v1/uuids/"+knownBase62)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, knownBase62, body["id"])

	reg.EXPECT().Get(gomock.Any(), knownID).Return(nil, serrors.With(serrors.ErrNotFound, "entry not found"))
	res, body = do(t, http.MethodGet, srv.URL+"/v1/uuids/"+knownCanonical)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "NOT_FOUND", body["code"])

	// invalid character in the path
	res, body = do(t, http.MethodGet, srv.URL+"/v1/uuids/45u546Dsoz0Tm4GxDxj9q_")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "BAD_REQUEST", body["code"])
}

func TestGetEntry_StrictRejectsCanonical(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{Format: uuid62.FormatBase62})

	res, _ := do(t, http.MethodGet, srv.URL+"/v1/uuids/"+knownCanonical)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteEntry(t *testing.T) {
	reg, srv := newTestServer(t, v1handler.DefaultOptions())

	reg.EXPECT().Delete(gomock.Any(), knownID).Return(nil)
	res, _ := do(t, http.MethodDelete, srv.URL+"/v1/uuids/"+knownBase62)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	reg.EXPECT().Delete(gomock.Any(), knownID).Return(serrors.KindOnly(serrors.ErrNotFound))
	res, body := do(t, http.MethodDelete, srv.URL+"/v1/uuids/"+knownBase62)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "resource not found", body["message"])
}

func TestListEntries(t *testing.T) {
	reg, srv := newTestServer(t, v1handler.DefaultOptions())

	other := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	reg.EXPECT().List(gomock.Any(), "", uint(0)).Return([]domain.Entry{
		{ID: knownID, CreatedAt: createdAt},
		{ID: other, CreatedAt: createdAt},
	}, "7N42dgm5tFLK9N8MT7fHC7", nil)

	res, body := do(t, http.MethodGet, srv.URL+"/v1/uuids")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "7N42dgm5tFLK9N8MT7fHC7", body["nextCursor"])
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	require.Equal(t, knownBase62, items[0].(map[string]any)["id"])

	reg.EXPECT().List(gomock.Any(), knownBase62, uint(5)).Return(nil, "", nil)
	res, body = do(t, http.MethodGet, srv.URL+"/v1/uuids?limit=5&cursor="+knownBase62)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Nil(t, body["nextCursor"])
	require.Empty(t, body["items"])
}

func TestListEntries_InvalidLimit(t *testing.T) {
	_, srv := newTestServer(t, v1handler.DefaultOptions())

	for _, limit := range []string{"0", "-1", "ten"} {
		res, body := do(t, http.MethodGet, srv.URL+"/v1/uuids?limit="+limit)
		require.Equal(t, http.StatusBadRequest, res.StatusCode, limit)
		require.Equal(t, "BAD_REQUEST", body["code"])
	}
}
